package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
)

func registerCommand() *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "registra un usuario",
		Flags: credentialFlags(),
		Action: func(c *cli.Context) error {
			u, err := apiClient(c).Register(c.Context, c.String("username"), c.String("password"))
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "usuario %s registrado (%s)\n", u.Username, u.ID)
			return nil
		},
	}
}

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "inicia sesión y guarda el token",
		Flags: credentialFlags(),
		Action: func(c *cli.Context) error {
			s, err := apiClient(c).Login(c.Context, c.String("username"), c.String("password"))
			if err != nil {
				return err
			}
			if err := saveSession(c.String("session"), s); err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "sesión iniciada como %s\n", s.User.Username)
			return nil
		},
	}
}

func logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "cierra la sesión local",
		Action: func(c *cli.Context) error {
			if s, err := session(c); err == nil {
				apiClient(c).Logout(s)
			}
			if err := removeSession(c.String("session")); err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, "sesión cerrada")
			return nil
		},
	}
}

func credentialFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true},
		&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true, EnvVars: []string{"STOCKCTL_PASSWORD"}},
	}
}

func partsCommand() *cli.Command {
	return &cli.Command{
		Name:  "parts",
		Usage: "catálogo de repuestos",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "lista los repuestos",
				Action: func(c *cli.Context) error {
					s, err := session(c)
					if err != nil {
						return err
					}
					parts, err := apiClient(c).ListSpareParts(c.Context, s)
					if err != nil {
						return err
					}
					printParts(c.App.Writer, parts)
					return nil
				},
			},
			{
				Name:      "get",
				Usage:     "muestra un repuesto",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					s, err := session(c)
					if err != nil {
						return err
					}
					p, err := apiClient(c).GetSparePart(c.Context, s, c.Args().First())
					if err != nil {
						return err
					}
					printParts(c.App.Writer, []dto.SparePartResponse{*p})
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "registra un repuesto",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "code", Required: true},
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "category"},
					&cli.StringFlag{Name: "price", Required: true},
					&cli.IntFlag{Name: "qty"},
				},
				Action: func(c *cli.Context) error {
					s, err := session(c)
					if err != nil {
						return err
					}
					price, err := decimal.NewFromString(c.String("price"))
					if err != nil {
						return fmt.Errorf("precio inválido: %w", err)
					}
					in := dto.CreateSparePartRequest{
						BusinessID: c.String("code"),
						Name:       c.String("name"),
						Category:   c.String("category"),
						UnitPrice:  &price,
					}
					if c.IsSet("qty") {
						q := c.Int("qty")
						in.Quantity = &q
					}
					p, err := apiClient(c).CreateSparePart(c.Context, s, in)
					if err != nil {
						return err
					}
					printParts(c.App.Writer, []dto.SparePartResponse{*p})
					return nil
				},
			},
			{
				Name:      "update",
				Usage:     "actualiza campos de un repuesto",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "code"},
					&cli.StringFlag{Name: "name"},
					&cli.StringFlag{Name: "category"},
					&cli.StringFlag{Name: "price"},
					&cli.IntFlag{Name: "qty"},
				},
				Action: func(c *cli.Context) error {
					s, err := session(c)
					if err != nil {
						return err
					}
					var in dto.UpdateSparePartRequest
					if c.IsSet("code") {
						in.BusinessID = strPtr(c.String("code"))
					}
					if c.IsSet("name") {
						in.Name = strPtr(c.String("name"))
					}
					if c.IsSet("category") {
						in.Category = strPtr(c.String("category"))
					}
					if c.IsSet("price") {
						price, err := decimal.NewFromString(c.String("price"))
						if err != nil {
							return fmt.Errorf("precio inválido: %w", err)
						}
						in.UnitPrice = &price
					}
					if c.IsSet("qty") {
						q := c.Int("qty")
						in.Quantity = &q
					}
					p, err := apiClient(c).UpdateSparePart(c.Context, s, c.Args().First(), in)
					if err != nil {
						return err
					}
					printParts(c.App.Writer, []dto.SparePartResponse{*p})
					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "elimina un repuesto",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					s, err := session(c)
					if err != nil {
						return err
					}
					if err := apiClient(c).DeleteSparePart(c.Context, s, c.Args().First()); err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, "repuesto eliminado")
					return nil
				},
			},
		},
	}
}

func stockInCommand() *cli.Command {
	return &cli.Command{
		Name:  "stockin",
		Usage: "entradas de stock",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "lista las entradas",
				Action: func(c *cli.Context) error {
					s, err := session(c)
					if err != nil {
						return err
					}
					list, err := apiClient(c).ListStockIn(c.Context, s)
					if err != nil {
						return err
					}
					w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
					fmt.Fprintln(w, "ID\tCÓDIGO\tREPUESTO\tCANT.\tFECHA\tRECIBIÓ")
					for _, m := range list {
						fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n", m.ID, m.BusinessID, partName(m.SparePart), m.Quantity, m.Date.Format("2006-01-02"), m.ReceivedBy)
					}
					return w.Flush()
				},
			},
			{
				Name:  "create",
				Usage: "registra una entrada",
				Flags: append(movementFlags(), &cli.StringFlag{Name: "by", Usage: "quién recibe", Required: true}),
				Action: func(c *cli.Context) error {
					s, err := session(c)
					if err != nil {
						return err
					}
					date, err := parseDate(c.String("date"))
					if err != nil {
						return err
					}
					m, err := apiClient(c).CreateStockIn(c.Context, s, dto.CreateStockInRequest{
						BusinessID:  c.String("code"),
						SparePartID: c.String("part"),
						Quantity:    c.Int("qty"),
						Date:        date,
						ReceivedBy:  c.String("by"),
					})
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "entrada %s registrada; existencia de %s: %s\n", m.BusinessID, partName(m.SparePart), partQty(m.SparePart))
					return nil
				},
			},
			deleteMovement("entrada", func(c *cli.Context, id string) error {
				s, err := session(c)
				if err != nil {
					return err
				}
				return apiClient(c).DeleteStockIn(c.Context, s, id)
			}),
		},
	}
}

func stockOutCommand() *cli.Command {
	return &cli.Command{
		Name:  "stockout",
		Usage: "salidas de stock",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "lista las salidas",
				Action: func(c *cli.Context) error {
					s, err := session(c)
					if err != nil {
						return err
					}
					list, err := apiClient(c).ListStockOut(c.Context, s)
					if err != nil {
						return err
					}
					w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
					fmt.Fprintln(w, "ID\tCÓDIGO\tREPUESTO\tCANT.\tPRECIO\tTOTAL\tFECHA\tAPROBÓ")
					for _, m := range list {
						fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n", m.ID, m.BusinessID, partName(m.SparePart), m.Quantity,
							m.UnitPrice.StringFixed(2), m.TotalValue.StringFixed(2), m.Date.Format("2006-01-02"), m.ApprovedBy)
					}
					return w.Flush()
				},
			},
			{
				Name:  "create",
				Usage: "registra una salida",
				Flags: append(movementFlags(),
					&cli.StringFlag{Name: "price", Usage: "precio unitario de la salida", Required: true},
					&cli.StringFlag{Name: "by", Usage: "quién aprueba", Required: true},
				),
				Action: func(c *cli.Context) error {
					s, err := session(c)
					if err != nil {
						return err
					}
					date, err := parseDate(c.String("date"))
					if err != nil {
						return err
					}
					price, err := decimal.NewFromString(c.String("price"))
					if err != nil {
						return fmt.Errorf("precio inválido: %w", err)
					}
					m, err := apiClient(c).CreateStockOut(c.Context, s, dto.CreateStockOutRequest{
						BusinessID:  c.String("code"),
						SparePartID: c.String("part"),
						Quantity:    c.Int("qty"),
						Date:        date,
						UnitPrice:   &price,
						ApprovedBy:  c.String("by"),
					})
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "salida %s registrada (total %s); existencia de %s: %s\n",
						m.BusinessID, m.TotalValue.StringFixed(2), partName(m.SparePart), partQty(m.SparePart))
					return nil
				},
			},
			deleteMovement("salida", func(c *cli.Context, id string) error {
				s, err := session(c)
				if err != nil {
					return err
				}
				return apiClient(c).DeleteStockOut(c.Context, s, id)
			}),
		},
	}
}

func movementFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "part", Usage: "ID del repuesto", Required: true},
		&cli.StringFlag{Name: "code", Usage: "código del movimiento", Required: true},
		&cli.IntFlag{Name: "qty", Required: true},
		&cli.StringFlag{Name: "date", Usage: "YYYY-MM-DD o RFC 3339; por defecto hoy"},
	}
}

func deleteMovement(label string, del func(c *cli.Context, id string) error) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "elimina una " + label + " (no reajusta la existencia)",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			if err := del(c, c.Args().First()); err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, label+" eliminada")
			return nil
		},
	}
}

func historyCommand() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "historial de movimientos, el más reciente primero",
		Flags: []cli.Flag{&cli.IntFlag{Name: "limit", Value: 20}},
		Action: func(c *cli.Context) error {
			s, err := session(c)
			if err != nil {
				return err
			}
			h, err := apiClient(c).History(c.Context, s, c.Int("limit"))
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FECHA\tTIPO\tCÓDIGO\tREPUESTO\tCANT.\tRESPONSABLE")
			for _, e := range h.Items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n", e.Date.Format("2006-01-02"), e.Type, e.BusinessID, e.SparePartName, e.Quantity, e.Actor)
			}
			return w.Flush()
		},
	}
}

func summaryCommand() *cli.Command {
	return &cli.Command{
		Name:  "summary",
		Usage: "totales del inventario",
		Action: func(c *cli.Context) error {
			s, err := session(c)
			if err != nil {
				return err
			}
			sum, err := apiClient(c).Summary(c.Context, s)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "repuestos: %d\nentradas: %d\nsalidas: %d\nvalor del inventario: %s\n",
				sum.TotalSpareParts, sum.TotalStockIn, sum.TotalStockOut, sum.InventoryValue.StringFixed(2))
			return nil
		},
	}
}

func reorderCommand() *cli.Command {
	return &cli.Command{
		Name:  "reorder",
		Usage: "lista de reposición de repuestos con poca existencia",
		Flags: []cli.Flag{&cli.IntFlag{Name: "threshold", Usage: "umbral de existencia; 0 usa el del servidor"}},
		Action: func(c *cli.Context) error {
			s, err := session(c)
			if err != nil {
				return err
			}
			list, err := apiClient(c).Replenishment(c.Context, s, c.Int("threshold"))
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PRIORIDAD\tCÓDIGO\tNOMBRE\tEXISTENCIA\tPEDIR\tCOSTO EST.\tSALIDAS 90D")
			for _, r := range list {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%s\t%d\n", r.Priority, r.BusinessID, r.Name, r.CurrentStock,
					r.SuggestedOrderQty, r.EstimatedOrderCost.StringFixed(2), r.UnitsIssuedLast90d)
			}
			return w.Flush()
		},
	}
}

func reportCommand() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "descarga el reporte de existencias en PDF",
		Flags: []cli.Flag{&cli.StringFlag{Name: "out", Value: "existencias.pdf"}},
		Action: func(c *cli.Context) error {
			s, err := session(c)
			if err != nil {
				return err
			}
			pdf, err := apiClient(c).StockReport(c.Context, s)
			if err != nil {
				return err
			}
			if err := os.WriteFile(c.String("out"), pdf, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "reporte guardado en %s (%d bytes)\n", c.String("out"), len(pdf))
			return nil
		},
	}
}

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "importa un catálogo XML (UTF-8 o ISO-8859-1)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Value: "catalogo.xml"},
			&cli.BoolFlag{Name: "dry-run", Usage: "solo valida el archivo"},
		},
		Action: func(c *cli.Context) error {
			f, err := os.Open(c.String("file"))
			if err != nil {
				return err
			}
			defer f.Close()
			parts, err := parseCatalog(f)
			if err != nil {
				return err
			}
			if c.Bool("dry-run") {
				fmt.Fprintf(c.App.Writer, "%d repuestos válidos\n", len(parts))
				return nil
			}
			s, err := session(c)
			if err != nil {
				return err
			}
			api := apiClient(c)
			created, failed := 0, 0
			for _, in := range parts {
				if _, err := api.CreateSparePart(c.Context, s, in); err != nil {
					failed++
					fmt.Fprintf(c.App.ErrWriter, "%s: %v\n", in.BusinessID, err)
					continue
				}
				created++
			}
			fmt.Fprintf(c.App.Writer, "creados %d, con error %d\n", created, failed)
			return nil
		},
	}
}

func printParts(out io.Writer, parts []dto.SparePartResponse) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCÓDIGO\tNOMBRE\tCATEGORÍA\tCANT.\tPRECIO\tTOTAL")
	for _, p := range parts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n", p.ID, p.BusinessID, p.Name, p.Category, p.Quantity,
			p.UnitPrice.StringFixed(2), p.TotalValue.StringFixed(2))
	}
	_ = w.Flush()
}

func partName(p *dto.SparePartSummary) string {
	if p == nil {
		return "-"
	}
	return p.Name
}

func partQty(p *dto.SparePartSummary) string {
	if p == nil {
		return "-"
	}
	return strconv.Itoa(p.Quantity)
}

func parseDate(s string) (*dto.Date, error) {
	if s == "" {
		return nil, nil
	}
	var d dto.Date
	if err := d.UnmarshalJSON([]byte(strconv.Quote(s))); err != nil {
		return nil, fmt.Errorf("fecha %q inválida: %w", s, err)
	}
	return &d, nil
}

func strPtr(s string) *string { return &s }
