// stockctl es la consola de operación de la API de repuestos.
//
// Uso:
//
//	stockctl login -u bodega -p secreto
//	stockctl parts list
//	stockctl stockin create --part <id> --code IN1 --qty 5 --by Ana
//	stockctl seed --file catalogo.xml
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/jhoicas/Repuestos-api/pkg/client"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "stockctl",
		Usage: "opera la API de inventario de repuestos",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api",
				Usage:   "URL base de la API",
				Value:   "http://localhost:4000",
				EnvVars: []string{"STOCKCTL_API"},
			},
			&cli.StringFlag{
				Name:    "session",
				Usage:   "archivo donde se guarda la sesión",
				Value:   defaultSessionPath(),
				EnvVars: []string{"STOCKCTL_SESSION"},
			},
		},
		Commands: []*cli.Command{
			registerCommand(),
			loginCommand(),
			logoutCommand(),
			partsCommand(),
			stockInCommand(),
			stockOutCommand(),
			historyCommand(),
			summaryCommand(),
			reorderCommand(),
			reportCommand(),
			seedCommand(),
		},
	}
}

func apiClient(c *cli.Context) *client.Client {
	return client.New(c.String("api"))
}

// session carga la sesión guardada por login.
func session(c *cli.Context) (*client.Session, error) {
	return loadSession(c.String("session"))
}
