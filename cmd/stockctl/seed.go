package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
)

// catalogo formato del XML de importación:
//
//	<?xml version="1.0" encoding="ISO-8859-1"?>
//	<catalogo>
//	  <repuesto codigo="SP1" nombre="Bujía" categoria="Motor" precio="12.50" cantidad="4"/>
//	</catalogo>
type catalogo struct {
	Repuestos []repuestoXML `xml:"repuesto"`
}

type repuestoXML struct {
	Codigo    string `xml:"codigo,attr"`
	Nombre    string `xml:"nombre,attr"`
	Categoria string `xml:"categoria,attr"`
	Precio    string `xml:"precio,attr"`
	Cantidad  *int   `xml:"cantidad,attr"`
}

// parseCatalog decodifica el catálogo (UTF-8 o ISO-8859-1) a requests de creación.
// Las filas sin código o nombre se omiten.
func parseCatalog(r io.Reader) ([]dto.CreateSparePartRequest, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		switch strings.ToUpper(charset) {
		case "ISO-8859-1", "ISO8859-1", "LATIN1":
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		case "WINDOWS-1252", "CP1252":
			return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
		}
		return input, nil
	}
	var c catalogo
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decodificar catálogo: %w", err)
	}

	out := make([]dto.CreateSparePartRequest, 0, len(c.Repuestos))
	for i, rep := range c.Repuestos {
		code, name := strings.TrimSpace(rep.Codigo), strings.TrimSpace(rep.Nombre)
		if code == "" || name == "" {
			continue
		}
		price, err := decimal.NewFromString(strings.TrimSpace(rep.Precio))
		if err != nil {
			return nil, fmt.Errorf("repuesto %d (%s): precio %q inválido", i+1, code, rep.Precio)
		}
		out = append(out, dto.CreateSparePartRequest{
			BusinessID: code,
			Name:       name,
			Category:   strings.TrimSpace(rep.Categoria),
			UnitPrice:  &price,
			Quantity:   rep.Cantidad,
		})
	}
	return out, nil
}
