package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalog_ISO88591(t *testing.T) {
	// "Bujía" y "Dirección" en Latin-1: í = 0xED, ó = 0xF3.
	raw := []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n<catalogo>" +
		"<repuesto codigo=\"SP1\" nombre=\"Buj\xeda\" categoria=\"Motor\" precio=\"12.50\" cantidad=\"4\"/>" +
		"<repuesto codigo=\"SP2\" nombre=\"Terminal\" categoria=\"Direcci\xf3n\" precio=\"3\"/>" +
		"<repuesto codigo=\"\" nombre=\"sin codigo\" precio=\"1\"/>" +
		"</catalogo>")

	parts, err := parseCatalog(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, parts, 2)

	assert.Equal(t, "SP1", parts[0].BusinessID)
	assert.Equal(t, "Bujía", parts[0].Name)
	assert.Equal(t, "12.5", parts[0].UnitPrice.String())
	require.NotNil(t, parts[0].Quantity)
	assert.Equal(t, 4, *parts[0].Quantity)

	assert.Equal(t, "Dirección", parts[1].Category)
	assert.Nil(t, parts[1].Quantity)
}

func TestParseCatalog_PrecioInvalido(t *testing.T) {
	_, err := parseCatalog(strings.NewReader(`<catalogo><repuesto codigo="SP1" nombre="Bolt" precio="abc"/></catalogo>`))
	assert.ErrorContains(t, err, "precio")
}
