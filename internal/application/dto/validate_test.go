package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/domain"
)

func TestValidate_TextoEnBlancoEsRequerido(t *testing.T) {
	price := decimal.NewFromInt(1)
	blank := " \t "

	cases := map[string]any{
		"código":          dto.CreateSparePartRequest{BusinessID: blank, Name: "Bolt", UnitPrice: &price},
		"nombre":          dto.CreateSparePartRequest{BusinessID: "SP1", Name: blank, UnitPrice: &price},
		"receptor":        dto.CreateStockInRequest{BusinessID: "IN1", SparePartID: "p", Quantity: 1, ReceivedBy: blank},
		"aprobador":       dto.CreateStockOutRequest{BusinessID: "OUT1", SparePartID: "p", Quantity: 1, UnitPrice: &price, ApprovedBy: blank},
		"edición nombre":  dto.UpdateSparePartRequest{Name: &blank},
		"edición entrada": dto.UpdateStockInRequest{ReceivedBy: &blank},
		"usuario":         dto.RegisterRequest{Username: "    ", Password: "secreto1"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			err := dto.Validate(in)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), "es requerido")
		})
	}

	assert.NoError(t, dto.Validate(dto.UpdateSparePartRequest{}), "los campos ausentes de una edición no se validan")
	assert.NoError(t, dto.Validate(dto.CreateSparePartRequest{BusinessID: " SP1 ", Name: "Bolt", UnitPrice: &price}))
}
