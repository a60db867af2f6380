package mongodb

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
)

func TestSparePartDoc_DecimalRoundTrip(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	part := &entity.SparePart{
		ID: "id-1", BusinessID: "SP1", Name: "Bolt", Category: "Fijación",
		UnitPrice: decimal.RequireFromString("2.35"), Quantity: 10,
		TotalValue: decimal.RequireFromString("23.50"),
		CreatedAt:  now, UpdatedAt: now,
	}
	doc, err := newSparePartDoc(part)
	require.NoError(t, err)

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)
	var decoded sparePartDoc
	require.NoError(t, bson.Unmarshal(raw, &decoded))

	got, err := decoded.entity()
	require.NoError(t, err)
	assert.Equal(t, "SP1", got.BusinessID)
	assert.Equal(t, 10, got.Quantity)
	assert.True(t, part.UnitPrice.Equal(got.UnitPrice), got.UnitPrice.String())
	assert.True(t, part.TotalValue.Equal(got.TotalValue), got.TotalValue.String())
	assert.True(t, now.Equal(got.CreatedAt))
}

func TestSparePartDoc_FieldNames(t *testing.T) {
	doc, err := newSparePartDoc(&entity.SparePart{ID: "id-1", BusinessID: "SP1", Name: "Bolt"})
	require.NoError(t, err)
	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var m bson.M
	require.NoError(t, bson.Unmarshal(raw, &m))
	for _, key := range []string{"_id", "business_id", "name", "unit_price", "quantity", "total_value", "created_at"} {
		assert.Contains(t, m, key)
	}
	assert.NotContains(t, m, "category", "category vacía se omite")
}

func TestStockOutDoc_RoundTrip(t *testing.T) {
	out := &entity.StockOut{
		ID: "o-1", BusinessID: "OUT1", SparePartID: "id-1", Quantity: 3,
		Date:      time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		UnitPrice: decimal.RequireFromString("4.10"), TotalValue: decimal.RequireFromString("12.30"),
		ApprovedBy: "Luis",
	}
	doc, err := newStockOutDoc(out)
	require.NoError(t, err)
	got, err := doc.entity()
	require.NoError(t, err)
	assert.True(t, out.TotalValue.Equal(got.TotalValue))
	assert.Equal(t, "Luis", got.ApprovedBy)
}

func TestUserDoc_UsernameKey(t *testing.T) {
	doc := newUserDoc(&entity.User{ID: "u-1", Username: "Ana"})
	assert.Equal(t, "ana", doc.UsernameKey)
	assert.Equal(t, "Ana", doc.entity().Username)
	assert.Equal(t, "ana", usernameKey("  ANA "))
}
