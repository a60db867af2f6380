package mongodb

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
)

// Los montos se guardan como Decimal128 para que el servidor pueda multiplicarlos
// sin pérdida en la actualización atómica de existencia.

type sparePartDoc struct {
	ID         string               `bson:"_id"`
	BusinessID string               `bson:"business_id"`
	Name       string               `bson:"name"`
	Category   string               `bson:"category,omitempty"`
	UnitPrice  primitive.Decimal128 `bson:"unit_price"`
	Quantity   int                  `bson:"quantity"`
	TotalValue primitive.Decimal128 `bson:"total_value"`
	CreatedAt  time.Time            `bson:"created_at"`
	UpdatedAt  time.Time            `bson:"updated_at"`
}

type stockInDoc struct {
	ID          string    `bson:"_id"`
	BusinessID  string    `bson:"business_id"`
	SparePartID string    `bson:"spare_part_id"`
	Quantity    int       `bson:"quantity"`
	Date        time.Time `bson:"date"`
	ReceivedBy  string    `bson:"received_by"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

type stockOutDoc struct {
	ID          string               `bson:"_id"`
	BusinessID  string               `bson:"business_id"`
	SparePartID string               `bson:"spare_part_id"`
	Quantity    int                  `bson:"quantity"`
	Date        time.Time            `bson:"date"`
	UnitPrice   primitive.Decimal128 `bson:"unit_price"`
	TotalValue  primitive.Decimal128 `bson:"total_value"`
	ApprovedBy  string               `bson:"approved_by"`
	CreatedAt   time.Time            `bson:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at"`
}

type userDoc struct {
	ID           string    `bson:"_id"`
	Username     string    `bson:"username"`
	UsernameKey  string    `bson:"username_key"` // username en minúsculas, índice único
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("mongodb: decimal %s: %w", d.String(), err)
	}
	return v, nil
}

func fromDecimal128(v primitive.Decimal128) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("mongodb: decimal128 %s: %w", v.String(), err)
	}
	return d, nil
}

func newSparePartDoc(p *entity.SparePart) (*sparePartDoc, error) {
	unit, err := toDecimal128(p.UnitPrice)
	if err != nil {
		return nil, err
	}
	total, err := toDecimal128(p.TotalValue)
	if err != nil {
		return nil, err
	}
	return &sparePartDoc{
		ID:         p.ID,
		BusinessID: p.BusinessID,
		Name:       p.Name,
		Category:   p.Category,
		UnitPrice:  unit,
		Quantity:   p.Quantity,
		TotalValue: total,
		CreatedAt:  p.CreatedAt.UTC(),
		UpdatedAt:  p.UpdatedAt.UTC(),
	}, nil
}

func (d *sparePartDoc) entity() (*entity.SparePart, error) {
	unit, err := fromDecimal128(d.UnitPrice)
	if err != nil {
		return nil, err
	}
	total, err := fromDecimal128(d.TotalValue)
	if err != nil {
		return nil, err
	}
	return &entity.SparePart{
		ID:         d.ID,
		BusinessID: d.BusinessID,
		Name:       d.Name,
		Category:   d.Category,
		UnitPrice:  unit,
		Quantity:   d.Quantity,
		TotalValue: total,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}, nil
}

func newStockInDoc(m *entity.StockIn) *stockInDoc {
	return &stockInDoc{
		ID:          m.ID,
		BusinessID:  m.BusinessID,
		SparePartID: m.SparePartID,
		Quantity:    m.Quantity,
		Date:        m.Date.UTC(),
		ReceivedBy:  m.ReceivedBy,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

func (d *stockInDoc) entity() *entity.StockIn {
	return &entity.StockIn{
		ID:          d.ID,
		BusinessID:  d.BusinessID,
		SparePartID: d.SparePartID,
		Quantity:    d.Quantity,
		Date:        d.Date,
		ReceivedBy:  d.ReceivedBy,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func newStockOutDoc(m *entity.StockOut) (*stockOutDoc, error) {
	unit, err := toDecimal128(m.UnitPrice)
	if err != nil {
		return nil, err
	}
	total, err := toDecimal128(m.TotalValue)
	if err != nil {
		return nil, err
	}
	return &stockOutDoc{
		ID:          m.ID,
		BusinessID:  m.BusinessID,
		SparePartID: m.SparePartID,
		Quantity:    m.Quantity,
		Date:        m.Date.UTC(),
		UnitPrice:   unit,
		TotalValue:  total,
		ApprovedBy:  m.ApprovedBy,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}, nil
}

func (d *stockOutDoc) entity() (*entity.StockOut, error) {
	unit, err := fromDecimal128(d.UnitPrice)
	if err != nil {
		return nil, err
	}
	total, err := fromDecimal128(d.TotalValue)
	if err != nil {
		return nil, err
	}
	return &entity.StockOut{
		ID:          d.ID,
		BusinessID:  d.BusinessID,
		SparePartID: d.SparePartID,
		Quantity:    d.Quantity,
		Date:        d.Date,
		UnitPrice:   unit,
		TotalValue:  total,
		ApprovedBy:  d.ApprovedBy,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}, nil
}

func usernameKey(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func newUserDoc(u *entity.User) *userDoc {
	return &userDoc{
		ID:           u.ID,
		Username:     u.Username,
		UsernameKey:  usernameKey(u.Username),
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt.UTC(),
		UpdatedAt:    u.UpdatedAt.UTC(),
	}
}

func (d *userDoc) entity() *entity.User {
	return &entity.User{
		ID:           d.ID,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
