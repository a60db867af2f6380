package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPgErrorClassification(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	check := &pgconn.PgError{Code: "23514"}
	other := errors.New("23505 en el texto no cuenta")

	assert.True(t, isUniqueViolation(unique))
	assert.False(t, isUniqueViolation(check))
	assert.False(t, isUniqueViolation(other))

	assert.True(t, isCheckViolation(check))
	assert.False(t, isCheckViolation(unique))
}

func TestSchemaDDL_NoForeignKeysOnMovements(t *testing.T) {
	assert.NotContains(t, schemaDDL, "REFERENCES", "eliminar un repuesto no debe fallar por movimientos")
	assert.Contains(t, schemaDDL, "CHECK (quantity >= 0)")
	for _, table := range []string{"spare_parts", "stock_ins", "stock_outs", "users"} {
		assert.Contains(t, schemaDDL, "CREATE TABLE IF NOT EXISTS "+table)
	}
}
