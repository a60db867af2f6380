package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execRecorder guarda las sentencias que recibe Exec.
type execRecorder struct {
	Querier
	sql []string
	err error
}

func (r *execRecorder) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	r.sql = append(r.sql, sql)
	return pgconn.CommandTag{}, r.err
}

func TestEnsureSchema_MontosSinEscalaFija(t *testing.T) {
	rec := &execRecorder{}
	require.NoError(t, EnsureSchema(context.Background(), rec))
	require.Len(t, rec.sql, 1)
	ddl := rec.sql[0]

	// Una escala fija redondea precios como 0.12345 y el total guardado deja de ser quantity * unit_price.
	assert.NotRegexp(t, regexp.MustCompile(`(?i)NUMERIC\s*\(`), ddl)
	for _, col := range []string{"unit_price", "total_value"} {
		assert.Regexp(t, regexp.MustCompile(`(?m)^\s*`+col+`\s+NUMERIC\b`), ddl)
		assert.Regexp(t, regexp.MustCompile(`ALTER COLUMN `+col+` TYPE NUMERIC[,;]`), ddl)
	}
}

func TestEnsureSchema_PropagaError(t *testing.T) {
	rec := &execRecorder{err: errors.New("conexión cerrada")}
	err := EnsureSchema(context.Background(), rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ensure schema")
}
