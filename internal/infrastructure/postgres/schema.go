package postgres

import (
	"context"
	"fmt"
)

// schemaDDL crea las tablas si no existen. Los movimientos no llevan FK hacia
// spare_parts: eliminar un repuesto deja sus movimientos huérfanos.
// Los montos son NUMERIC sin escala fija para guardar exactamente el decimal calculado;
// los ALTER migran columnas creadas antes con escala 4.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS spare_parts (
	id          TEXT PRIMARY KEY,
	business_id TEXT NOT NULL UNIQUE,
	name        TEXT NOT NULL,
	category    TEXT NOT NULL DEFAULT '',
	unit_price  NUMERIC NOT NULL CHECK (unit_price >= 0),
	quantity    INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
	total_value NUMERIC NOT NULL DEFAULT 0,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS stock_ins (
	id            TEXT PRIMARY KEY,
	business_id   TEXT NOT NULL UNIQUE,
	spare_part_id TEXT NOT NULL,
	quantity      INTEGER NOT NULL CHECK (quantity > 0),
	date          TIMESTAMPTZ NOT NULL,
	received_by   TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_stock_ins_spare_part ON stock_ins (spare_part_id);

CREATE TABLE IF NOT EXISTS stock_outs (
	id            TEXT PRIMARY KEY,
	business_id   TEXT NOT NULL UNIQUE,
	spare_part_id TEXT NOT NULL,
	quantity      INTEGER NOT NULL CHECK (quantity > 0),
	date          TIMESTAMPTZ NOT NULL,
	unit_price    NUMERIC NOT NULL CHECK (unit_price >= 0),
	total_value   NUMERIC NOT NULL,
	approved_by   TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_stock_outs_spare_part ON stock_outs (spare_part_id);

CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	username      TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username ON users (lower(username));

ALTER TABLE spare_parts
	ALTER COLUMN unit_price TYPE NUMERIC,
	ALTER COLUMN total_value TYPE NUMERIC;
ALTER TABLE stock_outs
	ALTER COLUMN unit_price TYPE NUMERIC,
	ALTER COLUMN total_value TYPE NUMERIC;
`

// EnsureSchema aplica schemaDDL. Es idempotente.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
