package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema define las siete tablas del sistema. Las cascadas son el contrato de
// integridad referencial documentado del diseño: borrar un cliente arrastra
// mascotas, citas, registros clínicos, facturas y reseñas; el servicio no
// replica esa lógica.
const schema = `
CREATE TABLE IF NOT EXISTS clients (
	id    BIGSERIAL PRIMARY KEY,
	name  TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS pets (
	id        BIGSERIAL PRIMARY KEY,
	name      TEXT NOT NULL,
	species   TEXT NOT NULL,
	breed     TEXT NOT NULL DEFAULT '',
	age       INTEGER NOT NULL CHECK (age >= 0),
	client_id BIGINT NOT NULL REFERENCES clients(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS appointments (
	id     BIGSERIAL PRIMARY KEY,
	pet_id BIGINT NOT NULL REFERENCES pets(id) ON DELETE CASCADE,
	date   DATE NOT NULL,
	reason TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'Pendiente' CHECK (status IN ('Pendiente', 'Completada'))
);

CREATE TABLE IF NOT EXISTS medical_records (
	id             BIGSERIAL PRIMARY KEY,
	appointment_id BIGINT NOT NULL REFERENCES appointments(id) ON DELETE CASCADE,
	diagnosis      TEXT NOT NULL,
	treatment      TEXT NOT NULL,
	notes          TEXT
);

CREATE TABLE IF NOT EXISTS invoices (
	id        BIGSERIAL PRIMARY KEY,
	client_id BIGINT NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
	date      DATE NOT NULL,
	total     NUMERIC(12,2) NOT NULL CHECK (total > 0),
	status    TEXT NOT NULL DEFAULT 'Pendiente' CHECK (status IN ('Pendiente', 'Pagada'))
);

CREATE TABLE IF NOT EXISTS reviews (
	id        BIGSERIAL PRIMARY KEY,
	client_id BIGINT NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
	rating    INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
	comment   TEXT,
	date      DATE NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
	id            BIGSERIAL PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL DEFAULT 'admin'
);
`

// EnsureSchema crea las tablas si no existen. Idempotente; se ejecuta en el
// arranque antes de construir los repositorios.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}
