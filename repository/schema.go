package repository

const postgresSchemaSQL = `
CREATE TABLE IF NOT EXISTS calculations (
	id             TEXT PRIMARY KEY,
	debt           DOUBLE PRECISION NOT NULL CHECK (debt >= 0),
	income         DOUBLE PRECISION NOT NULL CHECK (income >= 0),
	growth         DOUBLE PRECISION NOT NULL CHECK (growth >= 0 AND growth <= 100),
	years_to_repay INTEGER NOT NULL CHECK (years_to_repay >= 0 AND years_to_repay <= 30),
	created_at     TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_calculations_created_at ON calculations(created_at);

CREATE TABLE IF NOT EXISTS tax_calculations (
	id                      TEXT PRIMARY KEY,
	income                  DOUBLE PRECISION NOT NULL CHECK (income >= 0),
	tax_year                TEXT NOT NULL,
	residency_status        TEXT NOT NULL,
	medicare_levy_exemption BOOLEAN NOT NULL DEFAULT FALSE,
	created_at              TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tax_calculations_created_at ON tax_calculations(created_at);

CREATE TABLE IF NOT EXISTS feedback (
	id          TEXT PRIMARY KEY,
	type        TEXT NOT NULL,
	title       TEXT NOT NULL,
	description TEXT NOT NULL,
	email       TEXT NOT NULL DEFAULT '',
	status      TEXT NOT NULL DEFAULT 'new',
	priority    TEXT NOT NULL DEFAULT 'medium',
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);
`

// SQLite stores timestamps as RFC 3339 text.
const sqliteSchemaSQL = `
CREATE TABLE IF NOT EXISTS calculations (
	id             TEXT PRIMARY KEY,
	debt           REAL NOT NULL CHECK (debt >= 0),
	income         REAL NOT NULL CHECK (income >= 0),
	growth         REAL NOT NULL CHECK (growth >= 0 AND growth <= 100),
	years_to_repay INTEGER NOT NULL CHECK (years_to_repay >= 0 AND years_to_repay <= 30),
	created_at     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_calculations_created_at ON calculations(created_at);

CREATE TABLE IF NOT EXISTS tax_calculations (
	id                      TEXT PRIMARY KEY,
	income                  REAL NOT NULL CHECK (income >= 0),
	tax_year                TEXT NOT NULL,
	residency_status        TEXT NOT NULL,
	medicare_levy_exemption INTEGER NOT NULL DEFAULT 0,
	created_at              TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tax_calculations_created_at ON tax_calculations(created_at);

CREATE TABLE IF NOT EXISTS feedback (
	id          TEXT PRIMARY KEY,
	type        TEXT NOT NULL,
	title       TEXT NOT NULL,
	description TEXT NOT NULL,
	email       TEXT NOT NULL DEFAULT '',
	status      TEXT NOT NULL DEFAULT 'new',
	priority    TEXT NOT NULL DEFAULT 'medium',
	created_at  TEXT NOT NULL,
	updated_at  TEXT NOT NULL
);
`
