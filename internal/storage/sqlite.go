package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS user_settings (
	user_id     INTEGER PRIMARY KEY,
	model       TEXT NOT NULL,
	temperature REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS history (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id     INTEGER NOT NULL,
	created_at  TEXT NOT NULL,
	model       TEXT NOT NULL,
	temperature REAL NOT NULL,
	prompt      TEXT NOT NULL,
	response    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_history_user_id ON history (user_id);

CREATE TABLE IF NOT EXISTS products (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL,
	description TEXT,
	price       INTEGER NOT NULL,
	photo       TEXT
);

CREATE TABLE IF NOT EXISTS cart (
	user_id    INTEGER NOT NULL,
	product_id INTEGER NOT NULL,
	FOREIGN KEY (product_id) REFERENCES products (id)
);
`

// Open — открывает sqlite-базу и накатывает схему
func Open(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return db, nil
}
