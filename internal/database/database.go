package database

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// defaultFoods — популярные продукты, добавляемые при первом запуске
var defaultFoods = []struct {
	name     string
	calories int
}{
	{"яблоко", 52},
	{"банан", 89},
	{"апельсин", 47},
	{"куриная грудка", 165},
	{"говядина", 250},
	{"рис", 130},
	{"гречка", 110},
	{"овсянка", 68},
	{"хлеб", 265},
	{"яйцо", 155},
	{"молоко", 42},
	{"творог", 145},
	{"сыр", 402},
	{"йогурт", 59},
	{"картофель", 77},
	{"морковь", 41},
	{"помидор", 18},
	{"огурец", 15},
	{"лосось", 208},
	{"тунец", 184},
}

type DB struct {
	conn *sql.DB
}

func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть базу данных: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.applySchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("не удалось применить схему: %w", err)
	}
	if err := db.seedFoods(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("не удалось заполнить базу продуктов: %w", err)
	}

	return db, nil
}

// applySchema читает и выполняет schema.sql
func (db *DB) applySchema() error {
	_, err := db.conn.Exec(schemaSQL)
	return err
}

// seedFoods добавляет продукты по умолчанию; повторный запуск безопасен
func (db *DB) seedFoods() error {
	stmt, err := db.conn.Prepare(`INSERT OR IGNORE INTO foods (name, calories_per_100g) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, f := range defaultFoods {
		if _, err := stmt.Exec(f.name, f.calories); err != nil {
			return err
		}
	}
	return nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}
