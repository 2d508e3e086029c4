//go:build ignore

// Standalone migration runner: applies the SQL files in migrations/ in order.
//
//	go run scripts/migrate.go [up|down]
package main

import (
	"database/sql"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	migrate "github.com/rubenv/sql-migrate"

	"github.com/middlegroundapp/middleground/pkg/config"
)

func main() {
	direction := migrate.Up
	if len(os.Args) > 1 && os.Args[1] == "down" {
		direction = migrate.Down
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sql.Open("pgx", cfg.GetDatabaseDSN())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	migrations := &migrate.FileMigrationSource{Dir: "migrations"}
	n, err := migrate.Exec(db, "postgres", migrations, direction)
	if err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	log.Printf("Applied %d migrations", n)
}
