package main

import (
	"flag"
	"log"

	"translation-office/pkg/config"
	"translation-office/pkg/database/postgresql"
	"translation-office/seeders"
)

func main() {
	email := flag.String("email", "admin@translated.ae", "admin account email")
	password := flag.String("password", "", "admin account password")
	name := flag.String("name", "Administrator", "admin display name")
	flag.Parse()

	if *password == "" {
		log.Println("a password is required:")
		flag.PrintDefaults()
		return
	}

	cfg := config.New()
	pool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer pool.Close()

	if err := postgresql.Migrate(cfg.Postgres.DSN); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}

	seeders.SeedAdminUser(pool, *email, *password, *name)
}
