package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"myflix/internal/storage/postgres"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cmd := flag.String("op", "", "operation: up, down, version, force")
	steps := flag.Int("steps", 0, "number of steps for up/down (0 = all)")
	dsn := flag.String("dsn", os.Getenv("DATABASE_URL"), "database url")
	flag.Parse()

	if *cmd == "" {
		fmt.Println("Usage: go run cmd/migrate/main.go -op=[up|down|version|force] -steps=[n] -dsn=[url]")
		os.Exit(1)
	}

	if *dsn == "" {
		log.Fatal("DSN required via flag -dsn or DATABASE_URL env")
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		log.Fatalf("could not create driver: %v", err)
	}

	src, err := iofs.New(postgres.MigrationsFS, "migrations")
	if err != nil {
		log.Fatalf("could not create source driver: %v", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		log.Fatalf("could not create migrate instance: %v", err)
	}

	switch *cmd {
	case "up":
		if *steps > 0 {
			err = m.Steps(*steps)
		} else {
			err = m.Up()
		}
	case "down":
		if *steps > 0 {
			err = m.Steps(-(*steps))
		} else {
			err = m.Down()
		}
	case "version":
		v, dirty, err := m.Version()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Version: %d, Dirty: %v\n", v, dirty)
		return
	case "force":
		if *steps == 0 {
			log.Fatal("please specify version to force")
		}
		err = m.Force(*steps)
	default:
		log.Fatal("unknown command")
	}

	if err != nil {
		if err == migrate.ErrNoChange {
			fmt.Println("No changes detected.")
		} else {
			log.Fatalf("Migration failed: %v", err)
		}
	} else {
		fmt.Println("Migration success!")
	}
}
