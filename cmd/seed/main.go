package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	defaultDSN := os.Getenv("DATABASE_URL")
	dsn := flag.String("dsn", defaultDSN, "database url")
	flag.Parse()

	if *dsn == "" {
		log.Fatal("DSN required via flag -dsn or DATABASE_URL env")
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Cannot ping DB:", err)
	}

	seedAdmin(db)
	seedMovies(db)
}

func seedAdmin(db *sql.DB) {
	username := "admin"
	password := "password"
	email := "admin@myflix.local"

	if envUser := os.Getenv("DB_ADMIN_USERNAME"); envUser != "" {
		username = envUser
	}

	if envPass := os.Getenv("DB_ADMIN_PASSWORD"); envPass != "" {
		password = envPass
	}

	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	query := `
		INSERT INTO users (username, password_hash, email)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO UPDATE SET password_hash = excluded.password_hash;
	`

	if _, err := db.Exec(query, username, string(hashed), email); err != nil {
		log.Fatal("Cannot seed admin user:", err)
	}

	fmt.Println("Seeded admin user:", username)
}

func seedMovies(db *sql.DB) {
	movies := []struct {
		title, description          string
		genreName, genreDescription string
		directorName, directorBio   string
		actors                      string
		imagePath                   string
		featured                    bool
	}{
		{
			title:            "Metropolis",
			description:      "In a futuristic city sharply divided between workers and planners, the son of the city's mastermind falls for a working-class prophet.",
			genreName:        "Science Fiction",
			genreDescription: "Speculative stories built around imagined science and technology.",
			directorName:     "Fritz Lang",
			directorBio:      "Austrian-German filmmaker, a central figure of German expressionism.",
			actors:           "{Brigitte Helm,Alfred Abel,Gustav Froehlich}",
			imagePath:        "/images/metropolis.jpg",
			featured:         true,
		},
		{
			title:            "M",
			description:      "A manhunt for a child murderer turns a city against itself.",
			genreName:        "Thriller",
			genreDescription: "Suspense-driven stories that keep the audience on edge.",
			directorName:     "Fritz Lang",
			directorBio:      "Austrian-German filmmaker, a central figure of German expressionism.",
			actors:           "{Peter Lorre,Otto Wernicke}",
			imagePath:        "/images/m.jpg",
			featured:         false,
		},
		{
			title:            "Wings of Desire",
			description:      "An angel wandering Berlin tires of eternity and longs to become human.",
			genreName:        "Drama",
			genreDescription: "Character-driven stories grounded in emotional conflict.",
			directorName:     "Wim Wenders",
			directorBio:      "German filmmaker associated with the New German Cinema movement.",
			actors:           "{Bruno Ganz,Solveig Dommartin,Otto Sander}",
			imagePath:        "/images/wings_of_desire.jpg",
			featured:         true,
		},
	}

	query := `
		INSERT INTO movies (title, description, genre_name, genre_description, director_name, director_bio, actors, image_path, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (title) DO NOTHING;
	`

	for _, m := range movies {
		if _, err := db.Exec(query,
			m.title, m.description,
			m.genreName, m.genreDescription,
			m.directorName, m.directorBio,
			m.actors, m.imagePath, m.featured,
		); err != nil {
			log.Fatal("Cannot seed movie:", err)
		}
	}

	fmt.Printf("Seeded %d movies\n", len(movies))
}
