// Command seed fills the database with demo users, artists and catalog data.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"chorus/internal/config"
	"chorus/internal/database"
	"chorus/internal/seed"
)

func main() {
	users := flag.Int("users", 20, "number of users to create")
	artists := flag.Int("artists", 0, "number of users with artist profiles (default half)")
	clean := flag.Bool("clean", false, "wipe existing data before seeding")
	flag.Parse()

	if err := run(*users, *artists, *clean); err != nil {
		log.Fatal(err)
	}
}

func run(users, artists int, clean bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	if err := database.ApplySchema(context.Background(), db, cfg); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    users,
		NumArtists:  artists,
		ShouldClean: clean,
	}); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	log.Printf("seeded %d users", users)
	return nil
}
