// seed inserts a demo user and 15 notes into the local dev database.
// Run: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/AlexHopeIT/notes-servise-test/internal/infrastructure/postgres"
	"github.com/AlexHopeIT/notes-servise-test/internal/password"
)

const (
	seedUsername = "alice"
	seedPassword = "pw1"
	noteCount    = 15
)

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	if err := postgres.Migrate(ctx, dbURL); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	hash, err := password.Hash(seedPassword)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	// Upsert demo user, keep the known password on re-runs
	var userID int64
	err = pool.QueryRow(ctx, `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash
		RETURNING id`,
		seedUsername, hash,
	).Scan(&userID)
	if err != nil {
		log.Fatalf("upsert user: %v", err)
	}

	var existing int64
	if err := pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM notes WHERE owner_id = $1`, userID,
	).Scan(&existing); err != nil {
		log.Fatalf("count notes: %v", err)
	}

	var inserted int
	for i := int(existing); i < noteCount; i++ {
		_, err := pool.Exec(ctx, `
			INSERT INTO notes (title, content, owner_id)
			VALUES ($1, $2, $3)`,
			fmt.Sprintf("seed note %02d", i+1),
			fmt.Sprintf("content of seed note %02d", i+1),
			userID,
		)
		if err != nil {
			log.Fatalf("insert note %d: %v", i+1, err)
		}
		inserted++
	}

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  User:  %s / %s (id %d)\n", seedUsername, seedPassword, userID)
	fmt.Printf("  Notes: %d inserted (%d already existing)\n", inserted, existing)
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Println("  Step 1: get a token")
	fmt.Println()
	fmt.Printf("    curl -s -X POST http://localhost:8080/token \\\n")
	fmt.Printf("      -d 'username=%s' -d 'password=%s'\n", seedUsername, seedPassword)
	fmt.Println("    # {\"access_token\":\"eyJ...\",\"token_type\":\"bearer\"}")
	fmt.Println()
	fmt.Println("  Step 2: list the first page of notes")
	fmt.Println()
	fmt.Println("    export TOKEN=eyJ...")
	fmt.Println("    curl -s 'http://localhost:8080/notes/?skip=0&limit=10' -H \"Authorization: Bearer $TOKEN\"")
	fmt.Println()
	fmt.Println("  Step 3: create a note")
	fmt.Println()
	fmt.Println("    curl -s -X POST http://localhost:8080/notes/ \\")
	fmt.Println("      -H \"Authorization: Bearer $TOKEN\" -H 'Content-Type: application/json' \\")
	fmt.Println("      -d '{\"title\":\"t\",\"content\":\"c\"}'")
}
