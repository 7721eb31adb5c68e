package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/retroboardhq/retroboard/internal/dbconfig"
)

// User mirrors the JSON snapshot structure
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}

var demoColumns = []string{"What went well", "What didn't", "Action items"}

func main() {
	// 1) Load the JSON snapshot
	data, err := os.ReadFile("internal/assets/demo_users.json")
	if err != nil {
		fmt.Fprintf(os.Stderr, "read JSON: %v\n", err)
		os.Exit(1)
	}
	var users []User
	if err := json.Unmarshal(data, &users); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal JSON: %v\n", err)
		os.Exit(1)
	}

	// 2) Connect using shared dbconfig
	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(context.Background(), cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// 3) Upsert users and count
	var (
		total    = len(users)
		inserted int
		skipped  int
		errs     int
	)

	for _, u := range users {
		cmdTag, err := pool.Exec(context.Background(), `
            INSERT INTO users (id, email, nickname, avatar)
            VALUES ($1, $2, $3, $4)
            ON CONFLICT (email) DO NOTHING
        `, u.ID, u.Email, u.Nickname, u.Avatar)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error inserting user %s: %v\n", u.Nickname, err)
			errs++
			continue
		}
		if cmdTag.RowsAffected() == 1 {
			inserted++
		} else {
			skipped++
		}
	}

	fmt.Printf(
		"Users seed complete: %d total, %d inserted, %d skipped, %d errors\n",
		total, inserted, skipped, errs,
	)

	if len(users) == 0 {
		return
	}

	// 4) Give the first user a demo board with the default column set
	owner := users[0]
	var boardID string
	err = pool.QueryRow(context.Background(), `
        INSERT INTO boards (title, owner_id, invite_code)
        VALUES ('Demo Retro', $1, 'demoboard')
        ON CONFLICT (invite_code) WHERE invite_code IS NOT NULL DO NOTHING
        RETURNING id
    `, owner.ID).Scan(&boardID)
	if err != nil {
		fmt.Println("Demo board already present, skipping")
		return
	}

	for i, title := range demoColumns {
		if _, err := pool.Exec(context.Background(), `
            INSERT INTO columns (board_id, title, order_index)
            VALUES ($1, $2, $3)
        `, boardID, title, i); err != nil {
			fmt.Fprintf(os.Stderr, "error inserting column %q: %v\n", title, err)
		}
	}

	for _, u := range users {
		if _, err := pool.Exec(context.Background(), `
            INSERT INTO board_accesses (board_id, user_id)
            VALUES ($1, $2)
            ON CONFLICT (board_id, user_id) DO NOTHING
        `, boardID, u.ID); err != nil {
			fmt.Fprintf(os.Stderr, "error granting access to %s: %v\n", u.Nickname, err)
		}
	}

	fmt.Printf("Demo board %s seeded with %d columns\n", boardID, len(demoColumns))
}
