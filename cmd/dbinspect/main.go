// Package main provides a read-only inspection tool for the NeoCare database.
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "modernc.org/sqlite"
)

var tables = []string{"users", "boards", "lists", "cards", "labels", "subtasks", "worklogs"}

func main() {
	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/neocare/neocare.db")
	}

	db, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	fmt.Println("=== Database Inspection ===")
	fmt.Printf("Path: %s\n\n", dbPath)

	for _, table := range tables {
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
			log.Fatalf("Failed to count %s: %v", table, err)
		}
		fmt.Printf("%-10s %d\n", table, count)
	}

	fmt.Println("\n=== Recent cards ===")
	rows, err := db.Query(`
		SELECT c.id, c.title, l.name, c.updated_at
		FROM cards c
		JOIN lists l ON l.id = c.list_id
		ORDER BY c.updated_at DESC
		LIMIT 10`)
	if err != nil {
		log.Fatalf("Failed to query cards: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        int64
			title     string
			list      string
			updatedAt string
		)
		if err := rows.Scan(&id, &title, &list, &updatedAt); err != nil {
			log.Fatalf("Failed to scan card: %v", err)
		}
		fmt.Printf("#%-5d %-40s %-12s %s\n", id, title, list, updatedAt)
	}
	if err := rows.Err(); err != nil {
		log.Fatalf("Failed to iterate cards: %v", err)
	}
}
