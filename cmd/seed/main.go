// Package main provides a tool to seed the database with demo data.
//
// It registers a handful of demo accounts and fills their boards with cards,
// labels, subtasks, and a few weeks of worklogs so reports have something to
// aggregate.
//
// Usage:
//
//	DATABASE_PATH=~/neocare/neocare.db go run ./cmd/seed
package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/neocare/neocare-server/internal/auth"
	"github.com/neocare/neocare-server/internal/domain"
	"github.com/neocare/neocare-server/internal/service"
	"github.com/neocare/neocare-server/internal/store/sqlite"
)

var (
	users = flag.Int("users", 3, "Number of demo accounts to create")
	weeks = flag.Int("weeks", 4, "Weeks of worklog history to generate")
)

var cardTitles = []string{
	"Preparar informe semanal",
	"Revisar incidencias",
	"Llamar al proveedor",
	"Actualizar documentación",
	"Planificar la iteración",
	"Corregir errores reportados",
}

func main() {
	flag.Parse()

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/neocare/neocare.db")
	}

	st, err := sqlite.Open(dbPath, nil)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer st.Close()

	key, err := auth.LoadOrGenerateKey(filepath.Dir(dbPath))
	if err != nil {
		log.Fatalf("Failed to load auth key: %v", err)
	}
	tokens, err := auth.NewTokenService(hex.EncodeToString(key), time.Hour)
	if err != nil {
		log.Fatalf("Failed to create token service: %v", err)
	}

	svcs := service.NewServices(st, tokens, nil)
	ctx := context.Background()

	for u := 0; u < *users; u++ {
		email := fmt.Sprintf("demo%d@example.com", u+1)
		user, err := svcs.Auth.Register(ctx, service.RegisterRequest{
			Email:    email,
			Password: "demopassword",
		})
		if err != nil {
			log.Printf("Skipping %s: %v", email, err)
			continue
		}

		boards, err := svcs.Boards.ListBoards(ctx, user.ID)
		if err != nil || len(boards) == 0 {
			log.Fatalf("No seeded board for %s: %v", email, err)
		}
		board := boards[0]

		for c := 0; c < len(cardTitles); c++ {
			card, err := svcs.Cards.Create(ctx, user.ID, service.CreateCardRequest{
				BoardID: board.ID,
				Title:   cardTitles[c],
				DueDate: domain.Today().AddDays(rand.Intn(14) - 7),
			})
			if err != nil {
				log.Fatalf("Failed to create card: %v", err)
			}

			// A few days of logged hours spread over the past weeks.
			for d := 0; d < *weeks*2; d++ {
				date := domain.Today().AddDays(-rand.Intn(*weeks * 7))
				_, err := svcs.WorkLogs.Create(ctx, user.ID, card.ID, service.CreateWorkLogRequest{
					Date:  date,
					Hours: float64(rand.Intn(6)+1) / 2.0,
					Note:  "trabajo de demostración",
				})
				if err != nil {
					log.Fatalf("Failed to log hours: %v", err)
				}
			}
		}

		fmt.Printf("Seeded %s (board %d)\n", email, board.ID)
	}

	fmt.Println("Done.")
}
