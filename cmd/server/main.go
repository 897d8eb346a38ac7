package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	webAdapter "finstat/internal/adapters/web"
	"finstat/internal/ai"
	"finstat/internal/app"
	"finstat/internal/core"
	"finstat/internal/db"
	"finstat/internal/store"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	chart, err := core.NewChart(core.DefaultMasters())
	if err != nil {
		log.Fatalf("chart: %v", err)
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Println("Warning: OPENAI_API_KEY is not set; mapping suggestions limited to the example corpus")
	}
	agent := ai.NewAgent(apiKey)

	entities := store.NewEntityStore(pool, chart)
	svc := app.NewAppService(entities, agent, chart)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(svc, allowedOrigins)

	log.Printf("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
