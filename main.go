// Command filtersight starts the FilterSight API server.
// Usage: go run . (listening port via the PORT environment variable)
package main

import (
	"log"
	"os"

	"github.com/filtersight/filtersight/internal/app"
	"github.com/filtersight/filtersight/internal/banner"
	"github.com/filtersight/filtersight/internal/logging"
	"github.com/filtersight/filtersight/internal/server"
)

func main() {
	banner.PrintBanner()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger := logging.NewStdoutLogger("filtersight")

	srv, err := server.NewServer(server.Config{
		ListenAddr: ":" + port,
		AppConfig:  app.DefaultConfig(),
		Logger:     logger,
	})
	if err != nil {
		log.Fatalf("creating server: %v", err)
	}
	defer srv.Close()

	logger.Info("listening", logging.Field{Key: "addr", Value: ":" + port})
	if err := srv.HTTPServer().ListenAndServe(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
