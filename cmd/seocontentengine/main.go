package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"SeoContentEngine/internal/app"
	"SeoContentEngine/internal/config"
	"SeoContentEngine/internal/logging"
)

func main() {
	ctx := context.Background()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	keyword := strings.TrimSpace(strings.Join(os.Args[1:], " "))
	if keyword == "" {
		fmt.Fprintln(os.Stderr, "usage: seocontentengine <keyword>")
		os.Exit(2)
	}

	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	application := app.New(cfg, logger)

	if err := application.Run(ctx, keyword); err != nil {
		logger.Error("analysis stopped", "error", err)
		os.Exit(1)
	}
}
