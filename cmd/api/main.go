package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/oceansouq/platform-core/internal/app/bootstrap"
)

func main() {
	ctx := context.Background()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/default.yaml"
	}

	runtime, err := bootstrap.NewRuntime(ctx, configPath)
	if err != nil {
		slog.Error("bootstrap failed", "error", err)
		os.Exit(1)
	}
	if err := runtime.RunAPI(ctx); err != nil {
		slog.Error("api runtime failed", "error", err)
		os.Exit(1)
	}
}
