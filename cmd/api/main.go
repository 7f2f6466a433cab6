package main

import (
	"log"

	"freight-backend/internal/shared/config"
	"freight-backend/internal/shared/server"
	"freight-backend/internal/shared/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if err := telemetry.Init(cfg.LogLevel); err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer telemetry.Sync()

	r := server.NewRouter(cfg)
	addr := server.Addr(cfg.Port)
	telemetry.Info("server.start", map[string]any{"addr": addr, "env": cfg.Env})

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
