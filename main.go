package main

import (
	"flag"

	"ArenaBrawl/internal/server"
	"ArenaBrawl/pkg/logger"
)

func main() {
	addr := flag.String("addr", "", "address to listen on (e.g., 127.0.0.1:8080)")
	tuningPath := flag.String("tuning", "", "path to character tuning JSON")
	flag.Parse()

	logger.Init()

	cfg := server.ResolveAppConfig()
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *tuningPath != "" {
		cfg.TuningPath = *tuningPath
	}

	server.StartApp(cfg)
}
