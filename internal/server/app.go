package server

import (
	"time"

	. "ArenaBrawl/internal/game"
	"ArenaBrawl/pkg/logger"
)

func StartApp(cfg AppConfig) {
	if err := loadTuningFile(cfg.TuningPath); err != nil {
		logger.Log.WithError(err).Warn("character tuning unavailable, using defaults")
	}
	go watchTuning(cfg.TuningPath)

	hub := NewHub()

	// Drop finished sessions periodically so abandoned games do not pile up.
	go func() {
		every := cfg.CleanupEvery
		if every <= 0 {
			every = 60
		}
		ticker := time.NewTicker(time.Duration(every * float64(time.Second)))
		defer ticker.Stop()
		for range ticker.C {
			hub.CleanupFinished()
		}
	}()

	logger.Log.WithField("addr", cfg.Addr).Info("starting arena server")
	startServer(hub, cfg)
}
