package server

import (
	"net/http"

	. "ArenaBrawl/internal/game"
	"ArenaBrawl/pkg/logger"
)

func startServer(h *Hub, cfg AppConfig) {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWS(h, cfg, w, r)
	})
	logger.Log.Fatal(http.ListenAndServe(cfg.Addr, mux))
}
