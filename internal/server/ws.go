package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	. "ArenaBrawl/internal/game"
	"ArenaBrawl/pkg/logger"
)

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type liveConn struct {
	conn     *websocket.Conn
	sendTick *time.Ticker
}

func (lc *liveConn) send(v any) error {
	return lc.conn.WriteJSON(v)
}

// ensureSession returns the session for id, creating and ticking a new one
// on first join. A nil return means the id raced with another creator; retry
// with GetSession.
func ensureSession(h *Hub, id string, cfg AppConfig, join joinDTO) *Session {
	if s := h.GetSession(id); s != nil {
		return s
	}
	mode := join.Mode
	if mode == "" {
		mode = cfg.DefaultMode
	}
	s := h.CreateSession(id, SessionConfig{
		ArenaW:         join.ArenaW,
		ArenaH:         join.ArenaH,
		Mode:           mode,
		MaxPlayers:     cfg.MaxPlayers,
		MatchDuration:  cfg.MatchDuration,
		EnableHazards:  cfg.EnableHazards,
		EnablePowerups: cfg.EnablePowerups,
	})
	if s == nil {
		return h.GetSession(id)
	}
	s.SetGameOverHandler(func(ev GameOverEvent) {
		logger.Log.WithFields(map[string]any{
			"game":     s.ID,
			"winner":   ev.Winner,
			"duration": ev.Duration,
		}).Info("match over")
	})
	go runTicks(s)
	return s
}

// runTicks drives one session at the fixed simulation rate until it ends.
func runTicks(s *Session) {
	ticker := time.NewTicker(time.Second / time.Duration(SimHz))
	defer ticker.Stop()
	for range ticker.C {
		if s.Finished() {
			return
		}
		s.Tick()
	}
}

func serveWS(h *Hub, cfg AppConfig, w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{}
	if cfg.AllowAnyOrigin {
		upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	}

	query := r.URL.Query()
	join := joinDTO{
		Name:      query.Get("name"),
		Character: query.Get("character"),
		GameID:    query.Get("game"),
		Mode:      query.Get("mode"),
	}
	if join.GameID == "" {
		join.GameID = "default"
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	lc := &liveConn{
		conn:     conn,
		sendTick: time.NewTicker(time.Duration(1000.0/UpdateRateHz) * time.Millisecond),
	}
	defer lc.sendTick.Stop()

	sess := ensureSession(h, join.GameID, cfg, join)
	if sess == nil {
		_ = lc.send(errorMsg{Type: "error", Message: "game unavailable"})
		conn.Close()
		return
	}

	playerID := RandId("p")
	kind := ParseKind(join.Character)
	pos := joinSpawnPos(sess)
	entity := sess.SpawnPlayer(playerID, pos, kind)
	if entity == 0 {
		_ = lc.send(errorMsg{Type: "error", Message: "game full"})
		conn.Close()
		return
	}
	defer sess.Leave(playerID)
	if join.Name != "" {
		sess.Mu.Lock()
		if p := sess.Players[playerID]; p != nil {
			p.Name = join.Name
		}
		sess.Mu.Unlock()
	}
	_ = lc.send(joinedMsg{Type: "joined", PlayerID: playerID, GameID: sess.ID, Entity: int64(entity)})

	logger.Log.WithFields(map[string]any{
		"game":      sess.ID,
		"player":    playerID,
		"character": kind.String(),
	}).Info("player joined")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		defer cancel()
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var inbound inboundMessage
			if err := json.Unmarshal(data, &inbound); err != nil {
				logger.Log.WithError(err).Debug("invalid message")
				continue
			}
			handleCommand(sess, playerID, inbound)
		}
	}()

	sentGameOver := false
	for {
		select {
		case <-ctx.Done():
			conn.Close()
			return
		case <-lc.sendTick.C:
			snap := sess.Snapshot()
			if err := lc.send(snapshotToState(snap, playerID)); err != nil {
				cancel()
				continue
			}
			if result, over := sess.Result(); over && !sentGameOver {
				sentGameOver = true
				_ = lc.send(gameOverMsg{
					Type:     "game_over",
					Winner:   result.Winner,
					Entity:   int64(result.Entity),
					Duration: result.Duration,
				})
			}
		}
	}
}

func handleCommand(sess *Session, playerID string, inbound inboundMessage) {
	switch inbound.Type {
	case "move":
		var payload moveDTO
		if json.Unmarshal(inbound.Payload, &payload) == nil {
			sess.SetMove(playerID, Vec2{X: payload.X, Y: payload.Y})
		}
	case "fire":
		var payload aimDTO
		if json.Unmarshal(inbound.Payload, &payload) == nil {
			sess.Primary(playerID, Vec2{X: payload.X, Y: payload.Y})
		}
	case "special":
		var payload aimDTO
		if json.Unmarshal(inbound.Payload, &payload) == nil {
			sess.Special(playerID, Vec2{X: payload.X, Y: payload.Y})
		}
	case "charge":
		sess.Charge(playerID)
	case "spawn_bot":
		var payload spawnBotDTO
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return
		}
		botID := RandId("bot")
		pos := Vec2{X: payload.X, Y: payload.Y}
		if pos.IsZero() {
			pos = joinSpawnPos(sess)
		}
		id := sess.SpawnBot(botID, pos, ParseKind(payload.Character), ParseDifficulty(payload.Difficulty))
		if id == 0 {
			logger.Log.WithField("game", sess.ID).Debug("bot spawn rejected")
		}
	case "set_arena":
		var payload setArenaDTO
		if json.Unmarshal(inbound.Payload, &payload) == nil {
			sess.SetArenaSize(payload.W, payload.H)
		}
	case "pause":
		sess.Pause()
	case "resume":
		sess.Resume()
	case "stop":
		sess.Stop()
	default:
		logger.Log.WithField("type", inbound.Type).Debug("unknown message type")
	}
}

// joinSpawnPos staggers new fighters along the left edge so late joiners do
// not stack on top of each other.
func joinSpawnPos(sess *Session) Vec2 {
	sess.Mu.Lock()
	n := len(sess.Players)
	w, h := sess.ArenaW, sess.ArenaH
	sess.Mu.Unlock()
	return Vec2{
		X: Clamp(w*0.2+float64(n)*60, 0, w),
		Y: Clamp(h*0.3+float64(n)*80, 0, h),
	}
}
