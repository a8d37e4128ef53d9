package server

import (
	. "ArenaBrawl/internal/game"
)

/* ---------------------------- outbound DTOs ---------------------------- */

type stateMsg struct {
	Type     string      `json:"type"`
	Now      float64     `json:"now"`
	Arena    arenaDTO    `json:"arena"`
	Mode     string      `json:"mode"`
	Paused   bool        `json:"paused"`
	Players  []playerDTO `json:"players"`
	Entities []entityDTO `json:"entities"`
}

type arenaDTO struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type playerDTO struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Character string  `json:"character"`
	Bot       bool    `json:"bot"`
	Wins      int     `json:"wins"`
	HP        float64 `json:"hp"`
	MaxHP     float64 `json:"max_hp"`
	Self      bool    `json:"self"`
}

type entityDTO struct {
	ID        int64   `json:"id"`
	Type      string  `json:"type"`
	Character string  `json:"character,omitempty"`
	Field     string  `json:"field,omitempty"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	VX        float64 `json:"vx"`
	VY        float64 `json:"vy"`
	Radius    float64 `json:"radius"`
	HP        float64 `json:"hp,omitempty"`
	MaxHP     float64 `json:"max_hp,omitempty"`
	Owner     string  `json:"owner,omitempty"`
	Decoy     bool    `json:"decoy,omitempty"`
}

type gameOverMsg struct {
	Type     string  `json:"type"`
	Winner   string  `json:"winner"`
	Entity   int64   `json:"entity"`
	Duration float64 `json:"duration"`
}

type joinedMsg struct {
	Type     string `json:"type"`
	PlayerID string `json:"player_id"`
	GameID   string `json:"game_id"`
	Entity   int64  `json:"entity"`
}

type errorMsg struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

/* ---------------------------- inbound DTOs ----------------------------- */

type joinDTO struct {
	Name      string  `json:"name"`
	Character string  `json:"character"`
	GameID    string  `json:"game_id"`
	Mode      string  `json:"mode"`
	ArenaW    float64 `json:"arena_w"`
	ArenaH    float64 `json:"arena_h"`
}

type spawnBotDTO struct {
	Character  string  `json:"character"`
	Difficulty string  `json:"difficulty"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
}

type moveDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type aimDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type setArenaDTO struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

func snapshotToState(snap SessionSnapshot, selfID string) stateMsg {
	msg := stateMsg{
		Type:   "state",
		Now:    snap.Now,
		Arena:  arenaDTO{W: snap.ArenaW, H: snap.ArenaH},
		Mode:   snap.Mode,
		Paused: snap.Paused,
	}
	for _, p := range snap.Players {
		msg.Players = append(msg.Players, playerDTO{
			ID:        p.ID,
			Name:      p.Name,
			Character: p.Character,
			Bot:       p.Bot,
			Wins:      p.Wins,
			HP:        p.HP,
			MaxHP:     p.MaxHP,
			Self:      p.ID == selfID,
		})
	}
	for _, e := range snap.Entities {
		msg.Entities = append(msg.Entities, entityDTO{
			ID:        int64(e.ID),
			Type:      e.Type,
			Character: e.Character,
			Field:     e.Field,
			X:         e.Pos.X,
			Y:         e.Pos.Y,
			VX:        e.Vel.X,
			VY:        e.Vel.Y,
			Radius:    e.Radius,
			HP:        e.HP,
			MaxHP:     e.MaxHP,
			Owner:     e.Owner,
			Decoy:     e.Decoy,
		})
	}
	return msg
}
