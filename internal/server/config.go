package server

import (
	"strings"

	"github.com/spf13/viper"

	"ArenaBrawl/pkg/logger"
)

// AppConfig is resolved once at startup from defaults, an optional config
// file and ARENA_* environment variables, in that order of precedence.
type AppConfig struct {
	Addr           string
	TuningPath     string
	CleanupEvery   float64 // seconds between sweeps of finished sessions
	DefaultMode    string
	MaxPlayers     int
	MatchDuration  float64
	EnableHazards  bool
	EnablePowerups bool
	AllowAnyOrigin bool
}

func DefaultAppConfig() AppConfig {
	return AppConfig{
		Addr:           ":8080",
		TuningPath:     "configs/characters.json",
		CleanupEvery:   60,
		DefaultMode:    "lastStanding",
		AllowAnyOrigin: true,
	}
}

// ResolveAppConfig reads arena.cfg.json from the working directory or
// ./configs when present. A missing file is not an error.
func ResolveAppConfig() AppConfig {
	v := viper.New()
	def := DefaultAppConfig()

	v.SetDefault("addr", def.Addr)
	v.SetDefault("tuningPath", def.TuningPath)
	v.SetDefault("cleanupEvery", def.CleanupEvery)
	v.SetDefault("session.mode", def.DefaultMode)
	v.SetDefault("session.maxPlayers", 0)
	v.SetDefault("session.matchDuration", 0.0)
	v.SetDefault("session.enableHazards", false)
	v.SetDefault("session.enablePowerups", false)
	v.SetDefault("ws.allowAnyOrigin", def.AllowAnyOrigin)

	v.SetConfigName("arena.cfg")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	v.SetEnvPrefix("arena")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			logger.Log.WithError(err).Warn("config file unreadable, using defaults")
		}
	} else {
		logger.Log.WithField("file", v.ConfigFileUsed()).Info("loaded config file")
	}

	return AppConfig{
		Addr:           v.GetString("addr"),
		TuningPath:     v.GetString("tuningPath"),
		CleanupEvery:   v.GetFloat64("cleanupEvery"),
		DefaultMode:    v.GetString("session.mode"),
		MaxPlayers:     v.GetInt("session.maxPlayers"),
		MatchDuration:  v.GetFloat64("session.matchDuration"),
		EnableHazards:  v.GetBool("session.enableHazards"),
		EnablePowerups: v.GetBool("session.enablePowerups"),
		AllowAnyOrigin: v.GetBool("ws.allowAnyOrigin"),
	}
}
