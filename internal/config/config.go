package config

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
)

// HeuristicWeights tune the bot's position evaluation.
type HeuristicWeights struct {
	WWin      int `json:"wWin" env:"WIN" envDefault:"100000"`
	WArea     int `json:"wArea" env:"AREA" envDefault:"100"`
	WFrontier int `json:"wFrontier" env:"FRONTIER" envDefault:"10"`
	WMobility int `json:"wMobility" env:"MOBILITY" envDefault:"25"`
}

type Config struct {
	HTTPAddr  string   `env:"HTTP_ADDR" envDefault:":8080"`
	BoardSize int      `env:"BOARD_SIZE" envDefault:"8"`
	Palette   []string `env:"PALETTE" envSeparator:"," envDefault:"black,yellow,pink,blue,green,purple"`
	BotDepth  int      `env:"BOT_DEPTH" envDefault:"4"`

	RoomTTL      time.Duration `env:"ROOM_TTL" envDefault:"30m"`
	ReapInterval time.Duration `env:"REAP_INTERVAL" envDefault:"1m"`

	TelemetryEnabled bool `env:"TELEMETRY_ENABLED" envDefault:"false"`

	DefaultWeights HeuristicWeights `envPrefix:"W_"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

var (
	defaultOnce sync.Once
	defaultCfg  *Config
)

// Get returns the process default configuration, loading it on first use.
// A malformed environment falls back to the built-in defaults.
func Get() *Config {
	defaultOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			log.Printf("config: %v; using defaults", err)
			cfg = Defaults()
		}
		defaultCfg = &cfg
	})
	return defaultCfg
}

// Defaults returns the configuration with every key at its default value.
func Defaults() Config {
	var cfg Config
	// Parsing an empty environment only applies envDefault values.
	_ = env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}})
	return cfg
}
