package game

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config tunes a session. Every field can be set from the environment.
type Config struct {
	StartPower       float64 `env:"NIGHTSHIFT_START_POWER"        envDefault:"100"`
	BaseDrain        float64 `env:"NIGHTSHIFT_BASE_DRAIN"         envDefault:"0.0025"`
	ConsumerDrain    float64 `env:"NIGHTSHIFT_CONSUMER_DRAIN"     envDefault:"0.0025"`
	LightMinTicks    int     `env:"NIGHTSHIFT_LIGHT_MIN_TICKS"    envDefault:"5"`
	LightMaxTicks    int     `env:"NIGHTSHIFT_LIGHT_MAX_TICKS"    envDefault:"20"`
	JumpscareSeconds float64 `env:"NIGHTSHIFT_JUMPSCARE_SECONDS"  envDefault:"2.5"`
	Seed             int64   `env:"NIGHTSHIFT_SEED"               envDefault:"0"`
	EncounterRoom    string  `env:"NIGHTSHIFT_ENCOUNTER_ROOM"     envDefault:"SS_FCAP"`
	Character        string  `env:"NIGHTSHIFT_CHARACTER"          envDefault:"Nightguard"`
	VerboseLog       bool    `env:"NIGHTSHIFT_VERBOSE_LOG"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		StartPower:       100,
		BaseDrain:        0.0025,
		ConsumerDrain:    0.0025,
		LightMinTicks:    DefaultLightMinTicks,
		LightMaxTicks:    DefaultLightMaxTicks,
		JumpscareSeconds: DefaultJumpscareSeconds,
		EncounterRoom:    "SS_FCAP",
		Character:        "Nightguard",
	}
}

// ParseConfig reads a Config from the environment.
func ParseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFromEnv returns the environment config, or the defaults when it
// does not parse.
func LoadConfigFromEnv() Config {
	cfg, err := ParseConfig()
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// Validate rejects tunings the session cannot run with.
func (c Config) Validate() error {
	if c.StartPower < 0 {
		return fmt.Errorf("start power %v: must not be negative", c.StartPower)
	}
	if c.BaseDrain < 0 || c.ConsumerDrain < 0 {
		return fmt.Errorf("drain rates %v/%v: must not be negative", c.BaseDrain, c.ConsumerDrain)
	}
	if c.LightMinTicks < 1 || c.LightMaxTicks < c.LightMinTicks {
		return fmt.Errorf("light ticks [%d, %d]: need 1 <= min <= max", c.LightMinTicks, c.LightMaxTicks)
	}
	if c.EncounterRoom == "" {
		return fmt.Errorf("encounter room: must not be empty")
	}
	return nil
}

// Story is the host's story-mode state consulted for eligibility.
type Story struct {
	IsStorySession bool
	Character      string
}

// Nightguard reports whether the story condition for the encounter holds.
func (c Config) Nightguard(st Story) bool {
	return st.IsStorySession && st.Character == c.Character
}

// Qualifies reports whether entering room under st starts an encounter.
func (c Config) Qualifies(room string, st Story) bool {
	return room == c.EncounterRoom && c.Nightguard(st)
}

// AgentRoomAllowed narrows the host's own room allowance: under the story
// condition agents may only be in the encounter room.
func (c Config) AgentRoomAllowed(orig bool, st Story, room string) bool {
	return orig && (!c.Nightguard(st) || room == c.EncounterRoom)
}
