package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/lixenwraith/light-cycle/audio"
	"github.com/lixenwraith/light-cycle/constants"
	"github.com/lixenwraith/light-cycle/core"
	"github.com/lixenwraith/light-cycle/input"
	"github.com/lixenwraith/light-cycle/render"
)

// EnvPrefix is prepended to every environment override
const EnvPrefix = "LIGHTCYCLE_"

// Config is the full runtime configuration
// Sources apply in order: defaults, TOML file, LIGHTCYCLE_* environment, command line
type Config struct {
	Arena  ArenaConfig  `toml:"arena" envPrefix:"ARENA_"`
	Game   GameConfig   `toml:"game" envPrefix:"GAME_"`
	Render RenderConfig `toml:"render" envPrefix:"RENDER_"`
	Audio  AudioConfig  `toml:"audio" envPrefix:"AUDIO_"`
	Keys   KeysConfig   `toml:"keys"`
}

// ArenaConfig sizes the playfield in cells
type ArenaConfig struct {
	Width  int `toml:"width" env:"WIDTH"`
	Height int `toml:"height" env:"HEIGHT"`
}

// GameConfig holds round and player settings
type GameConfig struct {
	Players         int           `toml:"players" env:"PLAYERS"`
	PlayType        string        `toml:"play_type" env:"PLAY_TYPE"`
	Speed           float64       `toml:"speed" env:"SPEED"`
	DeathDimPercent int           `toml:"death_dim_percent" env:"DEATH_DIM_PERCENT"`
	HoldTimeout     time.Duration `toml:"hold_timeout" env:"HOLD_TIMEOUT"`
	RoundOverDelay  time.Duration `toml:"round_over_delay" env:"ROUND_OVER_DELAY"`
}

// RenderConfig holds terminal output settings
type RenderConfig struct {
	ColorMode string   `toml:"color_mode" env:"COLOR_MODE"`
	CellWidth int      `toml:"cell_width" env:"CELL_WIDTH"`
	Colors    []string `toml:"player_colors" env:"PLAYER_COLORS" envSeparator:","`
}

// AudioConfig holds audio settings, Volumes is keyed by sound name
type AudioConfig struct {
	Enabled      bool               `toml:"enabled" env:"ENABLED"`
	MasterVolume float64            `toml:"master_volume" env:"MASTER_VOLUME"`
	Volumes      map[string]float64 `toml:"volumes"`
}

// KeysConfig overrides the movement binding tables, "direction = key"
type KeysConfig struct {
	Primary   map[string]string `toml:"primary"`
	Secondary map[string]string `toml:"secondary"`
}

var (
	ErrInvalidArena   = errors.New("invalid arena size")
	ErrInvalidPlayers = errors.New("invalid player count")
	ErrInvalidSpeed   = errors.New("invalid speed")
	ErrOnlinePlayers  = errors.New("online play supports one local player")
)

// Default returns the built-in configuration
func Default() *Config {
	colors := make([]string, len(render.PlayerColors))
	for i, c := range render.PlayerColors {
		colors[i] = FormatHexColor(c)
	}
	return &Config{
		Arena: ArenaConfig{
			Width:  constants.DefaultArenaWidth,
			Height: constants.DefaultArenaHeight,
		},
		Game: GameConfig{
			Players:         constants.DefaultPlayers,
			PlayType:        input.PlayLocal.String(),
			Speed:           constants.DefaultSpeed,
			DeathDimPercent: constants.DeathDimPercent,
			HoldTimeout:     input.DefaultHoldTimeout,
			RoundOverDelay:  constants.RoundOverDelay,
		},
		Render: RenderConfig{
			ColorMode: render.ColorAuto.String(),
			CellWidth: constants.DefaultCellWidth,
			Colors:    colors,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: constants.DefaultMasterVolume,
		},
	}
}

// Load reads path (skipped when empty) and the process environment
func Load(path string) (*Config, error) {
	return LoadWithEnv(path, nil)
}

// LoadWithEnv is Load with an explicit environment, nil uses the process environment
func LoadWithEnv(path string, environ map[string]string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}

// Validate checks ranges and that every string setting parses
func (c *Config) Validate() error {
	if c.Arena.Width < constants.MinArenaWidth || c.Arena.Height < constants.MinArenaHeight {
		return fmt.Errorf("%w: %dx%d, minimum %dx%d", ErrInvalidArena,
			c.Arena.Width, c.Arena.Height, constants.MinArenaWidth, constants.MinArenaHeight)
	}
	if c.Game.Players < 1 || c.Game.Players > input.MaxPlayers {
		return fmt.Errorf("%w: %d outside 1..%d", ErrInvalidPlayers, c.Game.Players, input.MaxPlayers)
	}
	if c.Game.Speed < constants.MinSpeed || c.Game.Speed > constants.MaxSpeed {
		return fmt.Errorf("%w: %g outside %g..%g", ErrInvalidSpeed, c.Game.Speed, constants.MinSpeed, constants.MaxSpeed)
	}

	playType, err := c.PlayType()
	if err != nil {
		return err
	}
	if playType == input.PlayOnline && c.Game.Players > 1 {
		return fmt.Errorf("%w: got %d players", ErrOnlinePlayers, c.Game.Players)
	}

	if c.Render.CellWidth < 1 || c.Render.CellWidth > constants.MaxCellWidth {
		return fmt.Errorf("cell_width %d outside 1..%d", c.Render.CellWidth, constants.MaxCellWidth)
	}
	if c.Game.HoldTimeout <= 0 {
		return fmt.Errorf("hold_timeout must be positive, got %v", c.Game.HoldTimeout)
	}
	if c.Game.RoundOverDelay < 0 {
		return fmt.Errorf("round_over_delay must not be negative, got %v", c.Game.RoundOverDelay)
	}

	if _, err := c.ColorMode(); err != nil {
		return err
	}
	if _, err := c.PlayerColors(); err != nil {
		return err
	}
	bindings, err := c.Bindings()
	if err != nil {
		return err
	}
	owners := make(map[input.KeyID]input.Designation)
	for i := 0; i < c.Game.Players; i++ {
		who := input.Designation(i)
		binding, err := bindings.For(playType, who)
		if err != nil {
			return err
		}
		for _, key := range binding.Keys() {
			if input.Reserved(key) {
				return fmt.Errorf("%s: %w: %s", who, input.ErrReservedKey, key)
			}
			if owner, ok := owners[key]; ok && owner != who {
				return fmt.Errorf("%w: %s steers %s and %s", input.ErrSharedKey, key, owner, who)
			}
			owners[key] = who
		}
	}
	if _, err := c.AudioSettings(); err != nil {
		return err
	}
	return nil
}

// PlayType returns the parsed play type
func (c *Config) PlayType() (input.PlayType, error) {
	return input.ParsePlayType(c.Game.PlayType)
}

// ColorMode returns the parsed color mode
func (c *Config) ColorMode() (render.ColorMode, error) {
	return render.ParseColorMode(c.Render.ColorMode)
}

// PlayerColors returns the parsed player colors in designation order
func (c *Config) PlayerColors() ([]core.RGB, error) {
	colors := make([]core.RGB, 0, len(c.Render.Colors))
	for i, s := range c.Render.Colors {
		rgb, err := ParseHexColor(s)
		if err != nil {
			return nil, fmt.Errorf("player_colors[%d]: %w", i, err)
		}
		colors = append(colors, rgb)
	}
	return colors, nil
}

// Bindings returns the defaults with any configured table replacing its counterpart
func (c *Config) Bindings() (input.Bindings, error) {
	b := input.DefaultBindings()

	primary, err := input.ParseBinding("keys.primary", c.Keys.Primary)
	if err != nil {
		return b, err
	}
	if primary != nil {
		b.Primary = primary
	}

	secondary, err := input.ParseBinding("keys.secondary", c.Keys.Secondary)
	if err != nil {
		return b, err
	}
	if secondary != nil {
		b.Secondary = secondary
	}
	return b, nil
}

// AudioSettings converts the audio section into a normalized audio config
func (c *Config) AudioSettings() (*audio.AudioConfig, error) {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume

	for name, v := range c.Audio.Volumes {
		s, ok := audio.ParseSoundType(name)
		if !ok {
			return nil, fmt.Errorf("audio.volumes: unknown sound %q", name)
		}
		ac.EffectVolumes[s] = v
	}
	ac.Normalize()
	return ac, nil
}
