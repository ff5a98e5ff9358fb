package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	MinRows = 4
	MaxRows = 52
	MinCols = 4
	MaxCols = 52

	envPrefix = "MINESWEEPER"
)

// Validation errors returned by Load, Resolve and Validate.
var (
	ErrRowRange      = fmt.Errorf("row size must be between %d and %d", MinRows, MaxRows)
	ErrColumnRange   = fmt.Errorf("column size must be between %d and %d", MinCols, MaxCols)
	ErrTooManyMines  = errors.New("too many mines")
	ErrNegativeMines = errors.New("number of mines must not be negative")
	ErrUnknownLevel  = errors.New("unknown level")
	ErrUnknownMode   = errors.New("unknown mode")
	ErrScale         = errors.New("scale must be at least 1")
)

// Mode selects the terminal interaction style.
type Mode string

// Supported modes.
const (
	ModeCursor Mode = "cursor"
	ModePrompt Mode = "prompt"
)

// Level is a preset board size.
type Level struct {
	Rows  int
	Cols  int
	Mines int
}

var levels = map[string]Level{
	"easy":   {Rows: 10, Cols: 10, Mines: 10},
	"normal": {Rows: 16, Cols: 16, Mines: 40},
	"hard":   {Rows: 16, Cols: 30, Mines: 99},
}

// LookupLevel returns the preset registered under name.
func LookupLevel(name string) (Level, bool) {
	l, ok := levels[strings.ToLower(name)]
	return l, ok
}

// Config represents the command-line parameters for the game.
type Config struct {
	Rows  int
	Cols  int
	Mines int
	Level string
	Mode  Mode
	Seed  int64

	ConfigFile string
	EnvFile    string
	LogLevel   string
	LogFile    string

	// Scale is the GUI pixel size of one cell.
	Scale int

	Help bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rows:     9,
		Cols:     9,
		Mines:    10,
		Mode:     ModeCursor,
		LogLevel: "info",
		Scale:    24,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVarP(&c.Cols, "column", "c", c.Cols, "column size")
	fs.BoolVarP(&c.Help, "help", "h", false, "show help and exit")
	fs.StringVarP(&c.Level, "level", "l", c.Level, "level of minesweeper: easy, normal or hard")
	fs.StringVarP((*string)(&c.Mode), "mode", "m", string(c.Mode), "interaction mode: cursor or prompt")
	fs.IntVarP(&c.Mines, "n-mine", "n", c.Mines, "number of mines")
	fs.IntVarP(&c.Rows, "row", "r", c.Rows, "row size")
	fs.Int64VarP(&c.Seed, "seed", "s", c.Seed, "random seed, 0 seeds from the clock")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "optional config file (yaml, toml or json)")
	fs.StringVar(&c.EnvFile, "env-file", c.EnvFile, "optional dotenv file with MINESWEEPER_* variables")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "append logs to this file, discarded when empty")
}

// Load parses args and layers the result, see Resolve. It returns
// pflag.ErrHelp when help was requested.
func Load(name string, args []string, extra func(*Config, *pflag.FlagSet)) (*Config, error) {
	cfg := NewConfig()
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	cfg.Bind(fs)
	if extra != nil {
		extra(cfg, fs)
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.Help {
		return cfg, pflag.ErrHelp
	}
	if err := cfg.Resolve(fs); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Resolve layers an already parsed flag set: explicit flags win over
// MINESWEEPER_* environment variables (including those loaded from
// --env-file), which win over the config file, which wins over the level
// preset and the defaults.
func (c *Config) Resolve(fs *pflag.FlagSet) error {
	if c.EnvFile != "" {
		if err := godotenv.Load(c.EnvFile); err != nil {
			return fmt.Errorf("load env file %q: %w", c.EnvFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %q: %w", path, err)
		}
		c.ConfigFile = path
	}

	// The flags are bound to the same fields the level writes, so the
	// explicit sizes are read before the preset is applied.
	sizes := []struct {
		key string
		dst *int
		val int
		set bool
	}{
		{key: "row", dst: &c.Rows},
		{key: "column", dst: &c.Cols},
		{key: "n-mine", dst: &c.Mines},
	}
	for i := range sizes {
		sizes[i].set = v.IsSet(sizes[i].key)
		sizes[i].val = v.GetInt(sizes[i].key)
	}
	if name := v.GetString("level"); name != "" {
		l, ok := LookupLevel(name)
		if !ok {
			return fmt.Errorf("%w %q", ErrUnknownLevel, name)
		}
		c.Level = strings.ToLower(name)
		c.Rows, c.Cols, c.Mines = l.Rows, l.Cols, l.Mines
	}
	for _, sz := range sizes {
		if sz.set {
			*sz.dst = sz.val
		}
	}
	c.Mode = Mode(strings.ToLower(v.GetString("mode")))
	c.Seed = v.GetInt64("seed")
	c.LogLevel = v.GetString("log-level")
	c.LogFile = v.GetString("log-file")
	if fs.Lookup("scale") != nil {
		c.Scale = v.GetInt("scale")
	}

	return c.Validate()
}

// Validate enforces the board limits of the CLI.
func (c *Config) Validate() error {
	if c.Rows < MinRows || c.Rows > MaxRows {
		return fmt.Errorf("%w, got %d", ErrRowRange, c.Rows)
	}
	if c.Cols < MinCols || c.Cols > MaxCols {
		return fmt.Errorf("%w, got %d", ErrColumnRange, c.Cols)
	}
	if c.Mines < 0 {
		return fmt.Errorf("%w, got %d", ErrNegativeMines, c.Mines)
	}
	if c.Mines >= c.Rows*c.Cols {
		return fmt.Errorf("%w: %d mines on a %dx%d board", ErrTooManyMines, c.Mines, c.Rows, c.Cols)
	}
	switch c.Mode {
	case ModeCursor, ModePrompt:
	default:
		return fmt.Errorf("%w %q", ErrUnknownMode, c.Mode)
	}
	if c.Scale < 1 {
		return fmt.Errorf("%w, got %d", ErrScale, c.Scale)
	}
	return nil
}
