package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/domino14/othlib/board"
)

const (
	ConfigDebug     = "debug"
	ConfigDimension = "dimension"
	ConfigValidate  = "validate"
)

const envPrefix = "OTHLIB"

// Config holds settings for callers of the engine. The engine itself takes
// plain arguments; this only decides how boards get built.
type Config struct {
	*viper.Viper
}

// New returns a config populated with defaults and bound to OTHLIB_*
// environment variables.
func New() *Config {
	c := &Config{Viper: viper.New()}
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigDimension, board.StandardDim)
	c.SetDefault(ConfigValidate, true)
	c.SetEnvPrefix(envPrefix)
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	return c
}

// Load reads a config file, if path is non-empty, and checks the result.
// Environment variables take precedence over the file.
func (c *Config) Load(path string) error {
	if path != "" {
		c.SetConfigFile(path)
		if err := c.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
		log.Debug().Str("path", path).Msg("loaded config file")
	}
	return c.check()
}

func (c *Config) check() error {
	dim := c.GetInt(ConfigDimension)
	if !lo.Contains(supportedDims, dim) {
		return fmt.Errorf("%w: %s=%d", board.ErrUnsupportedDimension, ConfigDimension, dim)
	}
	return nil
}

var supportedDims = []int{board.StandardDim}

// BoardOptions turns the settings into board construction options.
func (c *Config) BoardOptions() []board.Option {
	return []board.Option{board.WithValidation(c.GetBool(ConfigValidate))}
}

// NewBoard returns a board in the starting position built from the settings.
func (c *Config) NewBoard() (*board.BitBoard, error) {
	return board.New(c.GetInt(ConfigDimension), c.BoardOptions()...)
}
