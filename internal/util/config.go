package util

import (
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultEnv is used when ENV is absent from the environment.
const DefaultEnv = "development"

const (
	keyEnv      = "env"
	keyLogLevel = "log-level"
	keyTheme    = "theme"
)

// Config holds runtime settings and flags.
type Config struct {
	Env      string // ENV, verbatim; only changes the startup line
	LogLevel string // zerolog level name for stderr diagnostics
	Theme    string // palette used by the about page
	Version  string
}

// Load resolves the config from defaults, the process environment and any
// bound flags in fs. fs may be nil.
func Load(fs *pflag.FlagSet) Config {
	v := viper.New()
	// ENV="" is a value, not an absence.
	v.AllowEmptyEnv(true)

	v.SetDefault(keyEnv, DefaultEnv)
	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyTheme, "catppuccin")

	_ = v.BindEnv(keyEnv, "ENV")
	_ = v.BindEnv(keyLogLevel, "LOG_LEVEL")
	_ = v.BindEnv(keyTheme, "HEALTHBOT_THEME")

	if fs != nil {
		for _, name := range []string{keyLogLevel, keyTheme} {
			if f := fs.Lookup(name); f != nil {
				_ = v.BindPFlag(name, f)
			}
		}
	}

	return Config{
		Env:      v.GetString(keyEnv),
		LogLevel: v.GetString(keyLogLevel),
		Theme:    v.GetString(keyTheme),
	}
}

// LoadDotenv loads variables from a .env style file. Variables already set in
// the process are left alone. An empty path is a no-op.
func LoadDotenv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "load env file %s", path)
	}
	return nil
}
