// Package config resolves runtime settings for the knapsack CLI from flags,
// KNAPSACK_* environment variables and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/knapsack/knapsack"
)

// Keys shared by flags, env vars (KNAPSACK_MAX_ITEMS, ...) and config files.
const (
	KeyConfig    = "config"
	KeyMaxItems  = "max-items"
	KeyMaxBudget = "max-budget"
	KeyMaxCells  = "max-cells"
	KeyVerbose   = "verbose"
	KeyExplain   = "explain"

	EnvPrefix = "KNAPSACK"
)

// ErrInvalidConfig indicates a setting outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid setting")

// Config is the resolved CLI configuration.
type Config struct {
	// Limits bounds n and x before the DP table is allocated. Zero disables a bound.
	Limits knapsack.Limits
	// Verbose enables debug logging on stderr.
	Verbose bool
	// Explain logs the chosen items; it forces the full-table solver.
	Explain bool
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Limits:  knapsack.DefaultLimits(),
		Verbose: false,
		Explain: false,
	}
}

// SolveOptions maps the configuration onto solver options.
func (c Config) SolveOptions() knapsack.Options {
	opts := knapsack.DefaultOptions()
	opts.Limits = c.Limits
	if c.Explain {
		opts.MemoryMode = knapsack.FullTable
		opts.ReturnItems = true
	}

	return opts
}

// RegisterFlags adds the config flags to fs with Default() values.
func RegisterFlags(fs *pflag.FlagSet) {
	def := Default()
	fs.String(KeyConfig, "", "Path to a YAML config file")
	fs.Int(KeyMaxItems, def.Limits.MaxItems, "Reject inputs with more items (0 = unlimited)")
	fs.Int(KeyMaxBudget, def.Limits.MaxBudget, "Reject inputs with a larger budget (0 = unlimited)")
	fs.Int(KeyMaxCells, def.Limits.MaxCells, "Reject --explain runs whose DP table has more cells (0 = unlimited)")
	fs.BoolP(KeyVerbose, "v", def.Verbose, "Enable debug logging on stderr")
	fs.Bool(KeyExplain, def.Explain, "Log the chosen items on stderr")
}

// NewViper returns a viper instance wired for KNAPSACK_* env overrides and,
// when fs is non-nil, bound to its flags.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	def := Default()
	v.SetDefault(KeyMaxItems, def.Limits.MaxItems)
	v.SetDefault(KeyMaxBudget, def.Limits.MaxBudget)
	v.SetDefault(KeyMaxCells, def.Limits.MaxCells)
	v.SetDefault(KeyVerbose, def.Verbose)
	v.SetDefault(KeyExplain, def.Explain)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	return v, nil
}

// Load reads the optional config file named by KeyConfig and resolves Config.
// Precedence: flags > env > file > defaults.
//
// Values are decoded strictly: a malformed number or boolean is
// ErrInvalidConfig, never a silent zero, since a zero limit means unlimited.
func Load(v *viper.Viper) (Config, error) {
	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var (
		cfg Config
		err error
	)
	if cfg.Limits.MaxItems, err = getInt(v, KeyMaxItems); err != nil {
		return Config{}, err
	}
	if cfg.Limits.MaxBudget, err = getInt(v, KeyMaxBudget); err != nil {
		return Config{}, err
	}
	if cfg.Limits.MaxCells, err = getInt(v, KeyMaxCells); err != nil {
		return Config{}, err
	}
	if cfg.Verbose, err = getBool(v, KeyVerbose); err != nil {
		return Config{}, err
	}
	if cfg.Explain, err = getBool(v, KeyExplain); err != nil {
		return Config{}, err
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getInt(v *viper.Viper, key string) (int, error) {
	n, err := cast.ToIntE(v.Get(key))
	if err != nil {
		return 0, fmt.Errorf("%s=%v: %w: %w", key, v.Get(key), ErrInvalidConfig, err)
	}

	return n, nil
}

func getBool(v *viper.Viper, key string) (bool, error) {
	b, err := cast.ToBoolE(v.Get(key))
	if err != nil {
		return false, fmt.Errorf("%s=%v: %w: %w", key, v.Get(key), ErrInvalidConfig, err)
	}

	return b, nil
}

// Validate rejects negative limits.
func (c Config) Validate() error {
	if c.Limits.MaxItems < 0 {
		return fmt.Errorf("%s=%d: %w", KeyMaxItems, c.Limits.MaxItems, ErrInvalidConfig)
	}
	if c.Limits.MaxBudget < 0 {
		return fmt.Errorf("%s=%d: %w", KeyMaxBudget, c.Limits.MaxBudget, ErrInvalidConfig)
	}
	if c.Limits.MaxCells < 0 {
		return fmt.Errorf("%s=%d: %w", KeyMaxCells, c.Limits.MaxCells, ErrInvalidConfig)
	}

	return nil
}
