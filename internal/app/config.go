package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"nucore/internal/domain"
	"nucore/internal/logging"
)

const (
	// EnvPrefix prefixes every environment override, e.g. NUCORE_LOG_LEVEL.
	EnvPrefix = "NUCORE"
	// ConfigFileName is the optional config file looked up in the home dir.
	ConfigFileName = "nucore.yaml"

	defaultHomeName = ".nucore"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	// Home is the data root, e.g. $HOME/.nucore.
	Home string `yaml:"-" mapstructure:"home"`

	// MGXSDir holds depletion results and cross-section libraries.
	MGXSDir string `yaml:"mgxs_dir" mapstructure:"mgxs_dir"`

	// CoreDir holds solver inputs and outputs, one directory per case.
	CoreDir string `yaml:"core_dir" mapstructure:"core_dir"`

	KomodoExecutable string                  `yaml:"komodo_executable" mapstructure:"komodo_executable"`
	LogLevel         string                  `yaml:"log_level" mapstructure:"log_level"`
	LogJSON          bool                    `yaml:"log_json" mapstructure:"log_json"`
	Iteration        domain.IterationControl `yaml:"iteration" mapstructure:"iteration"`
}

// flagKeys maps root command flags to config keys.
var flagKeys = map[string]string{
	"home":      "home",
	"log-level": "log_level",
	"log-json":  "log_json",
	"komodo":    "komodo_executable",
}

// DefaultHome returns ~/.nucore.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, defaultHomeName), nil
}

// NewViper returns a viper instance carrying the defaults and environment
// bindings. Flags from fs that appear in flagKeys are bound as well; fs may
// be nil.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Every key needs a default so that Unmarshal sees environment overrides.
	v.SetDefault("home", "")
	v.SetDefault("mgxs_dir", "")
	v.SetDefault("core_dir", "")
	v.SetDefault("komodo_executable", "komodo")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_json", false)

	it := domain.DefaultIterationControl()
	v.SetDefault("iteration.outer", it.Outer)
	v.SetDefault("iteration.inner", it.Inner)
	v.SetDefault("iteration.fission_tolerance", it.FissionTolerance)
	v.SetDefault("iteration.flux_tolerance", it.FluxTolerance)
	v.SetDefault("iteration.extrapolation_interval", it.ExtrapolationInterval)
	v.SetDefault("iteration.outer_update", it.OuterUpdate)
	v.SetDefault("iteration.th_iterations", it.THIterations)
	v.SetDefault("iteration.outer_per_th", it.OuterPerTH)

	if fs == nil {
		return v, nil
	}
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return v, nil
}

// Load resolves the configuration. An explicit configFile must exist; the
// nucore.yaml in the home directory is optional.
func Load(v *viper.Viper, configFile string) (Config, error) {
	home := v.GetString("home")
	if home == "" {
		var err error
		if home, err = DefaultHome(); err != nil {
			return Config{}, err
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(strings.TrimSuffix(ConfigFileName, filepath.Ext(ConfigFileName)))
		v.SetConfigType("yaml")
		v.AddConfigPath(home)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Home = home
	if cfg.MGXSDir == "" {
		cfg.MGXSDir = filepath.Join(home, "mgxs")
	}
	if cfg.CoreDir == "" {
		cfg.CoreDir = filepath.Join(home, "core")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that cannot be caught while decoding.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.KomodoExecutable == "" {
		return fmt.Errorf("komodo_executable cannot be empty")
	}
	it := c.Iteration
	if it.Outer <= 0 || it.Inner <= 0 {
		return fmt.Errorf("iteration counts must be greater than 0 (outer=%d, inner=%d)", it.Outer, it.Inner)
	}
	if it.FissionTolerance <= 0 || it.FluxTolerance <= 0 {
		return fmt.Errorf("iteration tolerances must be greater than 0")
	}
	return nil
}

// SaveConfig persists cfg as home/nucore.yaml so that later runs pick it up.
func SaveConfig(docs domain.DocumentStore, cfg Config) error {
	return docs.Save(filepath.Join(cfg.Home, ConfigFileName), cfg)
}
