package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/abhisek/learnlens/internal/risk"
)

// EnvPrefix prefixes every environment override, e.g. LEARNLENS_DATA_PATH.
const EnvPrefix = "LEARNLENS"

// DefaultDataPath is the dataset file name the generator writes.
const DefaultDataPath = "christel_house_mock_data.json"

type Config struct {
	Data  DataConfig  `mapstructure:"data"`
	Log   LogConfig   `mapstructure:"log"`
	Risk  RiskConfig  `mapstructure:"risk"`
	Chart ChartConfig `mapstructure:"chart"`
}

type DataConfig struct {
	Path   string `mapstructure:"path"`
	Strict bool   `mapstructure:"strict"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type RiskConfig struct {
	AcademicSevere   float64 `mapstructure:"academic_severe"`
	AcademicWatch    float64 `mapstructure:"academic_watch"`
	AttendanceSevere float64 `mapstructure:"attendance_severe"`
	AttendanceWatch  float64 `mapstructure:"attendance_watch"`
}

// Thresholds converts the configured cut-offs.
func (r RiskConfig) Thresholds() risk.Thresholds {
	return risk.Thresholds{
		AcademicSevere:   r.AcademicSevere,
		AcademicWatch:    r.AcademicWatch,
		AttendanceSevere: r.AttendanceSevere,
		AttendanceWatch:  r.AttendanceWatch,
	}
}

// ChartConfig sizes exported chart images, in inches.
type ChartConfig struct {
	WidthIn  float64 `mapstructure:"width_in"`
	HeightIn float64 `mapstructure:"height_in"`
}

// FlagKeys maps persistent CLI flag names to config keys.
var FlagKeys = map[string]string{
	"data":      "data.path",
	"strict":    "data.strict",
	"log-level": "log.level",
	"log-file":  "log.file",
}

func setDefaults(v *viper.Viper) {
	def := risk.DefaultThresholds()

	v.SetDefault("data.path", DefaultDataPath)
	v.SetDefault("data.strict", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("log.compress", true)

	v.SetDefault("risk.academic_severe", def.AcademicSevere)
	v.SetDefault("risk.academic_watch", def.AcademicWatch)
	v.SetDefault("risk.attendance_severe", def.AttendanceSevere)
	v.SetDefault("risk.attendance_watch", def.AttendanceWatch)

	v.SetDefault("chart.width_in", 8.0)
	v.SetDefault("chart.height_in", 6.0)
}

// Load resolves configuration with precedence flags > environment > config
// file > defaults. A .env file in the working directory is loaded into the
// environment first. path may be empty, in which case learnlens.yaml is
// looked up in the working directory and silently skipped when absent.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("learnlens")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range FlagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail later and less clearly.
func (c *Config) Validate() error {
	if c.Data.Path == "" {
		return errors.New("data.path must not be empty")
	}
	if err := c.Risk.Thresholds().Validate(); err != nil {
		return fmt.Errorf("risk: %w", err)
	}
	if c.Chart.WidthIn <= 0 || c.Chart.HeightIn <= 0 {
		return fmt.Errorf("chart size must be positive, got %.1fx%.1f", c.Chart.WidthIn, c.Chart.HeightIn)
	}
	return nil
}
