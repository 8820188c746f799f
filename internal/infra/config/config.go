package config

// Configuration layering: defaults, then config.yaml, then .env, then
// process env. CLI flags are applied last through ApplyChartFlags so an
// explicit flag always wins.

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	WorldBank WorldBankConfig `mapstructure:"worldbank"`
	Chart     ChartConfig     `mapstructure:"chart"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
}

// WorldBankConfig controls the live data fetch.
type WorldBankConfig struct {
	IndicatorURL    string `mapstructure:"indicator_url"`
	RequestTimeout  int    `mapstructure:"request_timeout"`  // seconds, one attempt
	PreferLive      bool   `mapstructure:"prefer_live"`      // fetch before falling back to bundled data
	MaxResponseSize int64  `mapstructure:"max_response_size"`
}

// ChartConfig controls selection and rendering.
type ChartConfig struct {
	Year      string `mapstructure:"year"`
	TopN      int    `mapstructure:"top_n"`
	Width     int    `mapstructure:"width"`
	Height    int    `mapstructure:"height"`
	Format    string `mapstructure:"format"` // png or svg
	OutputDir string `mapstructure:"output_dir"`
	Show      bool   `mapstructure:"show"` // open the chart in a viewer after saving
}

// TelegramConfig is only required by the share command.
type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   string `mapstructure:"chat_id"`
}

// LoadConfig resolves configuration in order:
// 1. built-in defaults
// 2. config.yaml in the working directory
// 3. .env file
// 4. process environment
func LoadConfig() (*Config, error) {
	godotenv.Load(".env")

	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.ReadInConfig() // missing file is fine

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.ReadInConfig() // missing file is fine

	v.AutomaticEnv()

	setupEnvAliases(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setupEnvAliases(v *viper.Viper) {
	// WORLDBANK_INDICATOR_URL -> worldbank.indicator_url and so on

	v.BindEnv("worldbank.indicator_url", "WORLDBANK_INDICATOR_URL")
	v.BindEnv("worldbank.request_timeout", "POPCHART_REQUEST_TIMEOUT")
	v.BindEnv("worldbank.prefer_live", "POPCHART_PREFER_LIVE")
	v.BindEnv("worldbank.max_response_size", "POPCHART_MAX_RESPONSE_SIZE")

	v.BindEnv("chart.year", "POPCHART_YEAR")
	v.BindEnv("chart.top_n", "POPCHART_TOP_N")
	v.BindEnv("chart.width", "POPCHART_WIDTH")
	v.BindEnv("chart.height", "POPCHART_HEIGHT")
	v.BindEnv("chart.format", "POPCHART_FORMAT")
	v.BindEnv("chart.output_dir", "POPCHART_OUTPUT_DIR")
	v.BindEnv("chart.show", "POPCHART_SHOW")

	v.BindEnv("telegram.bot_token", "TELEGRAM_BOT_TOKEN")
	v.BindEnv("telegram.chat_id", "TELEGRAM_CHAT_ID")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("worldbank.indicator_url", "http://api.worldbank.org/v2/en/indicator/SP.POP.TOTL?downloadformat=csv")
	v.SetDefault("worldbank.request_timeout", 10)
	v.SetDefault("worldbank.prefer_live", false)
	v.SetDefault("worldbank.max_response_size", 20*1024*1024) // 20MB

	v.SetDefault("chart.year", "2020")
	v.SetDefault("chart.top_n", 10)
	v.SetDefault("chart.width", 1200)
	v.SetDefault("chart.height", 800)
	v.SetDefault("chart.format", "png")
	v.SetDefault("chart.output_dir", ".")
	v.SetDefault("chart.show", false)

	v.SetDefault("telegram.bot_token", "")
	v.SetDefault("telegram.chat_id", "")
}

// RegisterChartFlags declares the shared chart flags on a cobra flag set.
// Defaults shown in help mirror setDefaults; only flags the user actually
// set override the loaded config.
func RegisterChartFlags(flags *pflag.FlagSet) {
	flags.String("year", "2020", "Year column to select (env: POPCHART_YEAR)")
	flags.Int("top", 10, "How many countries to include (env: POPCHART_TOP_N)")
	flags.Int("width", 1200, "Chart width in pixels (env: POPCHART_WIDTH)")
	flags.Int("height", 800, "Chart height in pixels (env: POPCHART_HEIGHT)")
	flags.String("format", "png", "Output format: png or svg (env: POPCHART_FORMAT)")
	flags.String("out", ".", "Directory for the chart file (env: POPCHART_OUTPUT_DIR)")
	flags.Bool("live", false, "Fetch live World Bank data before falling back (env: POPCHART_PREFER_LIVE)")
	flags.Bool("show", false, "Open the saved chart in a viewer (env: POPCHART_SHOW)")
}

// ApplyChartFlags copies explicitly set chart flags into the config.
func (c *Config) ApplyChartFlags(flags *pflag.FlagSet) error {
	var applyErr error
	apply := func(name string, set func() error) {
		if applyErr != nil || !flags.Changed(name) {
			return
		}
		applyErr = set()
	}

	apply("year", func() error {
		v, err := flags.GetString("year")
		c.Chart.Year = v
		return err
	})
	apply("top", func() error {
		v, err := flags.GetInt("top")
		c.Chart.TopN = v
		return err
	})
	apply("width", func() error {
		v, err := flags.GetInt("width")
		c.Chart.Width = v
		return err
	})
	apply("height", func() error {
		v, err := flags.GetInt("height")
		c.Chart.Height = v
		return err
	})
	apply("format", func() error {
		v, err := flags.GetString("format")
		c.Chart.Format = v
		return err
	})
	apply("out", func() error {
		v, err := flags.GetString("out")
		c.Chart.OutputDir = v
		return err
	})
	apply("live", func() error {
		v, err := flags.GetBool("live")
		c.WorldBank.PreferLive = v
		return err
	})
	apply("show", func() error {
		v, err := flags.GetBool("show")
		c.Chart.Show = v
		return err
	})

	if applyErr != nil {
		return applyErr
	}
	return validateConfig(c)
}

func validateConfig(cfg *Config) error {
	if cfg.WorldBank.IndicatorURL == "" {
		return fmt.Errorf("worldbank.indicator_url must not be empty")
	}
	if cfg.WorldBank.RequestTimeout <= 0 {
		return fmt.Errorf("worldbank.request_timeout must be positive, got %d", cfg.WorldBank.RequestTimeout)
	}
	if cfg.WorldBank.MaxResponseSize <= 0 {
		return fmt.Errorf("worldbank.max_response_size must be positive, got %d", cfg.WorldBank.MaxResponseSize)
	}

	if cfg.Chart.Year == "" {
		return fmt.Errorf("chart.year must not be empty")
	}
	if cfg.Chart.TopN <= 0 {
		return fmt.Errorf("chart.top_n must be positive, got %d", cfg.Chart.TopN)
	}
	if cfg.Chart.Width <= 0 || cfg.Chart.Height <= 0 {
		return fmt.Errorf("chart dimensions must be positive, got %dx%d", cfg.Chart.Width, cfg.Chart.Height)
	}
	if cfg.Chart.Format != "png" && cfg.Chart.Format != "svg" {
		return fmt.Errorf("chart.format must be png or svg, got %q", cfg.Chart.Format)
	}

	return nil
}
