package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ddefia/defiav1/internal/config"
	"github.com/ddefia/defiav1/internal/lunarcrush"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	appCfg  config.Config
)

// rootCmd is the base command called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "defia",
	Short: "Defia social intelligence CLI",
	Long:  "Terminal reports over the LunarCrush social API, with optional AI narrative analysis.",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
}

func initConfig() {
	// .env is optional; real environment variables win over its values
	_ = godotenv.Load()

	v := viper.GetViper()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/defia")
		v.AddConfigPath("configs")
	}

	v.SetEnvPrefix("DEFIA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Credentials usually arrive via environment only; bind the keys
	// explicitly so Unmarshal sees them without a config file entry.
	for _, key := range []string{
		"lunarcrush.api_key",
		"insight.provider",
		"insight.gemini.api_key",
		"insight.openai.api_key",
	} {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			fmt.Fprintf(os.Stderr, "error reading config: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", v.ConfigFileUsed())
	}

	if err := v.Unmarshal(&appCfg); err != nil {
		fmt.Fprintf(os.Stderr, "error parsing config: %v\n", err)
		os.Exit(1)
	}

	appCfg.FillDefaults()
	setupLogging(appCfg.App.LogLevel)
}

func setupLogging(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

// GetConfig exposes the loaded configuration to subcommands.
func GetConfig() config.Config {
	return appCfg
}

// newFeedClient builds the LunarCrush client from config. The API key
// is required; everything else has defaults.
func newFeedClient(cfg config.Config) (*lunarcrush.Client, error) {
	if strings.TrimSpace(cfg.LunarCrush.APIKey) == "" {
		return nil, fmt.Errorf("lunarcrush api key missing: set lunarcrush.api_key in config.yaml or DEFIA_LUNARCRUSH_API_KEY")
	}
	timeout, err := time.ParseDuration(cfg.LunarCrush.Timeout)
	if err != nil {
		slog.Warn("invalid lunarcrush timeout, using default", "timeout", cfg.LunarCrush.Timeout)
		timeout = 0
	}
	return lunarcrush.NewClient(cfg.LunarCrush.BaseURL, cfg.LunarCrush.APIKey, timeout), nil
}
