package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ppiankov/toneguard/internal/lexicon"
	"github.com/ppiankov/toneguard/internal/logging"
	"github.com/ppiankov/toneguard/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time with -ldflags
var version = "v0.1.0"

var (
	cfgFile  string
	verbose  bool
	logLevel string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "toneguard",
	Short: "toneguard - deterministic hate speech and tone shift analysis",
	Long: `toneguard scores text for hateful, offensive or positive content using a
fixed lexicon, and detects tone shifts: passages that open positively and
turn hateful, or the other way round.

Every verdict is deterministic and explainable: the same text always
produces the same scores, and each score lists the words that produced it.

toneguard describes the words used, not the intent of the author.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := viper.GetString("logging.level")
		if verbose && level != "debug" {
			level = "info"
		}
		return logging.Init(os.Stderr, level, viper.GetString("logging.format"))
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number of toneguard.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "toneguard %s\n", version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.toneguard/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("lexicon", "", "YAML lexicon file (default: built-in lexicon)")

	// Bind flags to viper
	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("lexicon.path", rootCmd.PersistentFlags().Lookup("lexicon"))

	setDefaults(model.DefaultConfig())

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// setDefaults registers every config key so that environment variables and
// config files can override it
func setDefaults(cfg *model.Config) {
	viper.SetDefault("analysis.max_chars", cfg.Analysis.MaxChars)
	viper.SetDefault("analysis.anchor_phrases", cfg.Analysis.AnchorPhrases)
	viper.SetDefault("analysis.html", cfg.Analysis.HTML)
	viper.SetDefault("lexicon.path", cfg.Lexicon.Path)
	viper.SetDefault("cache.enabled", cfg.Cache.Enabled)
	viper.SetDefault("cache.ttl", cfg.Cache.TTL)
	viper.SetDefault("cache.cleanup_interval", cfg.Cache.CleanupInterval)
	viper.SetDefault("concurrency.workers", cfg.Concurrency.Workers)
	viper.SetDefault("rate_limiting.texts_per_second", cfg.RateLimiting.TextsPerSecond)
	viper.SetDefault("rate_limiting.burst_size", cfg.RateLimiting.BurstSize)
	viper.SetDefault("output.verbose", cfg.Output.Verbose)
	viper.SetDefault("output.include_footer", cfg.Output.IncludeFooter)
	viper.SetDefault("output.color", cfg.Output.Color)
	viper.SetDefault("logging.level", cfg.Logging.Level)
	viper.SetDefault("logging.format", cfg.Logging.Format)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			logging.Warn("cannot find home directory", "error", err)
			return
		}

		viper.AddConfigPath(filepath.Join(home, ".toneguard"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// TONEGUARD_CACHE_ENABLED overrides cache.enabled
	viper.SetEnvPrefix("TONEGUARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logging.Debug("using config file", "path", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		logging.Warn("cannot read config file", "path", cfgFile, "error", err)
	}
}

// loadConfig returns the effective configuration
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Analysis.MaxChars < 0 {
		return nil, fmt.Errorf("analysis.max_chars must not be negative, got %d", cfg.Analysis.MaxChars)
	}
	return cfg, nil
}

// loadLexicon returns the configured lexicon
func loadLexicon(cfg *model.Config) (*lexicon.Lexicon, error) {
	lex, err := lexicon.LoadOrDefault(cfg.Lexicon.Path)
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}
	if cfg.Lexicon.Path != "" {
		logging.Info("loaded lexicon", "path", cfg.Lexicon.Path, "terms", lex.Len())
	}
	return lex, nil
}
