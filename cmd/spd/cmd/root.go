// Package cmd implements the spd CLI commands.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	apiclient "github.com/donaldgifford/storefront-discovery/internal/api/client"
	"github.com/donaldgifford/storefront-discovery/internal/discovery"
	"github.com/donaldgifford/storefront-discovery/pkg/logger"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "spd",
		Short: "Storefront product discovery from the terminal",
		Long: "spd drives a storefront product-search API the way a shop front does:\n" +
			"debounced search suggestions, faceted and paginated listings, and\n" +
			"shareable listing locations.",
		SilenceUsage: true,
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $HOME/.spd.yaml)")
	flags.String("server", "http://localhost:8080", "catalog API server URL")
	flags.String("output", "table", "output format (table, json)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.Duration("debounce", discovery.DefaultDebounce, "quiet period before a suggestion lookup")
	flags.Int("page-size", discovery.DefaultPageSize, "products per listing page")
	flags.Int("suggest-limit", discovery.DefaultSuggestLimit, "maximum suggestions shown")
	flags.Duration("timeout", 10*time.Second, "per-request timeout")
	flags.Float64("rate-limit", 0, "maximum requests per second (0 disables)")

	for _, name := range []string{
		"server", "output", "log-level", "debounce", "page-size",
		"suggest-limit", "timeout", "rate-limit",
	} {
		cobra.CheckErr(viper.BindPFlag(name, flags.Lookup(name)))
	}

	rootCmd.AddCommand(browseCmd())
	rootCmd.AddCommand(suggestCmd())
	rootCmd.AddCommand(brandsCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(tuiCmd())
	rootCmd.AddCommand(versionCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".spd")
	}

	viper.SetEnvPrefix("SPD")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	opts := []apiclient.Option{apiclient.WithTimeout(viper.GetDuration("timeout"))}
	if r := viper.GetFloat64("rate-limit"); r > 0 {
		opts = append(opts, apiclient.WithRateLimiter(rate.NewLimiter(rate.Limit(r), 1)))
	}
	return apiclient.New(viper.GetString("server"), opts...)
}

func newLogger() *slog.Logger {
	return logger.New(viper.GetString("log-level"), logger.FormatPretty)
}

// discoveryOptions returns the controller options configured by flags,
// followed by extra.
func discoveryOptions(log *slog.Logger, extra ...discovery.Option) []discovery.Option {
	opts := []discovery.Option{
		discovery.WithLogger(log),
		discovery.WithDebounce(viper.GetDuration("debounce")),
		discovery.WithPageSize(viper.GetInt("page-size")),
		discovery.WithSuggestLimit(viper.GetInt("suggest-limit")),
	}
	return append(opts, extra...)
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
