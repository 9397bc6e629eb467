package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cssel",
	Short: "A CSS selector construction and stylesheet rendering tool",
	Long: `cssel builds CSS selectors from discrete parts and renders YAML
stylesheet documents to CSS.

Key Features:
  • Selector construction with ordering and uniqueness enforcement
  • Combinator composition (descendant, >, +, ~)
  • YAML stylesheet documents rendered to CSS
  • Watch mode with a live-reloading preview server

Quick Start:
  cssel build div '#main' .container       Build one selector
  cssel render styles.yaml                 Render a document
  cssel watch styles.yaml --serve          Watch with live preview`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .cssel.yml, can also use CSSEL_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig initializes the configuration system.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag: Explicitly specified config file path
//  2. CSSEL_CONFIG_FILE environment variable: Custom config file path
//  3. Default: .cssel.yml in current directory
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("CSSEL_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(".cssel")
		viper.SetConfigType("yml")
	}

	viper.SetEnvPrefix("CSSEL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is worth a warning.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			fmt.Fprintf(os.Stderr, "Warning: failed to read config file: %v\n", err)
		}
	}
}
