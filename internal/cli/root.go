// Package cli implements the netexposure command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"netexposure/internal/config"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "netexposure",
	Short: "Scan networks for exposed TCP services",
	Long: `netexposure scans a CIDR range for common service ports, highlights
risky exposures, and produces JSON/HTML summaries.

The scanner is intentionally polite (configurable concurrency and timeout)
so it can be used on lab networks without overwhelming equipment. Always get
permission before scanning networks you don't own.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.netexposure/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(wifiChannelCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		cfg = &config.Config{}
	}

	if cfg.Verbose && !verbose {
		verbose = true
	}
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of netexposure",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("netexposure v1.0.0")
	},
}

// configCmd shows config info
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration information",
	Run: func(cmd *cobra.Command, args []string) {
		path := GetConfigPath()
		fmt.Println("Configuration")
		fmt.Printf("   Path: %s\n", path)
		fmt.Printf("   Exists: %v\n", config.Exists(path))
		if cfg != nil {
			fmt.Printf("   Timeout: %v\n", cfg.Timeout)
			fmt.Printf("   Concurrency: %v\n", cfg.Concurrency)
			fmt.Printf("   Ports: %q\n", cfg.Ports)
			fmt.Printf("   Verbose: %v\n", cfg.Verbose)
		}
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the built-in defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := GetConfigPath()
		if err := config.CreateDefault(path); err != nil {
			return err
		}
		fmt.Printf("Config written to %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	return cfg
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

// IsVerbose returns whether verbose mode is enabled
func IsVerbose() bool {
	return verbose
}
