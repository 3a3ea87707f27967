/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	discovery "github.com/allbin/zwave-ports"
	"github.com/allbin/zwave-ports/internal/config"
	"github.com/allbin/zwave-ports/internal/logging"
)

var (
	cfgFile   string
	v         = viper.New()
	appConfig *config.Config
	logger    = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "zwports",
	Short: "Discover serial endpoints for Z-Wave controllers",
	Long: `zwports finds the serial endpoints a Z-Wave controller can be reached
through and describes them with USB metadata where available.

Missing or unplugged devices are reported as "not found", never as failures.
Enumeration problems such as unreadable sysfs entries are logged at debug
level and the best partial answer is returned.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.zwports.yaml)")
	rootCmd.PersistentFlags().String("root", "/", "filesystem root for /dev and /sys lookups")
	rootCmd.PersistentFlags().StringP("output", "o", config.OutputText, "output format: text, json, yaml")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, error")

	_ = v.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	_ = v.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = v.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	// A missing .env is the normal case
	_ = godotenv.Load()

	config.SetDefaults(v)
	config.BindEnv(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigType("yaml")
		v.SetConfigName(".zwports")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	l, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	appConfig = cfg
	logger = l
	logger.Debug("Configuration loaded", zap.String("config_file", v.ConfigFileUsed()), zap.String("root", cfg.Root))
	return nil
}

// newScanner builds a discovery scanner from the loaded configuration
func newScanner() (*discovery.Scanner, error) {
	opts := []discovery.Option{discovery.WithLogger(logger)}
	if appConfig.Root != "" && appConfig.Root != "/" {
		opts = append(opts, discovery.WithRoot(appConfig.Root))
	}
	return discovery.NewScanner(opts...)
}
