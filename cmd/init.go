package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/bython/lint"
)

// initCmd: bython init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new linter configuration file",
	// the configuration file may not exist yet, so it is not loaded
	PersistentPreRunE: func(*cobra.Command, []string) error { return setupLogger() },
	Run: func(cmd *cobra.Command, args []string) {
		path, err := initConfigurationFile(cfgFile)
		if err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return
		}
		fmt.Printf("Configuration file created/updated: %s\n", path)
	},
}

func initConfigurationFile(configurationPath string) (string, error) {
	if configurationPath == "" {
		configurationPath = lint.DefaultConfigPath
	}
	if err := lint.WriteConfig(configurationPath, lint.DefaultConfig()); err != nil {
		return "", err
	}
	return configurationPath, nil
}
