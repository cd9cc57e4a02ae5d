/*
Copyright © 2021 Edmond Cotterell

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	devConfig "github.com/Daskott/contactbook/dev/config"
	"github.com/Daskott/contactbook/colors"
	"github.com/Daskott/contactbook/logger"
	"github.com/Daskott/contactbook/models"
	"github.com/Daskott/contactbook/shared"
	"github.com/Daskott/contactbook/utils"
	"github.com/Daskott/contactbook/version"
	"github.com/go-playground/validator"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "CONTACTBOOK"

var (
	cfgFile  string
	isDevEnv bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd *cobra.Command

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd = createRootCmd()
	rootCmd.Version = fmt.Sprintf("v%s", version.Version)
}

func createRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contactbook",
		Short: "contactbook is an interactive menu for keeping a short list of contacts",
		Long: `contactbook is an interactive menu for keeping a short list of contacts.

Contacts are kept in memory for the length of the session and are addressed
by their position in the list. Deleting a contact moves every contact after it
up by one, so check the list again after a delete.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.contactbook.yaml)")
	cmd.PersistentFlags().BoolVarP(&isDevEnv, "dev", "", false, "run in development mode")

	return cmd
}

func runShell(cmd *cobra.Command) error {
	appConfig, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logg := logger.NewLogger(appConfig.Log.Level)
	defer logg.Sync()

	book := models.NewContactBook(
		models.WithLogger(logg),
		models.WithCapacityWarning(appConfig.Settings.CapacityWarning),
		models.WithDateLayout(appConfig.Settings.DateFormat),
	)

	logg.Debugf("starting contact book with capacity warning at %v contacts", book.CapacityWarning())

	return newShell(cmd.InOrStdin(), cmd.OutOrStdout(), book).run()
}

// ---------------------------------------------------------------------------------//
// Config Helpers
// --------------------------------------------------------------------------------//

// loadConfig reads in config file and ENV variables & returns the validated config
func loadConfig(cmd *cobra.Command) (*shared.Config, error) {
	config, err := newViperConfig(cmd)
	if err != nil {
		return nil, err
	}

	appConfig := &shared.Config{}
	err = config.Unmarshal(appConfig)
	if err != nil {
		return nil, formattedError("unable to decode config in %s: %v", config.ConfigFileUsed(), err)
	}

	err = validator.New().Struct(appConfig)
	if err != nil {
		return nil, formattedError("invalid config in %s: %v", config.ConfigFileUsed(), err)
	}

	return appConfig, nil
}

func newViperConfig(cmd *cobra.Command) (*viper.Viper, error) {
	config := viper.New()

	config.SetDefault("settings.capacity-warning", models.DEFAULT_CAPACITY_WARNING)
	config.SetDefault("settings.date-format", models.DEFAULT_DATE_LAYOUT)
	config.SetDefault("log.level", logger.DEFAULT_LEVEL)

	if cfgFile != "" {
		// Use config file from the flag.
		config.SetConfigFile(cfgFile)
	} else {
		configName, configDir, err := defaultCfgNameAndDir()
		if err != nil {
			return nil, err
		}

		// If config file is not found, create one using the default content
		err = utils.WriteFileIfNotExist(
			filepath.Join(configDir, configName), []byte(devConfig.DEFAULT_CONTACTBOOK_YML))
		if err != nil {
			return nil, err
		}

		config.AddConfigPath(configDir)
		config.SetConfigType("yaml")
		config.SetConfigName(configName)
	}

	// e.g. CONTACTBOOK_SETTINGS_CAPACITY_WARNING overrides settings.capacity-warning
	config.SetEnvPrefix(envPrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	config.AutomaticEnv()

	if err := config.ReadInConfig(); err != nil {
		return nil, formattedError("unable to read config file: %v", err)
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", config.ConfigFileUsed())

	return config, nil
}

func defaultCfgNameAndDir() (configName string, configDir string, err error) {
	configName = ".contactbook.yaml"

	// Use home directory for production
	configDir, err = os.UserHomeDir()
	if err != nil {
		return "", "", err
	}

	if isDevEnv {
		configName = ".contactbook.dev.yaml"
		configDir, err = os.Getwd()
		if err != nil {
			return "", "", err
		}
	}

	return configName, configDir, err
}

func formattedError(format string, a ...interface{}) error {
	return fmt.Errorf(colors.Failure(format), a...)
}
