package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/fortie/internal/constants"
	"github.com/fivetwenty-io/fortie/pkg/fortie"
	"github.com/fivetwenty-io/fortie/pkg/fortieclient"
)

const (
	keyBaseURL         = "base_url"
	keyAccessToken     = "access_token"
	keyClientSecret    = "client_secret"
	keyOutput          = "output"
	keyRetryMax        = "retry_max"
	keySanitizeStrings = "sanitize_strings"
	keyVerbose         = "verbose"

	configDirName  = ".fortie"
	configFileName = "config.yml"
)

// Config represents the CLI configuration.
type Config struct {
	BaseURL         string `json:"base_url,omitempty"      yaml:"base_url,omitempty"`
	AccessToken     string `json:"access_token,omitempty"  yaml:"access_token,omitempty"`
	ClientSecret    string `json:"client_secret,omitempty" yaml:"client_secret,omitempty"`
	Output          string `json:"output,omitempty"        yaml:"output,omitempty"`
	RetryMax        int    `json:"retry_max,omitempty"     yaml:"retry_max,omitempty"`
	SanitizeStrings bool   `json:"sanitize_strings"        yaml:"sanitize_strings"`
}

// masked returns a copy with credentials hidden.
func (c Config) masked() Config {
	if c.AccessToken != "" {
		c.AccessToken = constants.MaskedSecret
	}

	if c.ClientSecret != "" {
		c.ClientSecret = constants.MaskedSecret
	}

	return c
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in ~/.fortie/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with credentials masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig().masked()

			return writeOutput(cmd.OutOrStdout(), outputFormat(), config, func(writer io.Writer) error {
				return displayConfigTable(writer, config)
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set one of base_url, access_token, client_secret, output, retry_max or sanitize_strings",
		Args:  cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value so the default applies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := unsetConfigValue(config, args[0])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return nil
		},
	}
}

func displayConfigTable(writer io.Writer, config Config) error {
	table := tablewriter.NewWriter(writer)
	table.Header("Key", "Value")

	_ = table.Append(keyBaseURL, valueOrDefault(config.BaseURL, fortie.DefaultBaseURL))
	_ = table.Append(keyAccessToken, valueOrDefault(config.AccessToken, constants.NotAvailable))
	_ = table.Append(keyClientSecret, valueOrDefault(config.ClientSecret, constants.NotAvailable))
	_ = table.Append(keyOutput, valueOrDefault(config.Output, constants.FormatTable))
	_ = table.Append(keyRetryMax, strconv.Itoa(config.RetryMax))
	_ = table.Append(keySanitizeStrings, strconv.FormatBool(config.SanitizeStrings))

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func valueOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}

// loadConfig reads the effective configuration: file, environment and flags.
func loadConfig() *Config {
	return &Config{
		BaseURL:         viper.GetString(keyBaseURL),
		AccessToken:     viper.GetString(keyAccessToken),
		ClientSecret:    viper.GetString(keyClientSecret),
		Output:          viper.GetString(keyOutput),
		RetryMax:        viper.GetInt(keyRetryMax),
		SanitizeStrings: viper.GetBool(keySanitizeStrings),
	}
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case keyBaseURL:
		config.BaseURL = value
	case keyAccessToken:
		config.AccessToken = value
	case keyClientSecret:
		config.ClientSecret = value
	case keyOutput:
		switch value {
		case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
			config.Output = value
		default:
			return fmt.Errorf("%w: %s", constants.ErrUnknownOutputFormat, value)
		}
	case keyRetryMax:
		retryMax, err := strconv.Atoi(value)
		if err != nil || retryMax < 0 {
			return fmt.Errorf("%s: %w", key, constants.ErrInvalidIntValue)
		}

		config.RetryMax = retryMax
	case keySanitizeStrings:
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, constants.ErrInvalidBoolValue)
		}

		config.SanitizeStrings = enabled
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	viper.Set(key, value)

	return nil
}

func unsetConfigValue(config *Config, key string) error {
	switch key {
	case keyBaseURL:
		config.BaseURL = ""
	case keyAccessToken:
		config.AccessToken = ""
	case keyClientSecret:
		config.ClientSecret = ""
	case keyOutput:
		config.Output = ""
	case keyRetryMax:
		config.RetryMax = 0
	case keySanitizeStrings:
		config.SanitizeStrings = false
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	viper.Set(key, nil)

	return nil
}

// configFilePath returns the file in use or ~/.fortie/config.yml.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, configDirName, configFileName), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// buildClientConfig turns the CLI configuration into a client config.
func buildClientConfig(config *Config) *fortie.Config {
	verbose := viper.GetBool(keyVerbose)

	return &fortie.Config{
		BaseURL:         config.BaseURL,
		AccessToken:     config.AccessToken,
		ClientSecret:    config.ClientSecret,
		RetryMax:        config.RetryMax,
		SanitizeStrings: config.SanitizeStrings,
		Debug:           verbose,
		Logger:          newLogger(verbose),
		UserAgent:       constants.DefaultUserAgent + "/cli",
	}
}

// createClient builds a client from the stored credentials.
func createClient() (fortie.Client, error) {
	config := loadConfig()
	if config.AccessToken == "" {
		return nil, constants.ErrNotAuthenticated
	}

	client, err := fortieclient.New(buildClientConfig(config))
	if err != nil {
		return nil, fmt.Errorf("failed to create Fortnox client: %w", err)
	}

	return client, nil
}
