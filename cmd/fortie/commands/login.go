package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fivetwenty-io/fortie/internal/constants"
	"github.com/fivetwenty-io/fortie/pkg/fortie"
	"github.com/fivetwenty-io/fortie/pkg/fortieclient"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		accessToken  string
		clientSecret string
		skipVerify   bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store Fortnox credentials",
		Long:  "Save an access token and client secret, verifying them against the API first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			var err error

			reader := bufio.NewReader(cmd.InOrStdin())
			interactive := cmd.InOrStdin() == os.Stdin && term.IsTerminal(int(syscall.Stdin))

			if accessToken == "" {
				accessToken, err = promptLine(reader, cmd.OutOrStdout(), "Access token: ")
				if err != nil {
					return err
				}
			}

			if accessToken == "" {
				return constants.ErrAccessTokenEmpty
			}

			if clientSecret == "" {
				clientSecret, err = promptSecret(reader, cmd.OutOrStdout(), "Client secret: ", interactive)
				if err != nil {
					return err
				}
			}

			if clientSecret == "" {
				return constants.ErrClientSecretEmpty
			}

			config.AccessToken = accessToken
			config.ClientSecret = clientSecret

			if !skipVerify {
				client, err := fortieclient.New(buildClientConfig(config))
				if err != nil {
					return fmt.Errorf("failed to create Fortnox client: %w", err)
				}

				_, err = client.Suppliers().All(cmd.Context(), fortie.NewQueryParams().WithLimit(1))
				if err != nil {
					return fmt.Errorf("verifying credentials: %w", err)
				}
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in to %s\n", valueOrDefault(config.BaseURL, fortie.DefaultBaseURL))

			return nil
		},
	}

	cmd.Flags().StringVar(&accessToken, "access-token", "", "Fortnox access token")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "Fortnox client secret")
	cmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "save without calling the API")

	return cmd
}

func promptLine(reader *bufio.Reader, out io.Writer, prompt string) (string, error) {
	_, _ = fmt.Fprint(out, prompt)

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// promptSecret reads without echo when stdin is a terminal.
func promptSecret(reader *bufio.Reader, out io.Writer, prompt string, interactive bool) (string, error) {
	if !interactive {
		return promptLine(reader, out, prompt)
	}

	_, _ = fmt.Fprint(out, prompt)

	secret, err := term.ReadPassword(int(syscall.Stdin))

	_, _ = fmt.Fprintln(out)

	if err != nil {
		return "", fmt.Errorf("reading secret: %w", err)
	}

	return strings.TrimSpace(string(secret)), nil
}
