package commands

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/renewly-io/renewly-client/pkg/renewclient"
	"github.com/renewly-io/renewly-client/pkg/renewly"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// ErrAccessTokenRequired is returned when login completes without a token.
var ErrAccessTokenRequired = errors.New("access token is required")

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint string
		accessToken string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to Renewly",
		Long:  "Authenticate against a Renewly API endpoint and persist the credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiEndpoint == "" {
				apiEndpoint = viper.GetString("api")
			}

			if apiEndpoint == "" {
				apiEndpoint = readLine("API endpoint (blank for https://api.renewly.com): ")
			}

			if accessToken == "" {
				accessToken = viper.GetString("token")
			}

			if accessToken == "" {
				fmt.Print("Access token: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read access token: %w", err)
				}

				accessToken = strings.TrimSpace(string(byteToken))

				fmt.Println()
			}

			if accessToken == "" {
				return ErrAccessTokenRequired
			}

			client, err := renewclient.New(renewly.Config{
				AccessToken: accessToken,
				APIEndpoint: apiEndpoint,
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Validate the credentials by fetching store settings.
			store, err := client.Store().Get(cmd.Context())
			if err != nil {
				return fmt.Errorf("verifying credentials: %w", err)
			}

			config := loadConfig()
			config.API = client.GetConfig().APIEndpoint
			config.Token = accessToken

			if err := saveConfig(config); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Logged in to store '%s' (%s)\n", store.Name, store.Domain)

			return nil
		},
	}

	cmd.Flags().StringVar(&apiEndpoint, "api", "", "API endpoint URL")
	cmd.Flags().StringVar(&accessToken, "token", "", "access token")

	return cmd
}

// readLine reads one trimmed line from stdin, used for interactive prompts.
func readLine(prompt string) string {
	fmt.Print(prompt)

	reader := bufio.NewReader(os.Stdin)

	line, _ := reader.ReadString('\n')

	return strings.TrimSpace(line)
}
