package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/renewly-io/renewly-client/pkg/renewly"
	"github.com/spf13/cobra"
)

// NewStoreCommand creates the store command group.
func NewStoreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "store",
		Aliases: []string{"shop"},
		Short:   "Inspect store settings",
		Long:    "Display store-level settings and identity",
	}

	cmd.AddCommand(newStoreGetCommand())

	return cmd
}

func newStoreGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Get store settings",
		Long:  "Display the store settings for the authenticated merchant",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			store, err := client.Store().Get(cmd.Context())
			if err != nil {
				return fmt.Errorf("getting store: %w", err)
			}

			return renderWithFormat(store, func(store *renewly.Store) error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", store.ID)
				_ = table.Append("Name", store.Name)
				_ = table.Append("Domain", store.Domain)
				_ = table.Append("Email", store.Email)
				_ = table.Append("Currency", store.Currency)
				_ = table.Append("Timezone", store.Timezone)
				_ = table.Append("Created", formatDate(store.CreatedAt))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}
