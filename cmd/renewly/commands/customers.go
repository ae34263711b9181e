package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/renewly-io/renewly-client/pkg/renewly"
	"github.com/spf13/cobra"
)

// NewCustomersCommand creates the customers command group.
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer"},
		Short:   "Manage customers",
		Long:    "List and inspect Renewly customers",
	}

	cmd.AddCommand(newCustomersListCommand())
	cmd.AddCommand(newCustomersGetCommand())

	return cmd
}

func newCustomersListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		sortBy   string
		email    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		Long:  "List customers, optionally filtered by email",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			filters := map[string]string{}
			if email != "" {
				filters["email"] = email
			}

			params := buildListParams(limit, sortBy, filters)

			customers, err := collectPage(cmd, client.Customers().List(params), allPages, limit)
			if err != nil {
				return fmt.Errorf("listing customers: %w", err)
			}

			return renderWithFormat(customers, renderCustomerTable)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum results to return")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort order (for example email-asc)")
	cmd.Flags().StringVar(&email, "email", "", "filter by email address")

	return cmd
}

func renderCustomerTable(customers []renewly.Customer) error {
	if len(customers) == 0 {
		_, _ = os.Stdout.WriteString("No customers found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Email", "Name", "Active Subs", "Created")

	for _, customer := range customers {
		name := customer.FirstName + " " + customer.LastName
		_ = table.Append(customer.ID, customer.Email, name,
			fmt.Sprintf("%d", customer.SubscriptionsActive),
			formatDate(customer.CreatedAt))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newCustomersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CUSTOMER_ID",
		Short: "Get customer details",
		Long:  "Display detailed information about a specific customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			customer, err := client.Customers().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("getting customer: %w", err)
			}

			return renderWithFormat(customer, func(customer *renewly.Customer) error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", customer.ID)
				_ = table.Append("Email", customer.Email)
				_ = table.Append("Name", customer.FirstName+" "+customer.LastName)
				_ = table.Append("Phone", customer.Phone)
				_ = table.Append("Active subscriptions", fmt.Sprintf("%d", customer.SubscriptionsActive))
				_ = table.Append("Total subscriptions", fmt.Sprintf("%d", customer.SubscriptionsTotal))
				_ = table.Append("Created", formatDate(customer.CreatedAt))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}
