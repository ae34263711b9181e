package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/renewly-io/renewly-client/pkg/renewly"
	"github.com/spf13/cobra"
)

// NewSubscriptionsCommand creates the subscriptions command group.
func NewSubscriptionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscriptions",
		Aliases: []string{"subscription", "subs"},
		Short:   "Manage subscriptions",
		Long:    "List, inspect, cancel, and reactivate Renewly subscriptions",
	}

	cmd.AddCommand(newSubscriptionsListCommand())
	cmd.AddCommand(newSubscriptionsGetCommand())
	cmd.AddCommand(newSubscriptionsCancelCommand())
	cmd.AddCommand(newSubscriptionsActivateCommand())

	return cmd
}

func newSubscriptionsListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		sortBy   string
		status   string
		customer string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscriptions",
		Long:  "List subscriptions, optionally filtered by status or customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			filters := map[string]string{}
			if status != "" {
				filters["status"] = status
			}

			if customer != "" {
				filters["customer_id"] = customer
			}

			params := buildListParams(limit, sortBy, filters)

			subscriptions, err := collectPage(cmd, client.Subscriptions().List(params), allPages, limit)
			if err != nil {
				return fmt.Errorf("listing subscriptions: %w", err)
			}

			return renderWithFormat(subscriptions, renderSubscriptionTable)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum results to return")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort order (for example created_at-desc)")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (active, cancelled, expired, paused)")
	cmd.Flags().StringVar(&customer, "customer", "", "filter by customer ID")

	return cmd
}

func renderSubscriptionTable(subscriptions []renewly.Subscription) error {
	if len(subscriptions) == 0 {
		_, _ = os.Stdout.WriteString("No subscriptions found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Customer", "Product", "Status", "Price", "Next Charge")

	for _, sub := range subscriptions {
		_ = table.Append(sub.ID, sub.CustomerID, sub.ProductTitle, string(sub.Status),
			sub.Price, formatDatePtr(sub.NextChargeScheduled))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newSubscriptionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SUBSCRIPTION_ID",
		Short: "Get subscription details",
		Long:  "Display detailed information about a specific subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			subscription, err := client.Subscriptions().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("getting subscription: %w", err)
			}

			return renderWithFormat(subscription, func(sub *renewly.Subscription) error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", sub.ID)
				_ = table.Append("Customer", sub.CustomerID)
				_ = table.Append("Address", sub.AddressID)
				_ = table.Append("Product", sub.ProductTitle)
				_ = table.Append("Status", string(sub.Status))
				_ = table.Append("Price", sub.Price)
				_ = table.Append("Quantity", fmt.Sprintf("%d", sub.Quantity))
				_ = table.Append("Interval", fmt.Sprintf("%d %s", sub.OrderIntervalFreq, sub.OrderIntervalUnit))
				_ = table.Append("Next charge", formatDatePtr(sub.NextChargeScheduled))
				_ = table.Append("Created", formatDate(sub.CreatedAt))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}

func newSubscriptionsCancelCommand() *cobra.Command {
	var (
		reason   string
		comments string
	)

	cmd := &cobra.Command{
		Use:   "cancel SUBSCRIPTION_ID",
		Short: "Cancel a subscription",
		Long:  "Cancel an active subscription with an optional reason",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			subscription, err := client.Subscriptions().Cancel(cmd.Context(), args[0], &renewly.SubscriptionCancelRequest{
				CancellationReason:         reason,
				CancellationReasonComments: comments,
			})
			if err != nil {
				return fmt.Errorf("cancelling subscription: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Cancelled subscription '%s'\n", subscription.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "cancellation reason")
	cmd.Flags().StringVar(&comments, "comments", "", "additional cancellation comments")

	return cmd
}

func newSubscriptionsActivateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "activate SUBSCRIPTION_ID",
		Short: "Reactivate a subscription",
		Long:  "Reactivate a cancelled subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			subscription, err := client.Subscriptions().Activate(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("activating subscription: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Activated subscription '%s'\n", subscription.ID)

			return nil
		},
	}
}
