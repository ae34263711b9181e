package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/renewly-io/renewly-client/pkg/renewly"
	"github.com/spf13/cobra"
)

// NewChargesCommand creates the charges command group.
func NewChargesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "charges",
		Aliases: []string{"charge"},
		Short:   "Manage charges",
		Long:    "List, inspect, skip, and refund Renewly charges",
	}

	cmd.AddCommand(newChargesListCommand())
	cmd.AddCommand(newChargesGetCommand())
	cmd.AddCommand(newChargesSkipCommand())
	cmd.AddCommand(newChargesRefundCommand())

	return cmd
}

func newChargesListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		sortBy   string
		status   string
		customer string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List charges",
		Long:  "List charges, optionally filtered by status or customer",
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

			charges, err := collectPage(cmd, client.Charges().List(params), allPages, limit)
			if err != nil {
				return fmt.Errorf("listing charges: %w", err)
			}

			return renderWithFormat(charges, renderChargeTable)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum results to return")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort order (for example scheduled_at-desc)")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (queued, success, error, refunded, skipped)")
	cmd.Flags().StringVar(&customer, "customer", "", "filter by customer ID")

	return cmd
}

func renderChargeTable(charges []renewly.Charge) error {
	if len(charges) == 0 {
		_, _ = os.Stdout.WriteString("No charges found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Customer", "Status", "Total", "Currency", "Scheduled")

	for _, charge := range charges {
		_ = table.Append(charge.ID, charge.CustomerID, string(charge.Status),
			charge.TotalPrice, charge.Currency, formatDatePtr(charge.ScheduledAt))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newChargesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CHARGE_ID",
		Short: "Get charge details",
		Long:  "Display detailed information about a specific charge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			charge, err := client.Charges().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("getting charge: %w", err)
			}

			return renderWithFormat(charge, func(charge *renewly.Charge) error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", charge.ID)
				_ = table.Append("Customer", charge.CustomerID)
				_ = table.Append("Status", string(charge.Status))
				_ = table.Append("Subtotal", charge.Subtotal)
				_ = table.Append("Total", charge.TotalPrice)
				_ = table.Append("Currency", charge.Currency)
				_ = table.Append("Scheduled", formatDatePtr(charge.ScheduledAt))
				_ = table.Append("Processed", formatDatePtr(charge.ProcessedAt))

				if charge.ErrorMessage != "" {
					_ = table.Append("Error", charge.ErrorMessage)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				if len(charge.LineItems) > 0 {
					_, _ = os.Stdout.WriteString("\nLine items:\n")

					lineTable := tablewriter.NewWriter(os.Stdout)
					lineTable.Header("Subscription", "Title", "Quantity", "Total")

					for _, item := range charge.LineItems {
						_ = lineTable.Append(item.SubscriptionID, item.Title,
							fmt.Sprintf("%d", item.Quantity), item.TotalPrice)
					}

					if err := lineTable.Render(); err != nil {
						return fmt.Errorf("failed to render table: %w", err)
					}
				}

				return nil
			})
		},
	}
}

func newChargesSkipCommand() *cobra.Command {
	var subscriptionIDs []string

	cmd := &cobra.Command{
		Use:   "skip CHARGE_ID",
		Short: "Skip a queued charge",
		Long:  "Skip an upcoming charge for the named subscriptions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			charge, err := client.Charges().Skip(cmd.Context(), args[0], &renewly.ChargeSkipRequest{
				SubscriptionIDs: subscriptionIDs,
			})
			if err != nil {
				return fmt.Errorf("skipping charge: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Skipped charge '%s'\n", charge.ID)

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&subscriptionIDs, "subscription", nil, "subscription IDs to skip (repeatable)")
	_ = cmd.MarkFlagRequired("subscription")

	return cmd
}

func newChargesRefundCommand() *cobra.Command {
	var (
		amount     string
		fullRefund bool
		reason     string
	)

	cmd := &cobra.Command{
		Use:   "refund CHARGE_ID",
		Short: "Refund a processed charge",
		Long:  "Refund a processed charge, in full or for a partial amount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			charge, err := client.Charges().Refund(cmd.Context(), args[0], &renewly.ChargeRefundRequest{
				Amount:     amount,
				FullRefund: fullRefund,
				Reason:     reason,
			})
			if err != nil {
				return fmt.Errorf("refunding charge: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Refunded charge '%s' (total refunds: %s)\n", charge.ID, charge.TotalRefunds)

			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "refund amount")
	cmd.Flags().BoolVar(&fullRefund, "full", false, "refund the full charge amount")
	cmd.Flags().StringVar(&reason, "reason", "", "refund reason")

	return cmd
}
