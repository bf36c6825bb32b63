package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rafaelleal24/orderplacement/internal/core/domain"
	"github.com/rafaelleal24/orderplacement/internal/core/dto"
	"github.com/spf13/cobra"
)

func newOrderCommand(rt *runtime) *cobra.Command {
	orderCmd := &cobra.Command{
		Use:   "order",
		Short: "Place and inspect orders",
	}

	var customerID string
	var items []string
	placeCmd := &cobra.Command{
		Use:   "place",
		Short: "Place an order",
		Example: "  orderctl order place --customer 65f1c0ffee0000000000aa01 \\\n" +
			"    --item 65f1c0ffee0000000000bb01:2 --item 65f1c0ffee0000000000bb02:1",
		RunE: func(cmd *cobra.Command, args []string) error {
			if customerID == "" {
				return errors.New("--customer is required")
			}
			lines, err := parseItems(items)
			if err != nil {
				return err
			}
			app, err := rt.services()
			if err != nil {
				return err
			}
			order, err := app.Orders.PlaceOrder(cmd.Context(), &dto.PlaceOrderRequest{
				CustomerID: domain.ID(customerID),
				Items:      lines,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), newOrderView(order))
		},
	}
	placeCmd.Flags().StringVar(&customerID, "customer", "", "customer ID")
	placeCmd.Flags().StringArrayVar(&items, "item", nil, "PRODUCT_ID:QUANTITY, repeatable")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := rt.services()
			if err != nil {
				return err
			}
			order, err := app.Orders.GetOrderByID(cmd.Context(), domain.ID(args[0]))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), newOrderView(order))
		},
	}

	var limit, offset int64
	listCmd := &cobra.Command{
		Use:   "list <customer-id>",
		Short: "List a customer's orders, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := rt.services()
			if err != nil {
				return err
			}
			orders, err := app.Orders.GetOrdersByCustomer(cmd.Context(), domain.ID(args[0]), limit, offset)
			if err != nil {
				return err
			}
			views := make([]orderView, len(orders))
			for i, order := range orders {
				views[i] = newOrderView(order)
			}
			return printJSON(cmd.OutOrStdout(), views)
		},
	}
	listCmd.Flags().Int64Var(&limit, "limit", 20, "page size")
	listCmd.Flags().Int64Var(&offset, "offset", 0, "orders to skip")

	orderCmd.AddCommand(placeCmd, getCmd, listCmd)
	return orderCmd
}

// parseItems turns PRODUCT_ID:QUANTITY pairs into order lines, keeping order
// and duplicates.
func parseItems(raw []string) ([]dto.OrderItem, error) {
	if len(raw) == 0 {
		return nil, errors.New("at least one --item is required")
	}

	lines := make([]dto.OrderItem, 0, len(raw))
	for _, item := range raw {
		productID, quantity, ok := strings.Cut(item, ":")
		if !ok || productID == "" {
			return nil, fmt.Errorf("invalid item %q, expected PRODUCT_ID:QUANTITY", item)
		}
		qty, err := strconv.Atoi(quantity)
		if err != nil {
			return nil, fmt.Errorf("invalid quantity in item %q", item)
		}
		lines = append(lines, dto.OrderItem{ProductID: domain.ID(productID), Quantity: qty})
	}
	return lines, nil
}
