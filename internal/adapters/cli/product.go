package cli

import (
	"errors"
	"fmt"

	"github.com/rafaelleal24/orderplacement/internal/core/domain"
	"github.com/rafaelleal24/orderplacement/internal/core/dto"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newProductCommand(rt *runtime) *cobra.Command {
	productCmd := &cobra.Command{
		Use:   "product",
		Short: "Manage the product catalog",
	}

	var name, description, price string
	var stock int
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return errors.New("--name is required")
			}
			amount, err := parsePrice(price)
			if err != nil {
				return err
			}
			app, err := rt.services()
			if err != nil {
				return err
			}
			product, err := app.Products.CreateProduct(cmd.Context(), &dto.CreateProductRequest{
				Name:        name,
				Description: description,
				Price:       amount,
				Stock:       stock,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), newProductView(product))
		},
	}
	createCmd.Flags().StringVar(&name, "name", "", "product name")
	createCmd.Flags().StringVar(&description, "description", "", "product description")
	createCmd.Flags().StringVar(&price, "price", "0", "unit price, e.g. 29.99")
	createCmd.Flags().IntVar(&stock, "stock", 0, "units in stock")

	var output string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := rt.services()
			if err != nil {
				return err
			}
			products, err := app.Products.GetAll(cmd.Context())
			if err != nil {
				return err
			}

			if output == "json" {
				views := make([]productView, len(products))
				for i, p := range products {
					views[i] = newProductView(p)
				}
				return printJSON(cmd.OutOrStdout(), views)
			}
			for _, p := range products {
				fmt.Fprintf(cmd.OutOrStdout(), "%s | %s | %s | %d\n",
					p.ID, p.Name, p.Price.Decimal().StringFixed(2), p.Stock)
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&output, "output", "", "output format (json)")

	var newPrice string
	setPriceCmd := &cobra.Command{
		Use:   "set-price <id>",
		Short: "Change a product's catalog price",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("price") {
				return errors.New("--price is required")
			}
			amount, err := parsePrice(newPrice)
			if err != nil {
				return err
			}
			app, err := rt.services()
			if err != nil {
				return err
			}
			product, err := app.Products.UpdatePrice(cmd.Context(), domain.ID(args[0]), &dto.UpdateProductPriceRequest{Price: amount})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), newProductView(product))
		},
	}
	setPriceCmd.Flags().StringVar(&newPrice, "price", "", "new unit price, e.g. 19.90")

	productCmd.AddCommand(createCmd, listCmd, setPriceCmd)
	return productCmd
}

func parsePrice(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price %q", raw)
	}
	return amount, nil
}
