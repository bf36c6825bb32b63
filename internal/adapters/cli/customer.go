package cli

import (
	"errors"

	"github.com/rafaelleal24/orderplacement/internal/core/domain"
	"github.com/rafaelleal24/orderplacement/internal/core/dto"
	"github.com/spf13/cobra"
)

func newCustomerCommand(rt *runtime) *cobra.Command {
	customerCmd := &cobra.Command{
		Use:   "customer",
		Short: "Manage customers",
	}

	var name, email string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" || email == "" {
				return errors.New("--name and --email are required")
			}
			app, err := rt.services()
			if err != nil {
				return err
			}
			customer, err := app.Customers.Create(cmd.Context(), &dto.CreateCustomerRequest{Name: name, Email: email})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), newCustomerView(customer))
		},
	}
	createCmd.Flags().StringVar(&name, "name", "", "customer name")
	createCmd.Flags().StringVar(&email, "email", "", "customer email")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := rt.services()
			if err != nil {
				return err
			}
			customer, err := app.Customers.GetByID(cmd.Context(), domain.ID(args[0]))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), newCustomerView(customer))
		},
	}

	customerCmd.AddCommand(createCmd, getCmd)
	return customerCmd
}
