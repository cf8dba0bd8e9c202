package main

import (
	"carehome-service/internal/app/contracts"
	"carehome-service/internal/app/services/care_api"
	"carehome-service/internal/app/services/core/inventory"
	"carehome-service/internal/app/services/shared/events"
	"carehome-service/internal/app/services/shared/invalidation"
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/dto/requests"
	"carehome-service/internal/pkg/exceptions"
	"carehome-service/internal/pkg/utils"
	"fmt"

	"github.com/spf13/cobra"
)

func (app *cli) inventoryUsecase() contracts.InventoryUsecase {
	invalidator := invalidation.NewInvalidator(nil, events.NewNoopPublisher(), app.log)
	return inventory.NewInventoryUsecase(care_api.NewInventoryCareClient(app.transport, app.log), nil, invalidator, app.log)
}

func stockCmd(app *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Change medicine and article stock",
	}

	addCmd := &cobra.Command{
		Use:   "add <medicines|articles> <patientId> <itemId>",
		Short: "Add a number of units, converted to packages and loose units",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, _ := cmd.Flags().GetInt("total")
			unitsPerPackage, _ := cmd.Flags().GetInt("per-package")

			packaging := inventory.SplitIntoPackages(total, unitsPerPackage)
			fmt.Fprintf(app.out, "Adding %d packages and %d units\n", packaging.PackageCount, packaging.RemainderUnits)

			return app.updateStock(cmd, &requests.UpdateStock{
				Kind:            args[0],
				PatientID:       args[1],
				ItemID:          args[2],
				Mode:            constvars.StockModeAdd,
				Total:           &total,
				UnitsPerPackage: unitsPerPackage,
			})
		},
	}
	addCmd.Flags().Int("total", 0, "Total units to add")
	addCmd.Flags().Int("per-package", 0, "Units per package, 0 adds loose units only")
	cmd.AddCommand(addCmd)

	setCmd := &cobra.Command{
		Use:   "set <medicines|articles> <patientId> <itemId>",
		Short: "Overwrite the loose unit quantity",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, _ := cmd.Flags().GetInt("quantity")
			return app.updateStock(cmd, &requests.UpdateStock{
				Kind:      args[0],
				PatientID: args[1],
				ItemID:    args[2],
				Mode:      constvars.StockModeSet,
				Quantity:  &quantity,
			})
		},
	}
	setCmd.Flags().Int("quantity", 0, "New quantity")
	cmd.AddCommand(setCmd)

	return cmd
}

func (app *cli) updateStock(cmd *cobra.Command, request *requests.UpdateStock) error {
	err := utils.ValidateStruct(request)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}

	usecase := app.inventoryUsecase()
	return app.withSession(func(sess *session.Session) error {
		item, err := usecase.UpdateStock(cmd.Context(), sess, request)
		if err != nil {
			return err
		}
		printInventoryItem(app.out, item)
		return nil
	})
}
