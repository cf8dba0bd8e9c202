package main

import (
	"carehome-service/internal/app/contracts"
	"carehome-service/internal/app/services/care_api"
	"carehome-service/internal/app/services/core/specifications"
	"carehome-service/internal/app/services/shared/events"
	"carehome-service/internal/app/services/shared/exporter"
	"carehome-service/internal/app/services/shared/invalidation"
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/dto/requests"
	"carehome-service/internal/pkg/exceptions"
	"carehome-service/internal/pkg/utils"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func (app *cli) specificationUsecase() contracts.SpecificationUsecase {
	invalidator := invalidation.NewInvalidator(nil, events.NewNoopPublisher(), app.log)
	return specifications.NewSpecificationUsecase(
		care_api.NewSpecificationCareClient(app.transport, app.log),
		nil,
		invalidator,
		nil,
		0,
		exporter.Options{PDFFontPath: utils.GetEnvString("EXPORT_PDF_FONT_PATH", "")},
		app.log,
	)
}

func specCmd(app *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spec",
		Short: "Read and amend billing specifications",
	}

	showCmd := &cobra.Command{
		Use:   "show <patientId>",
		Short: "Print the active specification, or one by id with --id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			specificationID, _ := cmd.Flags().GetString("id")
			usecase := app.specificationUsecase()

			return app.withSession(func(sess *session.Session) error {
				if specificationID != "" {
					detail, err := usecase.FetchSpecificationByID(cmd.Context(), sess, args[0], specificationID)
					if err != nil {
						return err
					}
					printSpecificationDetail(app.out, detail)
					return nil
				}

				active, err := usecase.FetchActiveSpecification(cmd.Context(), sess, args[0])
				if err != nil {
					return err
				}
				printSpecification(app.out, *active)
				return nil
			})
		},
	}
	showCmd.Flags().String("id", "", "Specification id")
	cmd.AddCommand(showCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "history <patientId>",
		Short: "Print the active specification followed by closed ones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			usecase := app.specificationUsecase()
			return app.withSession(func(sess *session.Session) error {
				history, err := usecase.FetchSpecificationHistory(cmd.Context(), sess, args[0])
				if err != nil {
					return err
				}
				if history.ActiveSpec != nil {
					fmt.Fprintln(app.out, "Active:")
					printSpecification(app.out, *history.ActiveSpec)
				}
				for _, specification := range history.History {
					printSpecification(app.out, specification)
				}
				return nil
			})
		},
	})

	addCostsCmd := &cobra.Command{
		Use:   "add-costs <patientId> <specificationId>",
		Short: "Submit lodging and extra costs for a specification",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lodging, _ := cmd.Flags().GetFloat64("lodging")
			extra, _ := cmd.Flags().GetFloat64("extra")
			label, _ := cmd.Flags().GetString("label")

			request := &requests.AddCosts{
				PatientID:       args[0],
				SpecificationID: args[1],
				LodgingPrice:    lodging,
				ExtraCostAmount: extra,
				ExtraCostLabel:  label,
			}
			err := utils.ValidateStruct(request)
			if err != nil {
				return exceptions.ErrInputValidation(err)
			}

			usecase := app.specificationUsecase()
			return app.withSession(func(sess *session.Session) error {
				err := usecase.AddCosts(cmd.Context(), sess, request)
				if err != nil {
					return err
				}

				detail, err := usecase.FetchSpecificationByID(cmd.Context(), sess, args[0], args[1])
				if err != nil {
					return err
				}
				printSpecificationDetail(app.out, detail)
				return nil
			})
		},
	}
	addCostsCmd.Flags().Float64("lodging", 0, "Lodging price")
	addCostsCmd.Flags().Float64("extra", 0, "Extra cost amount")
	addCostsCmd.Flags().String("label", "", "Extra cost label, required with --extra")
	cmd.AddCommand(addCostsCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "periods <patientId>",
		Short: "Print upcoming billing periods grouped by year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			usecase := app.specificationUsecase()
			return app.withSession(func(sess *session.Session) error {
				groups, err := usecase.FetchFuturePeriods(cmd.Context(), sess, args[0])
				if err != nil {
					return err
				}
				printPeriodGroups(app.out, groups)
				return nil
			})
		},
	})

	exportCmd := &cobra.Command{
		Use:   "export <patientId>",
		Short: "Write all specifications of a patient to an XLSX or PDF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			output, _ := cmd.Flags().GetString("out")

			request := &requests.ExportSpecifications{PatientID: args[0], Format: format}
			err := utils.ValidateStruct(request)
			if err != nil {
				return exceptions.ErrUnsupportedExportFormat(format)
			}

			usecase := app.specificationUsecase()
			return app.withSession(func(sess *session.Session) error {
				file, err := usecase.ExportPeriods(cmd.Context(), sess, request)
				if err != nil {
					return err
				}
				if output == "" {
					output = file.FileName
				}
				err = os.WriteFile(output, file.Content, 0o644)
				if err != nil {
					return err
				}
				fmt.Fprintf(app.out, "Wrote %s (%d bytes)\n", output, len(file.Content))
				return nil
			})
		},
	}
	exportCmd.Flags().String("format", "xlsx", "Export format (xlsx or pdf)")
	exportCmd.Flags().String("out", "", "Output file (default is the generated file name)")
	cmd.AddCommand(exportCmd)

	return cmd
}
