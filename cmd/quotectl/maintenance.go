package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/you-humble/mobile-mechanic/internal/converter"
	"github.com/you-humble/mobile-mechanic/internal/model"
	"github.com/you-humble/mobile-mechanic/internal/service/maintenance"
)

func newMaintenanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maintenance",
		Short: "Maintenance schedule helpers",
	}

	cmd.AddCommand(newMaintenanceDueCmd(), newMaintenanceIntervalsCmd())

	return cmd
}

func newMaintenanceDueCmd() *cobra.Command {
	var (
		serviceType string
		last        string
		mileage     int
	)

	cmd := &cobra.Command{
		Use:   "due",
		Short: "Compute when a service is next due",
		RunE: func(cmd *cobra.Command, _ []string) error {
			lastService, err := time.Parse(time.DateOnly, last)
			if err != nil {
				return fmt.Errorf("%w: --last must be YYYY-MM-DD", model.ErrValidation)
			}

			var lastMileage *int
			if cmd.Flags().Changed("mileage") {
				lastMileage = &mileage
			}

			due, ok := maintenance.NewCalculator().Due(lastService, lastMileage, model.ServiceType(serviceType))
			if !ok {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "no maintenance schedule for %q\n", serviceType)
				return err
			}

			return printJSON(cmd.OutOrStdout(), converter.MaintenanceDueToAPI(due))
		},
	}

	cmd.Flags().StringVar(&serviceType, "service-type", "", "service type, e.g. oil_change")
	cmd.Flags().StringVar(&last, "last", "", "date of the last service (YYYY-MM-DD)")
	cmd.Flags().IntVar(&mileage, "mileage", 0, "odometer reading at the last service")
	_ = cmd.MarkFlagRequired("service-type")
	_ = cmd.MarkFlagRequired("last")

	return cmd
}

func newMaintenanceIntervalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "intervals",
		Short: "List the recommended maintenance intervals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd.OutOrStdout(), converter.MaintenanceIntervalsToAPI(maintenance.NewCalculator().Intervals()))
		},
	}
}
