package main

import (
	"github.com/spf13/cobra"

	"github.com/you-humble/mobile-mechanic/internal/converter"
	"github.com/you-humble/mobile-mechanic/internal/service/parts"
)

func newPartCmd() *cobra.Command {
	var vehicleType string

	cmd := &cobra.Command{
		Use:   "part NAME [NAME...]",
		Short: "Look up part price estimates",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			estimates, err := parts.NewEstimator().EstimateMany(
				cmd.Context(),
				converter.VehicleTypeToModel(vehicleType),
				args,
			)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), converter.PartEstimatesToAPI(estimates, parts.Total(estimates)))
		},
	}

	cmd.Flags().StringVar(&vehicleType, "vehicle-type", "", "use the motorcycle table for motorcycle or scooter")

	return cmd
}
