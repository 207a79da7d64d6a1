package main

import (
	"github.com/spf13/cobra"

	"github.com/you-humble/mobile-mechanic/internal/converter"
	"github.com/you-humble/mobile-mechanic/internal/distance"
	"github.com/you-humble/mobile-mechanic/internal/model"
	"github.com/you-humble/mobile-mechanic/internal/service/pricing"
)

func newEstimateCmd() *cobra.Command {
	var (
		serviceType string
		urgency     string
		parts       []string
		vehicle     vehicleFlags
		location    locationFlags
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Show the live min/max price band for a request",
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine := pricing.NewEngine(pricing.WithDistance(distance.Haversine{}, location.base()))

			est, err := engine.LiveEstimate(model.LiveEstimateParams{
				ServiceType:   model.ServiceType(serviceType),
				Urgency:       model.Urgency(urgency),
				SelectedParts: parts,
				Vehicle:       vehicle.vehicle(cmd),
				Location:      location.location(cmd),
			})
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), converter.LiveEstimateToAPI(est))
		},
	}

	cmd.Flags().StringVar(&serviceType, "service-type", "", "service type, e.g. oil_change")
	cmd.Flags().StringVar(&urgency, "urgency", string(model.UrgencyMedium), "low, medium, high or emergency")
	cmd.Flags().StringSliceVar(&parts, "parts", nil, "selected parts from the service's parts table")
	vehicle.register(cmd)
	location.register(cmd)
	_ = cmd.MarkFlagRequired("service-type")

	return cmd
}
