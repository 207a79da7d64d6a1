package main

import (
	"github.com/spf13/cobra"

	"github.com/you-humble/mobile-mechanic/internal/converter"
	"github.com/you-humble/mobile-mechanic/internal/distance"
	"github.com/you-humble/mobile-mechanic/internal/model"
	"github.com/you-humble/mobile-mechanic/internal/service/pricing"
)

func newQuoteCmd() *cobra.Command {
	var (
		requestID   string
		serviceType string
		urgency     string
		description string
		parts       []string
		hours       float64
		discount    float64
		lenient     bool
		vehicle     vehicleFlags
		location    locationFlags
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a full quote",
		Example: `  quotectl quote --service-type oil_change --urgency medium
  quotectl quote --service-type brake_service --urgency high --make BMW --year 2012 --parts "Brake Pads"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []pricing.Option{pricing.WithDistance(distance.Haversine{}, location.base())}
			if lenient {
				opts = append(opts, pricing.WithLenientParts())
			}
			engine := pricing.NewEngine(opts...)

			qo := model.QuoteOptions{
				ServiceType:     model.ServiceType(serviceType),
				Urgency:         model.Urgency(urgency),
				Description:     description,
				SelectedParts:   parts,
				DiscountPercent: discount,
				Vehicle:         vehicle.vehicle(cmd),
				Location:        location.location(cmd),
			}
			if cmd.Flags().Changed("hours") {
				qo.CustomLaborHours = &hours
			}

			q, err := engine.Quote(requestID, qo)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), converter.QuoteToAPI(q))
		},
	}

	cmd.Flags().StringVar(&requestID, "request-id", "cli", "service request id stamped on the quote")
	cmd.Flags().StringVar(&serviceType, "service-type", "", "service type, e.g. oil_change")
	cmd.Flags().StringVar(&urgency, "urgency", string(model.UrgencyMedium), "low, medium, high or emergency")
	cmd.Flags().StringVar(&description, "description", "", "customer description of the problem")
	cmd.Flags().StringSliceVar(&parts, "parts", nil, "selected parts from the service's parts table")
	cmd.Flags().Float64Var(&hours, "hours", 0, "custom labor hours")
	cmd.Flags().Float64Var(&discount, "discount", 0, "discount percent (0-100)")
	cmd.Flags().BoolVar(&lenient, "lenient", false, "price unknown parts at zero instead of failing")
	vehicle.register(cmd)
	location.register(cmd)
	_ = cmd.MarkFlagRequired("service-type")

	return cmd
}
