package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/you-humble/mobile-mechanic/internal/model"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "quotectl",
		Short: "Offline pricing checks for mobile mechanic quotes",
		Long: `quotectl runs the quote pricing engine, the parts estimate lookup and the
maintenance calculator locally and prints the results as JSON.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newQuoteCmd(),
		newEstimateCmd(),
		newPartCmd(),
		newMaintenanceCmd(),
	)

	return root
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// vehicleFlags are shared by the quote and estimate commands.
type vehicleFlags struct {
	maker       string
	model       string
	year        int
	mileage     int
	vehicleType string
}

func (f *vehicleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.maker, "make", "", "vehicle make")
	cmd.Flags().StringVar(&f.model, "model", "", "vehicle model")
	cmd.Flags().IntVar(&f.year, "year", 0, "vehicle model year")
	cmd.Flags().IntVar(&f.mileage, "mileage", 0, "vehicle odometer reading")
	cmd.Flags().StringVar(&f.vehicleType, "vehicle-type", string(model.VehicleCar), "car, motorcycle or scooter")
}

func (f *vehicleFlags) vehicle(cmd *cobra.Command) *model.Vehicle {
	if !cmd.Flags().Changed("year") {
		return nil
	}
	return &model.Vehicle{
		Make:    f.maker,
		Model:   f.model,
		Year:    f.year,
		Mileage: f.mileage,
		Type:    model.VehicleType(f.vehicleType),
	}
}

type locationFlags struct {
	lat, lng         float64
	baseLat, baseLng float64
}

func (f *locationFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.lat, "lat", 0, "customer latitude")
	cmd.Flags().Float64Var(&f.lng, "lng", 0, "customer longitude")
	cmd.Flags().Float64Var(&f.baseLat, "base-lat", 0, "service base latitude")
	cmd.Flags().Float64Var(&f.baseLng, "base-lng", 0, "service base longitude")
	cmd.MarkFlagsRequiredTogether("lat", "lng")
}

func (f *locationFlags) location(cmd *cobra.Command) *model.Location {
	if !cmd.Flags().Changed("lat") {
		return nil
	}
	return &model.Location{Latitude: f.lat, Longitude: f.lng}
}

func (f *locationFlags) base() model.Location {
	return model.Location{Latitude: f.baseLat, Longitude: f.baseLng}
}
