// Package pricing turns a service request into a priced quote. Engine is a pure transform
// over static tables plus its injected collaborators: a clock, a distance source and an ID
// generator. It performs no I/O and holds no mutable state, so one Engine may serve any
// number of goroutines.
package pricing

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/mobile-mechanic/internal/catalog"
	"github.com/you-humble/mobile-mechanic/internal/distance"
	"github.com/you-humble/mobile-mechanic/internal/model"
)

type DistanceProvider interface {
	Miles(from, to model.Location) float64
}

const (
	travelBaseFee        = 25.0
	travelFreeMiles      = 10.0
	travelPerMileOverage = 2.0

	highMileage = 150_000
)

type Engine struct {
	now          func() time.Time
	newID        func() uuid.UUID
	distance     DistanceProvider
	base         model.Location
	lenientParts bool
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		now:      time.Now,
		newID:    uuid.New,
		distance: distance.Haversine{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Quote prices a service request. Multipliers compound in a fixed order: diagnosis, vehicle
// age and mileage, travel, urgency; parts are resolved afterwards and marked up by brand.
func (e *Engine) Quote(serviceRequestID string, opts model.QuoteOptions) (*model.Quote, error) {
	const op string = "pricing.Engine.Quote"

	if err := validateOptions(serviceRequestID, opts); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	table, ok := catalog.Pricing(opts.ServiceType)
	if !ok {
		return nil, fmt.Errorf("%s: %w %q", op, model.ErrUnknownServiceType, opts.ServiceType)
	}

	createdAt := e.now()

	hours := table.EstimatedHours
	if opts.CustomLaborHours != nil && *opts.CustomLaborHours > 0 {
		hours = *opts.CustomLaborHours
	}
	rate := table.LaborRate

	if d := opts.AIDiagnosis; d != nil {
		if d.Confidence == model.ConfidenceLow || len(d.DiagnosticSteps) > 3 {
			hours *= 1.2
		}
		if d.UrgencyLevel == model.UrgencyEmergency {
			rate *= 1.5
		}
		if d.Confidence == model.ConfidenceHigh {
			hours *= 0.9
		}
	}

	if v := opts.Vehicle; v != nil {
		hours *= ageLaborFactor(createdAt.Year() - v.Year)
		if v.Mileage > highMileage {
			hours *= 1.1
		}
	}

	var travelFee float64
	if opts.Location != nil {
		travelFee = e.travelFee(*opts.Location)
	}

	rate *= urgencyRateFactor(opts.Urgency)
	travelFee *= urgencyTravelFactor(opts.Urgency)

	laborCost := round(hours * rate)

	partsCost, err := e.partsCost(table, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if opts.Vehicle != nil {
		partsCost *= brandPartsMarkup(opts.Vehicle.Make)
	}

	subtotal := laborCost + partsCost + travelFee
	if opts.DiscountPercent > 0 {
		subtotal = round(subtotal * (1 - opts.DiscountPercent/100))
	}

	return &model.Quote{
		ID:                e.newID(),
		ServiceRequestID:  serviceRequestID,
		ServiceType:       opts.ServiceType,
		Urgency:           opts.Urgency,
		Description:       describe(table, opts, hours, travelFee),
		LaborCost:         laborCost,
		PartsCost:         partsCost,
		TravelFee:         travelFee,
		TotalCost:         round(subtotal),
		EstimatedDuration: hours,
		ValidUntil:        createdAt.Add(model.QuoteValidity),
		Status:            model.QuoteStatusPending,
		CreatedAt:         createdAt,
	}, nil
}

func (e *Engine) travelFee(to model.Location) float64 {
	miles := e.distance.Miles(e.base, to)
	return travelBaseFee + math.Max(0, miles-travelFreeMiles)*travelPerMileOverage
}

func (e *Engine) partsCost(table model.ServicePricing, opts model.QuoteOptions) (float64, error) {
	if len(opts.SelectedParts) > 0 {
		return e.selectedPartsTotal(opts.ServiceType, opts.SelectedParts)
	}
	if d := opts.AIDiagnosis; d != nil && d.EstimatedCost != nil {
		return round((d.EstimatedCost.Min + d.EstimatedCost.Max) / 2), nil
	}
	return round(averagePrice(table.CommonParts)), nil
}

func (e *Engine) selectedPartsTotal(st model.ServiceType, names []string) (float64, error) {
	var (
		total   float64
		missing []string
	)
	for _, name := range names {
		price, ok := catalog.CommonPartPrice(st, name)
		if !ok {
			missing = append(missing, name)
			continue
		}
		total += price
	}
	if len(missing) > 0 && !e.lenientParts {
		return 0, fmt.Errorf("%w: %s", model.ErrUnknownPart, strings.Join(missing, ", "))
	}
	return total, nil
}

func validateOptions(serviceRequestID string, opts model.QuoteOptions) error {
	var errs []error
	if strings.TrimSpace(serviceRequestID) == "" {
		errs = append(errs, errors.New("service request id is required"))
	}
	if !opts.Urgency.Valid() {
		errs = append(errs, fmt.Errorf("urgency %q is not supported", opts.Urgency))
	}
	if opts.DiscountPercent < 0 || opts.DiscountPercent > 100 {
		errs = append(errs, fmt.Errorf("discount %v is outside 0-100", opts.DiscountPercent))
	}
	if opts.CustomLaborHours != nil && *opts.CustomLaborHours < 0 {
		errs = append(errs, errors.New("custom labor hours must not be negative"))
	}
	if v := opts.Vehicle; v != nil {
		if v.Year <= 0 {
			errs = append(errs, errors.New("vehicle year is required"))
		}
		if v.Mileage < 0 {
			errs = append(errs, errors.New("vehicle mileage must not be negative"))
		}
	}
	if opts.Location != nil && !opts.Location.InRange() {
		errs = append(errs, errors.New("location coordinates are out of range"))
	}
	if d := opts.AIDiagnosis; d != nil && d.EstimatedCost != nil &&
		(d.EstimatedCost.Min < 0 || d.EstimatedCost.Max < d.EstimatedCost.Min) {
		errs = append(errs, errors.New("diagnosis cost range is invalid"))
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{model.ErrValidation}, errs...)...)
}
