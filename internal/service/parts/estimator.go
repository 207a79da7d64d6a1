package parts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/you-humble/mobile-mechanic/internal/catalog"
	"github.com/you-humble/mobile-mechanic/internal/model"
)

const (
	genericPrice  = 50.00
	genericSource = "Generic Estimate"

	// Names this short are too ambiguous for a generic estimate.
	minGenericNameLen = 3

	maxConcurrentLookups = 8
)

type table struct {
	ordered []catalog.PartEntry
	exact   map[string]model.PartEstimate
}

func newTable(entries []catalog.PartEntry) table {
	exact := make(map[string]model.PartEstimate, len(entries))
	for _, e := range entries {
		exact[e.Key] = e.Estimate
	}
	return table{ordered: entries, exact: exact}
}

type Estimator struct {
	general    table
	motorcycle table
}

func NewEstimator() *Estimator {
	return &Estimator{
		general:    newTable(catalog.GeneralParts()),
		motorcycle: newTable(catalog.MotorcycleParts()),
	}
}

// Estimate looks a part up by exact name, then by substring overlap with a known key, then
// falls back to a generic price. Substring matches and generic prices are low confidence.
func (e *Estimator) Estimate(name string) (*model.PartEstimate, error) {
	const op string = "parts.Estimator.Estimate"

	normalized := catalog.NormalizeName(name)
	if normalized == "" {
		return nil, fmt.Errorf("%s: %w: part name is required", op, model.ErrValidation)
	}

	if est, ok := e.general.exact[normalized]; ok {
		return &est, nil
	}

	for _, entry := range e.general.ordered {
		if strings.Contains(entry.Key, normalized) || strings.Contains(normalized, entry.Key) {
			est := entry.Estimate
			est.Confidence = model.PartConfidenceLow
			return &est, nil
		}
	}

	if utf8.RuneCountInString(normalized) >= minGenericNameLen {
		return &model.PartEstimate{
			PartName:       name,
			EstimatedPrice: genericPrice,
			Confidence:     model.PartConfidenceLow,
			Source:         genericSource,
			Availability:   model.AvailabilityUnknown,
		}, nil
	}

	return nil, fmt.Errorf("%s: %w: %q", op, model.ErrPartNotFound, name)
}

// EstimateMotorcycle checks the motorcycle table by exact name before the general lookup.
func (e *Estimator) EstimateMotorcycle(name string) (*model.PartEstimate, error) {
	if est, ok := e.motorcycle.exact[catalog.NormalizeName(name)]; ok {
		return &est, nil
	}
	return e.Estimate(name)
}

func (e *Estimator) EstimateFor(vt model.VehicleType, name string) (*model.PartEstimate, error) {
	switch vt {
	case model.VehicleMotorcycle, model.VehicleScooter:
		return e.EstimateMotorcycle(name)
	default:
		return e.Estimate(name)
	}
}

// EstimateMany resolves names concurrently. Results keep input order; names with no
// estimate are dropped.
func (e *Estimator) EstimateMany(
	ctx context.Context,
	vt model.VehicleType,
	names []string,
) ([]model.PartEstimate, error) {
	const op string = "parts.Estimator.EstimateMany"

	results := make([]*model.PartEstimate, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			est, err := e.EstimateFor(vt, name)
			switch {
			case err == nil:
				results[i] = est
			case errors.Is(err, model.ErrPartNotFound):
			default:
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return lo.FilterMap(results, func(est *model.PartEstimate, _ int) (model.PartEstimate, bool) {
		if est == nil {
			return model.PartEstimate{}, false
		}
		return *est, true
	}), nil
}

func Total(estimates []model.PartEstimate) float64 {
	return lo.SumBy(estimates, func(est model.PartEstimate) float64 { return est.EstimatedPrice })
}
