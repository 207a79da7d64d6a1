package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/mobile-mechanic/internal/model"
)

func TestEngineLiveEstimate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		miles  float64
		params model.LiveEstimateParams
		want   *model.LiveEstimate
		errIs  error
	}{
		{
			name: "defaults to first common part and base travel",
			params: model.LiveEstimateParams{
				ServiceType: model.ServiceOilChange,
				Urgency:     model.UrgencyMedium,
			},
			want: &model.LiveEstimate{
				Min: 78,
				Max: 105,
				Breakdown: model.LiveBreakdown{
					Labor:             41,
					Parts:             25,
					Travel:            25,
					UrgencyMultiplier: 1.1,
				},
			},
		},
		{
			name:  "old vehicle with selected parts and distance overage",
			miles: 20,
			params: model.LiveEstimateParams{
				ServiceType:   model.ServiceOilChange,
				Urgency:       model.UrgencyMedium,
				Vehicle:       &model.Vehicle{Make: "Ford", Model: "Focus", Year: fixedNow.Year() - 16},
				Location:      &model.Location{Latitude: 1, Longitude: 1},
				SelectedParts: []string{"Synthetic Oil (5qt)", "Oil Filter"},
			},
			want: &model.LiveEstimate{
				Min: 145,
				Max: 196,
				Breakdown: model.LiveBreakdown{
					Labor:             54,
					Parts:             72,
					Travel:            45,
					UrgencyMultiplier: 1.1,
				},
			},
		},
		{
			name: "unknown service type",
			params: model.LiveEstimateParams{
				ServiceType: "detailing",
				Urgency:     model.UrgencyLow,
			},
			errIs: model.ErrUnknownServiceType,
		},
		{
			name: "unsupported urgency",
			params: model.LiveEstimateParams{
				ServiceType: model.ServiceOilChange,
				Urgency:     "asap",
			},
			errIs: model.ErrValidation,
		},
		{
			name: "location out of range",
			params: model.LiveEstimateParams{
				ServiceType: model.ServiceOilChange,
				Urgency:     model.UrgencyLow,
				Location:    &model.Location{Latitude: -91, Longitude: 0},
			},
			errIs: model.ErrValidation,
		},
		{
			name: "unknown part",
			params: model.LiveEstimateParams{
				ServiceType:   model.ServiceOilChange,
				Urgency:       model.UrgencyLow,
				SelectedParts: []string{"flux capacitor"},
			},
			errIs: model.ErrUnknownPart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := newTestEngine(tt.miles).LiveEstimate(tt.params)
			if tt.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
