package distance

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"

	"github.com/you-humble/mobile-mechanic/internal/model"
)

func TestHaversineMiles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		from   model.Location
		to     model.Location
		want   float64
		margin float64
	}{
		{
			name: "same point",
			from: model.Location{Latitude: 40.7128, Longitude: -74.0060},
			to:   model.Location{Latitude: 40.7128, Longitude: -74.0060},
			want: 0,
		},
		{
			name:   "new york to los angeles",
			from:   model.Location{Latitude: 40.7128, Longitude: -74.0060},
			to:     model.Location{Latitude: 34.0522, Longitude: -118.2437},
			want:   2445,
			margin: 10,
		},
		{
			name:   "one degree of latitude",
			from:   model.Location{Latitude: 0, Longitude: 0},
			to:     model.Location{Latitude: 1, Longitude: 0},
			want:   69.09,
			margin: 0.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.want, Haversine{}.Miles(tt.from, tt.to), tt.margin+1e-9)
		})
	}
}

func TestHaversineMilesIsSymmetric(t *testing.T) {
	t.Parallel()

	a := model.Location{Latitude: gofakeit.Latitude(), Longitude: gofakeit.Longitude()}
	b := model.Location{Latitude: gofakeit.Latitude(), Longitude: gofakeit.Longitude()}

	h := Haversine{}
	assert.InDelta(t, h.Miles(a, b), h.Miles(b, a), 1e-6)
	assert.GreaterOrEqual(t, h.Miles(a, b), 0.0)
}

func TestFixed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 12.5, Fixed(12.5).Miles(model.Location{}, model.Location{Latitude: 1}))
}
