package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quotev1 "github.com/you-humble/mobile-mechanic/internal/api/quote/v1"
	"github.com/you-humble/mobile-mechanic/internal/model"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestQuotectl(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		args   []string
		assert func(t *testing.T, out string, err error)
	}{
		{
			name: "quote: oil change without location has no travel fee",
			args: []string{"quote", "--service-type", "oil_change", "--urgency", "medium"},
			assert: func(t *testing.T, out string, err error) {
				require.NoError(t, err)

				var q quotev1.Quote
				require.NoError(t, json.Unmarshal([]byte(out), &q))
				assert.Equal(t, 41.0, q.LaborCost)
				assert.Equal(t, 28.0, q.PartsCost)
				assert.Equal(t, 69.0, q.TotalCost)
				assert.Equal(t, "cli", q.ServiceRequestID)
				assert.Equal(t, string(model.QuoteStatusPending), q.Status)
			},
		},
		{
			name: "quote: unknown part fails unless lenient",
			args: []string{"quote", "--service-type", "oil_change", "--parts", "warp core"},
			assert: func(t *testing.T, _ string, err error) {
				require.ErrorIs(t, err, model.ErrUnknownPart)
			},
		},
		{
			name: "quote: lenient prices unknown parts at zero",
			args: []string{"quote", "--service-type", "oil_change", "--parts", "warp core", "--lenient"},
			assert: func(t *testing.T, out string, err error) {
				require.NoError(t, err)

				var q quotev1.Quote
				require.NoError(t, json.Unmarshal([]byte(out), &q))
				assert.Equal(t, 0.0, q.PartsCost)
			},
		},
		{
			name: "quote: service type is required",
			args: []string{"quote"},
			assert: func(t *testing.T, _ string, err error) {
				require.Error(t, err)
			},
		},
		{
			name: "estimate: default band",
			args: []string{"estimate", "--service-type", "oil_change"},
			assert: func(t *testing.T, out string, err error) {
				require.NoError(t, err)

				var est quotev1.LiveEstimate
				require.NoError(t, json.Unmarshal([]byte(out), &est))
				assert.Equal(t, 78.0, est.Min)
				assert.Equal(t, 105.0, est.Max)
			},
		},
		{
			name: "part: batch keeps order and totals",
			args: []string{"part", "oil filter", "coolant"},
			assert: func(t *testing.T, out string, err error) {
				require.NoError(t, err)

				var res quotev1.PartEstimates
				require.NoError(t, json.Unmarshal([]byte(out), &res))
				require.Len(t, res.Estimates, 2)
				assert.Equal(t, "Oil Filter", res.Estimates[0].PartName)
				assert.Equal(t, "Engine Coolant", res.Estimates[1].PartName)
				assert.InDelta(t, 29.98, res.Total, 1e-9)
			},
		},
		{
			name: "maintenance due: oil change with mileage",
			args: []string{"maintenance", "due", "--service-type", "oil_change", "--last", "2024-01-01", "--mileage", "30000"},
			assert: func(t *testing.T, out string, err error) {
				require.NoError(t, err)

				var due quotev1.MaintenanceDue
				require.NoError(t, json.Unmarshal([]byte(out), &due))
				assert.Equal(t, "2024-03-31", due.DueDate.Format("2006-01-02"))
				require.NotNil(t, due.DueMileage)
				assert.Equal(t, 33000, *due.DueMileage)
			},
		},
		{
			name: "maintenance due: unscheduled service",
			args: []string{"maintenance", "due", "--service-type", "general_repair", "--last", "2024-01-01"},
			assert: func(t *testing.T, out string, err error) {
				require.NoError(t, err)
				assert.Contains(t, out, "no maintenance schedule")
			},
		},
		{
			name: "maintenance due: malformed date",
			args: []string{"maintenance", "due", "--service-type", "oil_change", "--last", "01/01/2024"},
			assert: func(t *testing.T, _ string, err error) {
				require.ErrorIs(t, err, model.ErrValidation)
			},
		},
		{
			name: "maintenance intervals",
			args: []string{"maintenance", "intervals"},
			assert: func(t *testing.T, out string, err error) {
				require.NoError(t, err)

				var res quotev1.MaintenanceIntervals
				require.NoError(t, json.Unmarshal([]byte(out), &res))
				assert.Len(t, res.Intervals, 7)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := run(t, tt.args...)
			tt.assert(t, out, err)
		})
	}
}
