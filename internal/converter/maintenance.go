package converter

import (
	"github.com/samber/lo"

	quotev1 "github.com/you-humble/mobile-mechanic/internal/api/quote/v1"
	"github.com/you-humble/mobile-mechanic/internal/model"
)

func MaintenanceIntervalToAPI(in model.MaintenanceInterval) quotev1.MaintenanceInterval {
	out := quotev1.MaintenanceInterval{
		ServiceType:  string(in.ServiceType),
		IntervalDays: in.IntervalDays,
		Description:  in.Description,
		Priority:     string(in.Priority),
		Category:     string(in.Category),
	}
	if in.IntervalMiles > 0 {
		out.IntervalMiles = lo.ToPtr(in.IntervalMiles)
	}
	return out
}

func MaintenanceIntervalsToAPI(intervals []model.MaintenanceInterval) *quotev1.MaintenanceIntervals {
	return &quotev1.MaintenanceIntervals{
		Intervals: lo.Map(intervals, func(in model.MaintenanceInterval, _ int) quotev1.MaintenanceInterval {
			return MaintenanceIntervalToAPI(in)
		}),
	}
}

func MaintenanceDueToAPI(d *model.MaintenanceDue) *quotev1.MaintenanceDue {
	return &quotev1.MaintenanceDue{
		Interval:   MaintenanceIntervalToAPI(d.Interval),
		DueDate:    d.DueDate,
		Overdue:    d.Overdue,
		DaysUntil:  d.DaysUntil,
		DueMileage: d.DueMileage,
	}
}
