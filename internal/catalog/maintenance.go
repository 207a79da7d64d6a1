package catalog

import "github.com/you-humble/mobile-mechanic/internal/model"

const year = 365

var maintenanceIntervals = []model.MaintenanceInterval{
	{
		ServiceType:   model.ServiceOilChange,
		IntervalDays:  90,
		IntervalMiles: 3000,
		Description:   "Oil Change & Filter",
		Priority:      model.PriorityHigh,
		Category:      model.CategoryRoutine,
	},
	{
		ServiceType:   model.ServiceBrakeService,
		IntervalDays:  2 * year,
		IntervalMiles: 25000,
		Description:   "Brake Inspection & Service",
		Priority:      model.PriorityHigh,
		Category:      model.CategorySafety,
	},
	{
		ServiceType:   model.ServiceTireService,
		IntervalDays:  180,
		IntervalMiles: 6000,
		Description:   "Tire Rotation & Inspection",
		Priority:      model.PriorityMedium,
		Category:      model.CategoryRoutine,
	},
	{
		ServiceType:  model.ServiceBatteryService,
		IntervalDays: 3 * year,
		Description:  "Battery Test & Service",
		Priority:     model.PriorityMedium,
		Category:     model.CategoryPreventive,
	},
	{
		ServiceType:   model.ServiceEngineDiagnostic,
		IntervalDays:  year,
		IntervalMiles: 12000,
		Description:   "Engine Diagnostic Scan",
		Priority:      model.PriorityMedium,
		Category:      model.CategoryPreventive,
	},
	{
		ServiceType:   model.ServiceTransmission,
		IntervalDays:  2 * year,
		IntervalMiles: 30000,
		Description:   "Transmission Service",
		Priority:      model.PriorityHigh,
		Category:      model.CategoryPreventive,
	},
	{
		ServiceType:  model.ServiceACService,
		IntervalDays: year,
		Description:  "A/C System Service",
		Priority:     model.PriorityLow,
		Category:     model.CategoryRoutine,
	},
}

func MaintenanceIntervals() []model.MaintenanceInterval {
	out := make([]model.MaintenanceInterval, len(maintenanceIntervals))
	copy(out, maintenanceIntervals)
	return out
}

func MaintenanceInterval(st model.ServiceType) (model.MaintenanceInterval, bool) {
	for _, in := range maintenanceIntervals {
		if in.ServiceType == st {
			return in, true
		}
	}
	return model.MaintenanceInterval{}, false
}
