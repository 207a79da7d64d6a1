package model

import "time"

type (
	MaintenancePriority string
	MaintenanceCategory string
)

const (
	PriorityLow    MaintenancePriority = "low"
	PriorityMedium MaintenancePriority = "medium"
	PriorityHigh   MaintenancePriority = "high"
)

const (
	CategoryRoutine    MaintenanceCategory = "routine"
	CategorySafety     MaintenanceCategory = "safety"
	CategoryPreventive MaintenanceCategory = "preventive"
)

type MaintenanceInterval struct {
	ServiceType  ServiceType
	IntervalDays int
	// Zero when the service has no mileage schedule.
	IntervalMiles int
	Description   string
	Priority      MaintenancePriority
	Category      MaintenanceCategory
}

type MaintenanceDue struct {
	Interval  MaintenanceInterval
	DueDate   time.Time
	Overdue   bool
	DaysUntil int
	// Set only when the last mileage is known and the service has a mileage schedule.
	DueMileage *int
}
