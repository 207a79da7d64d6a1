// Package quotev1 holds the JSON wire types of the /api/v1 HTTP surface.
package quotev1

import "time"

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

type Vehicle struct {
	Make    string `json:"make"`
	Model   string `json:"model"`
	Year    int    `json:"year"`
	Mileage int    `json:"mileage,omitempty"`
	Type    string `json:"type,omitempty"`
}

type CostRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type Diagnosis struct {
	Confidence      string     `json:"confidence"`
	DiagnosticSteps []string   `json:"diagnostic_steps"`
	UrgencyLevel    string     `json:"urgency_level"`
	EstimatedCost   *CostRange `json:"estimated_cost,omitempty"`
	LikelyCauses    []string   `json:"likely_causes"`
}

type CreateQuoteRequest struct {
	ServiceRequestID string     `json:"service_request_id"`
	ServiceType      string     `json:"service_type"`
	Urgency          string     `json:"urgency"`
	Description      string     `json:"description"`
	SelectedParts    []string   `json:"selected_parts,omitempty"`
	CustomLaborHours *float64   `json:"custom_labor_hours,omitempty"`
	DiscountPercent  float64    `json:"discount_percent,omitempty"`
	AIDiagnosis      *Diagnosis `json:"ai_diagnosis,omitempty"`
	Vehicle          *Vehicle   `json:"vehicle,omitempty"`
	Location         *Location  `json:"location,omitempty"`
}

type Quote struct {
	ID                string     `json:"id"`
	ServiceRequestID  string     `json:"service_request_id"`
	ServiceType       string     `json:"service_type"`
	Urgency           string     `json:"urgency"`
	Description       string     `json:"description"`
	LaborCost         float64    `json:"labor_cost"`
	PartsCost         float64    `json:"parts_cost"`
	TravelFee         float64    `json:"travel_fee"`
	TotalCost         float64    `json:"total_cost"`
	EstimatedDuration float64    `json:"estimated_duration"`
	ValidUntil        time.Time  `json:"valid_until"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}

type QuoteList struct {
	Quotes []Quote `json:"quotes"`
}

type UpdateQuoteStatusRequest struct {
	Status string `json:"status"`
}

type LiveEstimateRequest struct {
	ServiceType   string    `json:"service_type"`
	Urgency       string    `json:"urgency"`
	SelectedParts []string  `json:"selected_parts,omitempty"`
	Vehicle       *Vehicle  `json:"vehicle,omitempty"`
	Location      *Location `json:"location,omitempty"`
}

type LiveBreakdown struct {
	Labor             float64 `json:"labor"`
	Parts             float64 `json:"parts"`
	Travel            float64 `json:"travel"`
	UrgencyMultiplier float64 `json:"urgency_multiplier"`
}

type LiveEstimate struct {
	Min       float64       `json:"min"`
	Max       float64       `json:"max"`
	Breakdown LiveBreakdown `json:"breakdown"`
}

type PartEstimate struct {
	PartName       string  `json:"part_name"`
	EstimatedPrice float64 `json:"estimated_price"`
	Confidence     string  `json:"confidence"`
	Source         string  `json:"source"`
	Availability   string  `json:"availability"`
}

type PartEstimatesRequest struct {
	VehicleType string   `json:"vehicle_type,omitempty"`
	PartNames   []string `json:"part_names"`
}

type PartEstimates struct {
	Estimates []PartEstimate `json:"estimates"`
	Total     float64        `json:"total"`
}

type MaintenanceInterval struct {
	ServiceType   string `json:"service_type"`
	IntervalDays  int    `json:"interval_days"`
	IntervalMiles *int   `json:"interval_miles,omitempty"`
	Description   string `json:"description"`
	Priority      string `json:"priority"`
	Category      string `json:"category"`
}

type MaintenanceIntervals struct {
	Intervals []MaintenanceInterval `json:"intervals"`
}

type MaintenanceDue struct {
	Interval   MaintenanceInterval `json:"interval"`
	DueDate    time.Time           `json:"due_date"`
	Overdue    bool                `json:"overdue"`
	DaysUntil  int                 `json:"days_until"`
	DueMileage *int                `json:"due_mileage,omitempty"`
}
