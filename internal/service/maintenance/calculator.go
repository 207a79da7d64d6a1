package maintenance

import (
	"math"
	"time"

	"github.com/you-humble/mobile-mechanic/internal/catalog"
	"github.com/you-humble/mobile-mechanic/internal/model"
)

const secondsPerDay = 24 * 60 * 60

type Calculator struct {
	now func() time.Time
}

type Option func(*Calculator)

func WithClock(now func() time.Time) Option {
	return func(c *Calculator) { c.now = now }
}

func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DueDate reports false when no schedule is defined for the service type.
func (c *Calculator) DueDate(lastService time.Time, st model.ServiceType) (time.Time, bool) {
	in, ok := catalog.MaintenanceInterval(st)
	if !ok {
		return time.Time{}, false
	}
	return lastService.AddDate(0, 0, in.IntervalDays), true
}

func (c *Calculator) IsOverdue(lastService time.Time, st model.ServiceType) bool {
	due, ok := c.DueDate(lastService, st)
	if !ok {
		return false
	}
	return c.now().After(due)
}

// DaysUntil rounds partial days up, so a due date later today counts as one day away.
func (c *Calculator) DaysUntil(lastService time.Time, st model.ServiceType) (int, bool) {
	due, ok := c.DueDate(lastService, st)
	if !ok {
		return 0, false
	}
	return daysBetween(c.now(), due), true
}

func (c *Calculator) DueMileage(lastMileage int, st model.ServiceType) (int, bool) {
	in, ok := catalog.MaintenanceInterval(st)
	if !ok || in.IntervalMiles == 0 {
		return 0, false
	}
	return lastMileage + in.IntervalMiles, true
}

func (c *Calculator) Intervals() []model.MaintenanceInterval {
	return catalog.MaintenanceIntervals()
}

// Due combines the helpers into one snapshot evaluated against a single "now".
func (c *Calculator) Due(lastService time.Time, lastMileage *int, st model.ServiceType) (*model.MaintenanceDue, bool) {
	in, ok := catalog.MaintenanceInterval(st)
	if !ok {
		return nil, false
	}

	now := c.now()
	due := lastService.AddDate(0, 0, in.IntervalDays)

	res := &model.MaintenanceDue{
		Interval:  in,
		DueDate:   due,
		Overdue:   now.After(due),
		DaysUntil: daysBetween(now, due),
	}
	if lastMileage != nil && in.IntervalMiles > 0 {
		miles := *lastMileage + in.IntervalMiles
		res.DueMileage = &miles
	}
	return res, true
}

// daysBetween works on Unix seconds because time.Time.Sub saturates beyond about 292 years.
func daysBetween(from, to time.Time) int {
	secs := float64(to.Unix()-from.Unix()) + float64(to.Nanosecond()-from.Nanosecond())/1e9
	return int(math.Ceil(secs / secondsPerDay))
}
