package ports

import (
	"time"

	"github.com/uongozi/uongozi/internal/domain"
)

// RegionDirectory is the static geographic reference dataset, consumed
// as an opaque lookup table. The county, constituency and ward lists it
// returns drive the cascading selectors on the registration and leader
// creation forms.
type RegionDirectory interface {
	// Counties returns every county name in dataset order.
	Counties() []string

	// Constituencies returns the constituencies of a county, or an
	// empty slice for an unknown county.
	Constituencies(county string) []string

	// Wards returns the wards of a constituency, or an empty slice
	// when either parent is unknown.
	Wards(county, constituency string) []string

	// Validate checks that the triple exists in the dataset, honoring
	// the progressive requirement: a constituency is only meaningful
	// under its county, a ward only under its constituency.
	Validate(geo domain.Geography) error
}

// CooldownRejection is implemented by transport errors that carry the
// backend's next-eligible date for a rejected review submission. The
// application layer detects it with errors.As without depending on the
// transport package.
type CooldownRejection interface {
	error

	// NextEligibleAt returns the earliest date the backend will accept
	// a new review for the pair.
	NextEligibleAt() time.Time
}

// MetricsCollector defines the interface for collecting operational
// metrics. Implementations should integrate with observability
// platforms like Prometheus or custom monitoring solutions.
type MetricsCollector interface {
	// RecordLatency records the execution time of an operation.
	// The labels map provides additional context for the metric.
	RecordLatency(operation string, duration time.Duration, labels map[string]string)

	// RecordCounter increments a counter metric.
	RecordCounter(metric string, value float64, labels map[string]string)

	// RecordGauge sets the current value of a gauge metric.
	RecordGauge(metric string, value float64, labels map[string]string)

	// RecordHistogram records a value in a histogram.
	RecordHistogram(metric string, value float64, labels map[string]string)
}

// Clock supplies the current time. The application uses it instead of
// time.Now directly so cooldown arithmetic is testable.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }
