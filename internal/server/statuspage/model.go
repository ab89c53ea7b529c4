// Package statuspage proxies the upstream platform status summary and caches
// the normalized result for a short time.
package statuspage

// Mapped status values.
const (
	StatusLive          = "live"
	StatusDegraded      = "degraded"
	StatusPartialOutage = "partial_outage"
	StatusDown          = "down"
	StatusUnknown       = "unknown"
)

// ComponentMajorOutage is the upstream component status that escalates a
// live or degraded page.
const ComponentMajorOutage = "major_outage"

// Overall is the upstream page-level indicator.
type Overall struct {
	Indicator   string `json:"indicator"`
	Description string `json:"description"`
}

type Component struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type Incident struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	StartedAt string `json:"started_at"`
	URL       string `json:"url,omitempty"`
}

// NormalizedStatus is the payload served to clients.
type NormalizedStatus struct {
	OK           bool        `json:"ok"`
	Overall      Overall     `json:"overall"`
	MappedStatus string      `json:"mappedStatus"`
	Components   []Component `json:"components"`
	Incidents    []Incident  `json:"incidents"`
}

// Fallback is served whenever the upstream cannot be read.
func Fallback() NormalizedStatus {
	return NormalizedStatus{
		OK: false,
		Overall: Overall{
			Indicator:   StatusUnknown,
			Description: "Status unavailable",
		},
		MappedStatus: StatusUnknown,
		Components:   []Component{},
		Incidents:    []Incident{},
	}
}

var indicatorStatus = map[string]string{
	"none":     StatusLive,
	"minor":    StatusDegraded,
	"major":    StatusPartialOutage,
	"critical": StatusDown,
}

// MapIndicator translates an upstream indicator into a mapped status.
// Unknown indicators, including "failure", map to StatusUnknown.
func MapIndicator(indicator string) string {
	if s, ok := indicatorStatus[indicator]; ok {
		return s
	}
	return StatusUnknown
}

// Escalate raises live or degraded to partial_outage when any component is
// in a major outage. Other statuses are returned unchanged.
func Escalate(mapped string, components []Component) string {
	if mapped != StatusLive && mapped != StatusDegraded {
		return mapped
	}
	for _, c := range components {
		if c.Status == ComponentMajorOutage {
			return StatusPartialOutage
		}
	}
	return mapped
}
