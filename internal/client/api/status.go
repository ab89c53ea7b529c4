package api

// PlatformStatus is the body returned by the status function.
type PlatformStatus struct {
	OK           bool              `json:"ok"`
	Overall      StatusOverall     `json:"overall"`
	MappedStatus string            `json:"mappedStatus"`
	Components   []StatusComponent `json:"components"`
	Incidents    []StatusIncident  `json:"incidents"`
}

type StatusOverall struct {
	Indicator   string `json:"indicator"`
	Description string `json:"description"`
}

type StatusComponent struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type StatusIncident struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	StartedAt string `json:"started_at"`
	URL       string `json:"url,omitempty"`
}
