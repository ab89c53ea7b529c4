package statuspage

type upstreamSummary struct {
	Status struct {
		Indicator   string `json:"indicator"`
		Description string `json:"description"`
	} `json:"status"`
	Components []struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Status string `json:"status"`
	} `json:"components"`
	Incidents []struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Status    string `json:"status"`
		StartedAt string `json:"started_at"`
		CreatedAt string `json:"created_at"`
		Shortlink string `json:"shortlink"`
	} `json:"incidents"`
}

// normalize converts the upstream summary. Components are passed through as
// listed, group components included.
func normalize(s upstreamSummary) NormalizedStatus {
	out := NormalizedStatus{
		OK: true,
		Overall: Overall{
			Indicator:   s.Status.Indicator,
			Description: s.Status.Description,
		},
		Components: make([]Component, 0, len(s.Components)),
		Incidents:  make([]Incident, 0, len(s.Incidents)),
	}

	for _, c := range s.Components {
		out.Components = append(out.Components, Component{ID: c.ID, Name: c.Name, Status: c.Status})
	}

	for _, i := range s.Incidents {
		started := i.StartedAt
		if started == "" {
			started = i.CreatedAt
		}
		out.Incidents = append(out.Incidents, Incident{
			ID:        i.ID,
			Name:      i.Name,
			Status:    i.Status,
			StartedAt: started,
			URL:       i.Shortlink,
		})
	}

	out.MappedStatus = Escalate(MapIndicator(s.Status.Indicator), out.Components)
	return out
}
