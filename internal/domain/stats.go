package domain

// Stats is a derived view: one count per lifecycle status plus a total.
// Computed fresh on every list request, never persisted.
type Stats struct {
	Total        int `json:"total"`
	Applied      int `json:"applied"`
	Interviewing int `json:"interviewing"`
	Offer        int `json:"offer"`
	Rejected     int `json:"rejected"`
	Accepted     int `json:"accepted"`
}

// ComputeStats counts the applications it is given by status. Pure function:
// the totals always describe the input list, whatever filter produced it.
func ComputeStats(apps []Application) Stats {
	stats := Stats{Total: len(apps)}
	for _, app := range apps {
		switch app.Status {
		case ApplicationStatusApplied:
			stats.Applied++
		case ApplicationStatusInterviewing:
			stats.Interviewing++
		case ApplicationStatusOffer:
			stats.Offer++
		case ApplicationStatusRejected:
			stats.Rejected++
		case ApplicationStatusAccepted:
			stats.Accepted++
		}
	}
	return stats
}
