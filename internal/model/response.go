package model

type Summary struct {
	Total                int        `json:"total"`
	Workload10           int        `json:"workload10"`
	Workload20           int        `json:"workload20"`
	Workload30           int        `json:"workload30"`
	Workload40           int        `json:"workload40"`
	AverageAge           float64    `json:"averageAge"`
	MinAge               int        `json:"minAge"`
	MaxAge               int        `json:"maxAge"`
	MedianAge            int        `json:"medianAge"`
	MedianWorkload       int        `json:"medianWorkload"`
	AverageWomenWorkload float64    `json:"averageWomenWorkload"`
	SortedByWorkload     []Employee `json:"sortedByWorkload"`
}

// WorkloadCount returns the bucket count for w, or 0 for a workload outside the enum.
func (s *Summary) WorkloadCount(w Workload) int {
	switch w {
	case Workload10:
		return s.Workload10
	case Workload20:
		return s.Workload20
	case Workload30:
		return s.Workload30
	case Workload40:
		return s.Workload40
	}
	return 0
}

type ErrorResponse struct {
	Status   int       `json:"status"`
	Code     string    `json:"code,omitempty"`
	Message  string    `json:"message"`
	Messages []Message `json:"messages,omitempty"`
}
