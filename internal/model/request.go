package model

type RunRequest struct {
	Count int      `json:"count"`
	Age   AgeRange `json:"age"`
	Seed  *uint64  `json:"seed,omitempty"`
}

// AgeRange bounds employee ages in years, both ends inclusive.
type AgeRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
