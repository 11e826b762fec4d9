package model

import (
	"fmt"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Workload is the contracted number of hours per week.
type Workload int

const (
	Workload10 Workload = 10
	Workload20 Workload = 20
	Workload30 Workload = 30
	Workload40 Workload = 40
)

// Workloads lists every valid workload in ascending order.
var Workloads = []Workload{Workload10, Workload20, Workload30, Workload40}

type Employee struct {
	Gender    Gender    `json:"gender"`
	BirthDate Timestamp `json:"birthdate"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Workload  Workload  `json:"workload"`
}

// TimestampLayout is ISO-8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp is an absolute instant serialized with TimestampLayout.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

func (t Timestamp) String() string {
	return t.UTC().Format(TimestampLayout)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		t.Time = time.Time{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("timestamp: expected JSON string, got %s", s)
	}
	parsed, err := time.Parse(time.RFC3339Nano, s[1:len(s)-1])
	if err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	t.Time = parsed.UTC()
	return nil
}
