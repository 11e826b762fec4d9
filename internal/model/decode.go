package model

import (
	"errors"
	"fmt"
	"math"

	json "github.com/goccy/go-json"
)

type runRequestBody struct {
	Count *float64 `json:"count"`
	Age   *ageBody `json:"age"`
	Seed  *uint64  `json:"seed"`
}

type ageBody struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// maxExactCount is the largest count a JSON number carries without loss.
const maxExactCount = 1 << 53

// DecodeRunRequest parses the JSON input DTO. count, age.min and age.max
// are required. count may be written in any JSON number form (5, 5.0, 1e2)
// but must hold an integer value.
func DecodeRunRequest(data []byte) (*RunRequest, error) {
	var body runRequestBody
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("decode run request: %w", err)
	}

	var missing []error
	if body.Count == nil {
		missing = append(missing, errors.New("count is required"))
	}
	if body.Age == nil || body.Age.Min == nil {
		missing = append(missing, errors.New("age.min is required"))
	}
	if body.Age == nil || body.Age.Max == nil {
		missing = append(missing, errors.New("age.max is required"))
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("decode run request: %w", errors.Join(missing...))
	}

	count, err := wholeCount(*body.Count)
	if err != nil {
		return nil, fmt.Errorf("decode run request: %w", err)
	}

	return &RunRequest{
		Count: count,
		Age:   AgeRange{Min: *body.Age.Min, Max: *body.Age.Max},
		Seed:  body.Seed,
	}, nil
}

func wholeCount(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return 0, fmt.Errorf("count must be an integer, got %g", f)
	}
	if math.Abs(f) > maxExactCount {
		return 0, fmt.Errorf("count %g is out of range", f)
	}
	return int(f), nil
}
