// Package stats aggregates an employee population into a Summary.
//
// Ages are recomputed from birth instants against the aggregator's clock,
// so they describe the population at call time, not at generation time.
package stats

import (
	"math"
	"slices"

	"workforce-engine/internal/clock"
	"workforce-engine/internal/model"
)

type Aggregator struct {
	clock clock.Clock
}

func NewAggregator(c clock.Clock) *Aggregator {
	return &Aggregator{clock: c}
}

// Summarize computes the population statistics. The input is not modified.
// An empty population gives an all-zero Summary.
func (a *Aggregator) Summarize(employees []model.Employee) model.Summary {
	summary := model.Summary{
		Total:            len(employees),
		SortedByWorkload: SortByWorkload(employees),
	}
	if len(employees) == 0 {
		return summary
	}

	summary.Workload10, summary.Workload20, summary.Workload30, summary.Workload40 = countWorkloads(employees)

	now := a.clock.Now()
	ages := make([]float64, len(employees))
	floored := make([]float64, len(employees))
	workloads := make([]float64, len(employees))
	for i, e := range employees {
		ages[i] = clock.Age(e.BirthDate.Time, now)
		floored[i] = math.Floor(ages[i])
		workloads[i] = float64(e.Workload)
	}

	summary.AverageAge = RoundTenth(Average(ages))
	summary.MinAge = int(math.Floor(slices.Min(ages)))
	summary.MaxAge = int(math.Floor(slices.Max(ages)))
	summary.MedianAge = int(math.Floor(Median(floored)))
	summary.MedianWorkload = int(math.Round(Median(workloads)))
	summary.AverageWomenWorkload = averageWomenWorkload(employees)

	return summary
}

func countWorkloads(employees []model.Employee) (w10, w20, w30, w40 int) {
	for _, e := range employees {
		switch e.Workload {
		case model.Workload10:
			w10++
		case model.Workload20:
			w20++
		case model.Workload30:
			w30++
		case model.Workload40:
			w40++
		}
	}
	return w10, w20, w30, w40
}

func averageWomenWorkload(employees []model.Employee) float64 {
	var women []float64
	for _, e := range employees {
		if e.Gender == model.GenderFemale {
			women = append(women, float64(e.Workload))
		}
	}
	if len(women) == 0 {
		return 0
	}
	return RoundTenth(Average(women))
}

// SortByWorkload returns a copy ordered by ascending workload. Employees
// with equal workload keep their relative order.
func SortByWorkload(employees []model.Employee) []model.Employee {
	sorted := slices.Clone(employees)
	if sorted == nil {
		sorted = []model.Employee{}
	}
	slices.SortStableFunc(sorted, func(a, b model.Employee) int {
		return int(a.Workload) - int(b.Workload)
	})
	return sorted
}
