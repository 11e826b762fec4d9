// Package population generates synthetic employee records bounded by a
// count and an inclusive age range.
package population

import (
	"math"
	"time"

	"workforce-engine/internal/clock"
	"workforce-engine/internal/model"
)

type Spec struct {
	Count int
	Age   model.AgeRange
}

// Generator is not safe for concurrent use: it owns its Source. Give each
// goroutine its own instance.
type Generator struct {
	clock clock.Clock
	rng   Source
}

func NewGenerator(c clock.Clock, rng Source) *Generator {
	return &Generator{clock: c, rng: rng}
}

// Generate returns exactly spec.Count employees in generation order.
// A count of zero or less yields an empty, non-nil slice.
func (g *Generator) Generate(spec Spec) []model.Employee {
	if spec.Count <= 0 {
		return []model.Employee{}
	}

	oldest, youngest := BirthWindow(g.clock.Now(), spec.Age)

	employees := make([]model.Employee, 0, spec.Count)
	for range spec.Count {
		employees = append(employees, g.employee(oldest, youngest))
	}
	return employees
}

func (g *Generator) employee(oldest, youngest int64) model.Employee {
	gender := model.GenderMale
	if g.rng.IntN(2) == 1 {
		gender = model.GenderFemale
	}
	lex := lexicons[gender]

	return model.Employee{
		Gender:    gender,
		Name:      lex.Names[g.rng.IntN(LexiconSize)],
		Surname:   lex.Surnames[g.rng.IntN(LexiconSize)],
		Workload:  model.Workloads[g.rng.IntN(len(model.Workloads))],
		BirthDate: model.NewTimestamp(time.UnixMilli(g.birthMilli(oldest, youngest))),
	}
}

func (g *Generator) birthMilli(oldest, youngest int64) int64 {
	if oldest > youngest {
		return youngest
	}
	return oldest + g.rng.Int64N(youngest-oldest+1)
}

// BirthWindow returns the inclusive range of Unix milliseconds a birth
// instant may take so that floor(age) at now lies in [age.Min, age.Max].
// Fractional bounds shrink to the integer ages they contain: [18.5, 20.5]
// allows floored ages 19 and 20. A range holding no integer age yields
// oldest > youngest.
//
// The oldest bound sits one millisecond after the instant whose floored age
// would be floor(Max)+1; taking now-Max*year instead lets ages round up past Max.
func BirthWindow(now time.Time, age model.AgeRange) (oldest, youngest int64) {
	nowMs := now.UnixMilli()
	yearMs := clock.YearLength.Milliseconds()

	oldest = nowMs - (int64(math.Floor(age.Max))+1)*yearMs + 1
	youngest = nowMs - int64(math.Ceil(age.Min))*yearMs
	return oldest, youngest
}
