// Package validation checks a run request before any employee is generated.
// Each check reports leveled messages; a CRITICAL message blocks the run.
package validation

import "workforce-engine/internal/model"

// Check inspects one aspect of a request. It returns at most one critical
// message: later problems are often consequences of the first.
type Check interface {
	Validate(req *model.RunRequest) []model.Message
}

// DefaultMaxCount caps a single population.
const DefaultMaxCount = 100_000

type namedCheck struct {
	name  string
	check Check
}

// Validator runs its checks in registration order.
type Validator struct {
	checks []namedCheck
}

// New returns the standard validator: count first, then age range.
// maxCount <= 0 disables the upper count limit.
func New(maxCount int) *Validator {
	v := &Validator{}
	v.Register("count", &CountCheck{MaxCount: maxCount})
	v.Register("age_range", &AgeRangeCheck{MaxAge: MaxAge})
	return v
}

func (v *Validator) Register(name string, c Check) {
	v.checks = append(v.checks, namedCheck{name: name, check: c})
}

func (v *Validator) Get(name string) (Check, bool) {
	for _, nc := range v.checks {
		if nc.name == name {
			return nc.check, true
		}
	}
	return nil, false
}

// Validate runs every check and numbers the messages in emission order.
func (v *Validator) Validate(req *model.RunRequest) []model.Message {
	var all []model.Message
	for _, nc := range v.checks {
		for _, m := range nc.check.Validate(req) {
			m.ID = len(all)
			all = append(all, m)
		}
	}
	return all
}
