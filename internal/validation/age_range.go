package validation

import (
	"fmt"
	"math"

	"workforce-engine/internal/model"
)

// MaxAge keeps birth instants well inside time.Duration's ~292 year span.
const MaxAge = 150

type AgeRangeCheck struct {
	MaxAge float64
}

func (c *AgeRangeCheck) Validate(req *model.RunRequest) []model.Message {
	var msgs []model.Message
	age := req.Age

	if !isFinite(age.Min) || !isFinite(age.Max) {
		msgs = append(msgs, critical("Age bounds must be finite numbers"))
		return msgs
	}

	if age.Min < 0 {
		msgs = append(msgs, critical(fmt.Sprintf("Minimum age must not be negative, got %g", age.Min)))
		return msgs
	}

	if age.Max > c.MaxAge {
		msgs = append(msgs, critical(fmt.Sprintf("Maximum age must not exceed %g, got %g", c.MaxAge, age.Max)))
		return msgs
	}

	if age.Min > age.Max {
		msgs = append(msgs, critical(fmt.Sprintf("Age range is inverted: min %g is greater than max %g", age.Min, age.Max)))
		return msgs
	}

	// ages are floored, so the range must hold at least one whole year
	if math.Ceil(age.Min) > math.Floor(age.Max) {
		msgs = append(msgs, critical(fmt.Sprintf("Age range [%g, %g] contains no whole age", age.Min, age.Max)))
		return msgs
	}

	return msgs
}

func critical(text string) model.Message {
	return model.Message{
		Level:   model.LevelCritical,
		Code:    model.CodeInvalidAgeRange,
		Message: text,
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
