package validation

import (
	"fmt"

	"workforce-engine/internal/model"
)

type CountCheck struct {
	MaxCount int
}

func (c *CountCheck) Validate(req *model.RunRequest) []model.Message {
	var msgs []model.Message

	if req.Count < 0 {
		msgs = append(msgs, model.Message{
			Level:   model.LevelCritical,
			Code:    model.CodeInvalidCount,
			Message: fmt.Sprintf("Count must be a positive integer, got %d", req.Count),
		})
		return msgs
	}

	if req.Count == 0 {
		msgs = append(msgs, model.Message{
			Level:   model.LevelWarning,
			Code:    model.CodeEmptyPopulation,
			Message: "Count is 0, the population will be empty",
		})
		return msgs
	}

	if c.MaxCount > 0 && req.Count > c.MaxCount {
		msgs = append(msgs, model.Message{
			Level:   model.LevelCritical,
			Code:    model.CodeInvalidCount,
			Message: fmt.Sprintf("Count %d exceeds the limit of %d", req.Count, c.MaxCount),
		})
		return msgs
	}

	return msgs
}
