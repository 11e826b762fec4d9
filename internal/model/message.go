package model

type Message struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

const (
	CodeInvalidCount    = "INVALID_COUNT"
	CodeInvalidAgeRange = "INVALID_AGE_RANGE"
	CodeEmptyPopulation = "EMPTY_POPULATION"
)

// HasCritical reports whether any message blocks a run.
func HasCritical(msgs []Message) bool {
	for _, m := range msgs {
		if m.Level == LevelCritical {
			return true
		}
	}
	return false
}
