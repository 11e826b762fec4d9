package validation

import (
	"math"
	"testing"

	"workforce-engine/internal/model"
)

func request(count int, lo, hi float64) *model.RunRequest {
	return &model.RunRequest{Count: count, Age: model.AgeRange{Min: lo, Max: hi}}
}

func TestValidateAcceptsValidRequest(t *testing.T) {
	msgs := New(DefaultMaxCount).Validate(request(100, 18, 60))
	if len(msgs) != 0 {
		t.Fatalf("expected no messages, got %+v", msgs)
	}
}

func TestValidateCriticalCases(t *testing.T) {
	tests := []struct {
		name string
		req  *model.RunRequest
		code string
	}{
		{"negative count", request(-1, 18, 60), model.CodeInvalidCount},
		{"count over limit", request(DefaultMaxCount+1, 18, 60), model.CodeInvalidCount},
		{"inverted range", request(5, 60, 18), model.CodeInvalidAgeRange},
		{"negative min", request(5, -1, 18), model.CodeInvalidAgeRange},
		{"max over limit", request(5, 18, MaxAge+1), model.CodeInvalidAgeRange},
		{"nan bound", request(5, math.NaN(), 18), model.CodeInvalidAgeRange},
		{"infinite bound", request(5, 18, math.Inf(1)), model.CodeInvalidAgeRange},
		{"no whole age", request(5, 0.2, 0.9), model.CodeInvalidAgeRange},
		{"no whole age above zero", request(5, 18.5, 18.7), model.CodeInvalidAgeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs := New(DefaultMaxCount).Validate(tt.req)
			if len(msgs) != 1 {
				t.Fatalf("expected 1 message, got %d: %+v", len(msgs), msgs)
			}
			if msgs[0].Level != model.LevelCritical {
				t.Fatalf("expected CRITICAL, got %s", msgs[0].Level)
			}
			if msgs[0].Code != tt.code {
				t.Fatalf("expected %s, got %s", tt.code, msgs[0].Code)
			}
		})
	}
}

func TestValidateAcceptsFractionalRangeWithWholeAge(t *testing.T) {
	for _, r := range [][2]float64{{18.5, 19.5}, {17.2, 20.9}, {30, 30}} {
		if msgs := New(DefaultMaxCount).Validate(request(5, r[0], r[1])); len(msgs) != 0 {
			t.Fatalf("range %v: expected no messages, got %+v", r, msgs)
		}
	}
}

func TestValidateZeroCountWarns(t *testing.T) {
	msgs := New(DefaultMaxCount).Validate(request(0, 18, 60))
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Level != model.LevelWarning || msgs[0].Code != model.CodeEmptyPopulation {
		t.Fatalf("expected EMPTY_POPULATION warning, got %+v", msgs[0])
	}
	if model.HasCritical(msgs) {
		t.Fatal("zero count must not block the run")
	}
}

func TestValidateReportsBothChecksInOrder(t *testing.T) {
	msgs := New(DefaultMaxCount).Validate(request(-3, 60, 18))
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Code != model.CodeInvalidCount || msgs[1].Code != model.CodeInvalidAgeRange {
		t.Fatalf("unexpected order: %s, %s", msgs[0].Code, msgs[1].Code)
	}
	if msgs[0].ID != 0 || msgs[1].ID != 1 {
		t.Fatalf("expected sequential ids, got %d, %d", msgs[0].ID, msgs[1].ID)
	}
}

func TestValidateUnlimitedCount(t *testing.T) {
	msgs := New(0).Validate(request(DefaultMaxCount*10, 18, 60))
	if len(msgs) != 0 {
		t.Fatalf("expected no messages with limit disabled, got %+v", msgs)
	}
}

func TestValidatorGet(t *testing.T) {
	v := New(10)
	c, ok := v.Get("count")
	if !ok {
		t.Fatal("expected count check to be registered")
	}
	if cc, isCount := c.(*CountCheck); !isCount || cc.MaxCount != 10 {
		t.Fatalf("unexpected count check %#v", c)
	}
	if _, ok := v.Get("unknown"); ok {
		t.Fatal("unexpected check found")
	}
}
