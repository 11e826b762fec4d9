package model

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRunRequest(t *testing.T) {
	req, err := DecodeRunRequest([]byte(`{"count": 5, "age": {"min": 18, "max": 60.5}}`))
	require.NoError(t, err)

	assert.Equal(t, 5, req.Count)
	assert.Equal(t, AgeRange{Min: 18, Max: 60.5}, req.Age)
	assert.Nil(t, req.Seed)
}

func TestDecodeRunRequestIntegralCountForms(t *testing.T) {
	tests := map[string]int{
		`{"count": 5.0, "age": {"min": 18, "max": 60}}`:  5,
		`{"count": 1e2, "age": {"min": 18, "max": 60}}`:  100,
		`{"count": 0.0, "age": {"min": 18, "max": 60}}`:  0,
		`{"count": -3.0, "age": {"min": 18, "max": 60}}`: -3,
	}

	for body, want := range tests {
		req, err := DecodeRunRequest([]byte(body))
		require.NoError(t, err, body)
		assert.Equal(t, want, req.Count, body)
	}
}

func TestDecodeRunRequestSeed(t *testing.T) {
	req, err := DecodeRunRequest([]byte(`{"count": 1, "age": {"min": 30, "max": 30}, "seed": 7}`))
	require.NoError(t, err)
	require.NotNil(t, req.Seed)
	assert.Equal(t, uint64(7), *req.Seed)
}

func TestDecodeRunRequestErrors(t *testing.T) {
	tests := map[string]string{
		"malformed":        `{"count":`,
		"fractional count": `{"count": 2.5, "age": {"min": 18, "max": 60}}`,
		"string count":     `{"count": "5", "age": {"min": 18, "max": 60}}`,
		"huge count":       `{"count": 1e300, "age": {"min": 18, "max": 60}}`,
		"missing count":    `{"age": {"min": 18, "max": 60}}`,
		"missing age":      `{"count": 5}`,
		"missing max":      `{"count": 5, "age": {"min": 18}}`,
		"string bound":     `{"count": 5, "age": {"min": "18", "max": 60}}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeRunRequest([]byte(body))
			assert.Error(t, err)
		})
	}
}

func TestDecodeRunRequestFractionalCountMessage(t *testing.T) {
	_, err := DecodeRunRequest([]byte(`{"count": 2.5, "age": {"min": 18, "max": 60}}`))
	assert.ErrorContains(t, err, "count must be an integer")
}

func TestEmployeeJSON(t *testing.T) {
	e := Employee{
		Gender:    GenderFemale,
		BirthDate: NewTimestamp(time.Date(1993, 8, 7, 10, 4, 5, 678_900_000, time.FixedZone("CEST", 2*3600))),
		Name:      "Jana",
		Surname:   "Nováková",
		Workload:  Workload30,
	}

	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"gender":"female","birthdate":"1993-08-07T08:04:05.678Z","name":"Jana","surname":"Nováková","workload":30}`,
		string(data))

	var back Employee
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "1993-08-07T08:04:05.678Z", back.BirthDate.String())
	assert.Equal(t, Workload30, back.Workload)
}

func TestSummaryJSONKeys(t *testing.T) {
	data, err := json.Marshal(Summary{SortedByWorkload: []Employee{}})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"total": 0, "workload10": 0, "workload20": 0, "workload30": 0, "workload40": 0,
		"averageAge": 0, "minAge": 0, "maxAge": 0, "medianAge": 0,
		"medianWorkload": 0, "averageWomenWorkload": 0, "sortedByWorkload": []
	}`, string(data))
}

func TestSummaryWorkloadCount(t *testing.T) {
	s := Summary{Workload10: 1, Workload20: 2, Workload30: 3, Workload40: 4}

	for i, w := range Workloads {
		assert.Equal(t, i+1, s.WorkloadCount(w))
	}
	assert.Zero(t, s.WorkloadCount(Workload(15)))
}

func TestHasCritical(t *testing.T) {
	assert.False(t, HasCritical(nil))
	assert.False(t, HasCritical([]Message{{Level: LevelWarning}}))
	assert.True(t, HasCritical([]Message{{Level: LevelWarning}, {Level: LevelCritical}}))
}
