package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDate_MarshalJSON(t *testing.T) {
	d := NewDate(2024, time.March, 5)

	out, err := json.Marshal(d)

	assert.NoError(t, err)
	assert.Equal(t, `"2024-03-05"`, string(out))
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  Date
		expectErr bool
	}{
		{name: "valid date", input: `"2024-03-05"`, expected: NewDate(2024, time.March, 5)},
		{name: "null leaves the zero value", input: `null`, expected: Date{}},
		{name: "wrong layout", input: `"05/03/2024"`, expectErr: true},
		{name: "timestamp form is rejected", input: `"2024-03-05T10:00:00Z"`, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.True(t, d.Equal(tt.expected.Time), "got %v, want %v", d, tt.expected)
			}
		})
	}
}

func TestDate_RoundTripThroughStruct(t *testing.T) {
	in := Record{ID: 1, Date: NewDate(2024, time.December, 31), NumberOfPushups: 40}

	out, err := json.Marshal(in)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"date":"2024-12-31","numberOfPushups":40,"user_id":null}`, string(out))

	var back Record
	assert.NoError(t, json.Unmarshal(out, &back))
	assert.True(t, back.Date.Equal(in.Date.Time))
}

func TestDate_Scan(t *testing.T) {
	expected := NewDate(2024, time.March, 5)

	tests := []struct {
		name  string
		value interface{}
	}{
		{name: "time.Time", value: expected.Time},
		{name: "date string", value: "2024-03-05"},
		{name: "byte slice", value: []byte("2024-03-05")},
		{name: "sqlite timestamp form", value: "2024-03-05 00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			assert.NoError(t, d.Scan(tt.value))
			assert.True(t, d.Equal(expected.Time), "got %v, want %v", d, expected)
		})
	}

	t.Run("unsupported type", func(t *testing.T) {
		var d Date
		assert.Error(t, d.Scan(42))
	})
}

func TestDate_Value(t *testing.T) {
	v, err := NewDate(2024, time.March, 5).Value()

	assert.NoError(t, err)
	assert.Equal(t, "2024-03-05", v)
}
