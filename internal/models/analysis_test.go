package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestTimestamp_UnmarshalFormats(t *testing.T) {
	want := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	inputs := []string{
		`"2024-05-01T09:30:00Z"`,
		`"Wed, 01 May 2024 09:30:00 GMT"`,
		`"2024-05-01T09:30:00"`,
		`"2024-05-01T09:30:00.000000"`,
		`"2024-05-01 09:30:00"`,
	}
	for _, in := range inputs {
		var ts Timestamp
		err := json.Unmarshal([]byte(in), &ts)
		assert.Equal(t, nil, err)
		assert.Equal(t, true, ts.Equal(want))
	}

	var empty Timestamp
	assert.Equal(t, nil, json.Unmarshal([]byte(`""`), &empty))
	assert.Equal(t, true, empty.IsZero())

	var bad Timestamp
	assert.NotEqual(t, nil, json.Unmarshal([]byte(`"yesterday"`), &bad))
	assert.NotEqual(t, nil, json.Unmarshal([]byte(`12345`), &bad))
}

func TestPublicHistory_FakePercent(t *testing.T) {
	assert.Equal(t, 0, PublicHistory{}.FakePercent())
	assert.Equal(t, 33, PublicHistory{Stats: map[string]int{"FAKE": 1, "REAL": 2}}.FakePercent())
	assert.Equal(t, 67, PublicHistory{Stats: map[string]int{"FAKE": 2, "REAL": 1}}.FakePercent())
	assert.Equal(t, 100, PublicHistory{Stats: map[string]int{"FAKE": 5}}.FakePercent())
}

func TestParseLabel(t *testing.T) {
	l, ok := ParseLabel(" fake ")
	assert.Equal(t, true, ok)
	assert.Equal(t, LabelFake, l)

	_, ok = ParseLabel("unsure")
	assert.Equal(t, false, ok)
}

func TestSession_RoleNeedsToken(t *testing.T) {
	assert.Equal(t, false, Session{Role: RoleAdmin}.IsAdmin())
	assert.Equal(t, true, Session{Token: "t", Role: RoleAdmin}.IsAdmin())
	assert.Equal(t, false, Session{Token: "t", Role: RoleUser}.IsAdmin())
}
