package types

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
)

func TestDate_JSONRoundTrip(t *testing.T) {
	d, err := ParseDate("2026-09-01")
	assert.NoError(t, err)

	raw, err := sonic.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"2026-09-01"`, string(raw))

	var back Date
	assert.NoError(t, sonic.Unmarshal(raw, &back))
	assert.Equal(t, d.String(), back.String())
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid date", input: `"2026-02-28"`, want: "2026-02-28"},
		{name: "null clears", input: `null`, want: "0001-01-01"},
		{name: "empty string clears", input: `""`, want: "0001-01-01"},
		{name: "rejects datetime", input: `"2026-02-28T10:00:00Z"`, wantErr: true},
		{name: "rejects slash format", input: `"28/02/2026"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestNewDate_DropsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	d := NewDate(time.Date(2026, 9, 1, 23, 45, 12, 0, loc))
	assert.Equal(t, "2026-09-01", d.String())
}

func TestDate_Scan(t *testing.T) {
	var d Date
	assert.NoError(t, d.Scan(time.Date(2026, 9, 1, 13, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-09-01", d.String())

	assert.NoError(t, d.Scan([]byte("2026-10-15")))
	assert.Equal(t, "2026-10-15", d.String())

	assert.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}
