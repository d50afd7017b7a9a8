package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"monday maps to itself", time.Date(2024, 1, 8, 10, 0, 0, 0, Location), "2024-01-08"},
		{"wednesday maps back to monday", time.Date(2024, 1, 10, 23, 59, 0, 0, Location), "2024-01-08"},
		{"sunday maps back six days", time.Date(2024, 1, 14, 0, 1, 0, 0, Location), "2024-01-08"},
		{"across month boundary", time.Date(2024, 2, 1, 12, 0, 0, 0, Location), "2024-01-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStart(tt.date))
		})
	}
}

func TestDateAndStamp(t *testing.T) {
	at := time.Date(2024, 1, 8, 7, 5, 9, 0, Location)
	assert.Equal(t, "2024-01-08", Date(at))
	assert.Equal(t, "07:05", Stamp(at))
}

func TestNowUsesFixedOffset(t *testing.T) {
	_, offset := Now().Zone()
	assert.Equal(t, 3*60*60, offset)
}
