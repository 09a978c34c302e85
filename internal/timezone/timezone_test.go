package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFallback(t *testing.T) {
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Marte/Olympus"))
	assert.Equal(t, Location(DefaultTimezone).String(), Location("Marte/Olympus").String())
}

func TestDayRange(t *testing.T) {
	start, end := DayRange("2024-03-01", "2024-03-31")
	require.NotNil(t, start)
	require.NotNil(t, end)
	assert.Equal(t, 1, start.Day())
	assert.Equal(t, time.April, end.Month())
	assert.Equal(t, 1, end.Day())

	start, end = DayRange("ontem", "")
	assert.Nil(t, start)
	assert.Nil(t, end)
}
