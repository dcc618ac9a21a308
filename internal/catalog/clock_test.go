package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	for value, expected := range map[string]int{
		"00:00": 0,
		"08:00": 8 * 60,
		"8:30":  8*60 + 30,
		"23:59": 23*60 + 59,
	} {
		minutes, err := ParseClock(value)
		assert.NoError(t, err)
		assert.Equal(t, expected, minutes)
	}

	for _, value := range []string{"", "8", "24:00", "08:60", "ab:cd"} {
		_, err := ParseClock(value)
		assert.Error(t, err, value)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "08:00", FormatClock(8*60))
	assert.Equal(t, "17:45", FormatClock(17*60+45))

	// Round trip.
	minutes, err := ParseClock(FormatClock(13*60 + 5))
	assert.NoError(t, err)
	assert.Equal(t, 13*60+5, minutes)
}
