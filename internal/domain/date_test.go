package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_BothFormats(t *testing.T) {
	canonical, err := ParseDate("2024-01-15")
	require.NoError(t, err)

	legacy, err := ParseDate("15.01.2024")
	require.NoError(t, err)

	assert.True(t, canonical.Equal(legacy))
	assert.Equal(t, "2024-01-15", legacy.String())
}

func TestParseDate_Invalid(t *testing.T) {
	for _, s := range []string{"", "2024/01/15", "15-01-2024", "abc"} {
		_, err := ParseDate(s)
		assert.ErrorIs(t, err, ErrInvalidDate, s)
	}
}

func TestDate_At(t *testing.T) {
	d := NewDate(2024, time.January, 15)

	assert.Equal(t, time.Date(2024, time.January, 15, 14, 0, 0, 0, time.Local), d.At(14, 0))
	// Час за пределами суток нормализуется на следующий день
	assert.Equal(t, time.Date(2024, time.January, 16, 7, 0, 0, 0, time.Local), d.At(31, 0))
	assert.Equal(t, time.Date(2024, time.January, 16, 0, 0, 0, 0, time.Local), d.At(24, 0))
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2024, time.January, 15)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-15"`, string(data))

	var fromLegacy Date
	require.NoError(t, json.Unmarshal([]byte(`"15.01.2024"`), &fromLegacy))
	assert.True(t, d.Equal(fromLegacy))
}
