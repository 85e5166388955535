package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDateOfBirth(t *testing.T) {
	t.Run("Blank Means Absent", func(t *testing.T) {
		result, err := NormalizeDateOfBirth("")
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("Plain Date Becomes Midnight UTC", func(t *testing.T) {
		result, err := NormalizeDateOfBirth("1990-01-01")
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC), *result)
	})

	t.Run("Full Timestamp Collapses To Its Day", func(t *testing.T) {
		result, err := NormalizeDateOfBirth("1990-01-01T15:30:00+07:00")
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC), *result)
	})

	t.Run("Garbage Is Rejected", func(t *testing.T) {
		_, err := NormalizeDateOfBirth("not-a-date")
		assert.Error(t, err)
	})
}

func TestParseOptionalTimestamp(t *testing.T) {
	t.Run("Nil And Blank Mean Absent", func(t *testing.T) {
		result, err := ParseOptionalTimestamp(nil)
		require.NoError(t, err)
		assert.Nil(t, result)

		blank := ""
		result, err = ParseOptionalTimestamp(&blank)
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("RFC3339 Converted To UTC", func(t *testing.T) {
		value := "2024-06-15T10:00:00+07:00"
		result, err := ParseOptionalTimestamp(&value)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, time.Date(2024, time.June, 15, 3, 0, 0, 0, time.UTC), *result)
	})

	t.Run("Plain Date Accepted", func(t *testing.T) {
		value := "2024-06-15"
		result, err := ParseOptionalTimestamp(&value)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC), *result)
	})
}

func TestOptionalString(t *testing.T) {
	assert.Nil(t, OptionalString(""))

	value := OptionalString("0812-0000-0000")
	require.NotNil(t, value)
	assert.Equal(t, "0812-0000-0000", *value)
}
