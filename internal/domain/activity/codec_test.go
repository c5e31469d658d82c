package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakhaar/internal/core/apperror"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		name     string
		action   string
		wantDir  Direction
		wantQty  int64
		wantItem string
	}{
		{"inbound", "Geliyay: 10 Laptop", DirectionIn, 10, "Laptop"},
		{"outbound", "Bixiyay: 2 Chair", DirectionOut, 2, "Chair"},
		{"item name with spaces", "Geliyay: 5 Office Chair Deluxe", DirectionIn, 5, "Office Chair Deluxe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, qty, name, err := ParseAction(tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDir, dir)
			assert.Equal(t, tt.wantQty, qty)
			assert.Equal(t, tt.wantItem, name)
		})
	}
}

func TestParseActionErrors(t *testing.T) {
	tests := []struct {
		name   string
		action string
	}{
		{"missing separator", "Geliyay 10 Laptop"},
		{"unknown direction token", "Qaatay: 10 Laptop"},
		{"non-integer quantity", "Geliyay: ten Laptop"},
		{"missing item name", "Geliyay: 10"},
		{"empty string", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := ParseAction(tt.action)
			require.Error(t, err)
			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperror.CodeParse, appErr.Code)
		})
	}
}

func TestFormatActionRoundTrip(t *testing.T) {
	action := FormatAction(DirectionOut, 7, "Miis Weyn")
	assert.Equal(t, "Bixiyay: 7 Miis Weyn", action)

	dir, qty, name, err := ParseAction(action)
	require.NoError(t, err)
	assert.Equal(t, DirectionOut, dir)
	assert.Equal(t, int64(7), qty)
	assert.Equal(t, "Miis Weyn", name)
}

func TestFromLegacy(t *testing.T) {
	a := FromLegacy("01/06/2025", "Geliyay: 3 Buug", "Books", "Warehouse", "Salah Axmed", "", "")
	assert.True(t, a.Parsable())
	assert.Equal(t, DirectionIn, a.Direction)
	assert.Equal(t, int64(3), a.Quantity)
	assert.Equal(t, "Buug", a.ItemName)
	assert.Equal(t, StatusApproved, a.EffectiveStatus())

	// Malformed actions yield an unparsable record, not an error.
	bad := FromLegacy("01/06/2025", "garbage", "", "", "", "", StatusApproved)
	assert.False(t, bad.Parsable())
	assert.Equal(t, "01/06/2025", bad.Date)
}
