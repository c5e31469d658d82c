package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakhaar/internal/core/apperror"
	"bakhaar/internal/domain/activity"
)

func TestToDraftStructured(t *testing.T) {
	req := SubmitActivityRequest{
		Direction: "Bixiyay",
		Quantity:  2,
		ItemName:  "Chair",
		Recipient: "Office",
	}

	d, err := req.ToDraft()
	require.NoError(t, err)
	assert.Equal(t, activity.DirectionOut, d.Direction)
	assert.Equal(t, int64(2), d.Quantity)
	assert.Equal(t, "Chair", d.ItemName)
}

func TestToDraftLegacyAction(t *testing.T) {
	req := SubmitActivityRequest{
		Action:    "Geliyay: 10 Office Chair",
		Recipient: "Warehouse",
	}

	d, err := req.ToDraft()
	require.NoError(t, err)
	assert.Equal(t, activity.DirectionIn, d.Direction)
	assert.Equal(t, int64(10), d.Quantity)
	assert.Equal(t, "Office Chair", d.ItemName)
}

func TestToDraftLegacyActionErrors(t *testing.T) {
	// Malformed action string surfaces a parse error.
	_, err := SubmitActivityRequest{Action: "Qaatay: 1 X"}.ToDraft()
	require.Error(t, err)
	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, apperror.CodeParse, appErr.Code)

	// Mixing legacy and structured fields is rejected.
	_, err = SubmitActivityRequest{Action: "Geliyay: 1 X", Quantity: 1}.ToDraft()
	require.Error(t, err)
	appErr, _ = apperror.AsAppError(err)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}
