package commands_test

import (
	"testing"
	"time"

	"shop/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplyTrackingUpdateCommand_Success(t *testing.T) {
	occurredAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	cmd, err := commands.NewApplyTrackingUpdateCommand(
		"TRK-42", "out_for_delivery", "Courier on the way", "Springfield", occurredAt,
	)
	require.NoError(t, err)
	assert.Equal(t, "TRK-42", cmd.TrackingNumber())
	assert.Equal(t, "out_for_delivery", cmd.VendorStatus())
	assert.Equal(t, "Courier on the way", cmd.Message())
	assert.Equal(t, "Springfield", cmd.Location())
	assert.Equal(t, occurredAt, cmd.OccurredAt())
}

func TestNewApplyTrackingUpdateCommand_MissingFields(t *testing.T) {
	_, err := commands.NewApplyTrackingUpdateCommand("", "delivered", "", "", time.Time{})
	require.ErrorIs(t, err, commands.ErrTrackingNumberIsRequired)

	_, err = commands.NewApplyTrackingUpdateCommand("TRK-42", "", "", "", time.Time{})
	require.ErrorIs(t, err, commands.ErrVendorStatusIsRequired)
}

func TestApplyTrackingUpdateCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.ApplyTrackingUpdateCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrApplyTrackingUpdateCommandIsNotConstructed)
}
