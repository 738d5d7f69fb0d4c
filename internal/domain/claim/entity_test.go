//go:build unit

package claim_test

import (
	"testing"
	"time"

	"shiba-faucet/internal/domain/asset"
	"shiba-faucet/internal/domain/claim"
	"shiba-faucet/internal/domain/wallet"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClaim(t *testing.T) *claim.Claim {
	t.Helper()
	addr, err := wallet.NewAddress("0xabcdefabcdefabcdefabcdefabcdefabcdefabcd")
	require.NoError(t, err)
	sym, err := asset.NewSymbol("BONE")
	require.NoError(t, err)
	amount, err := asset.NewAmount("0.1")
	require.NoError(t, err)
	return claim.NewClaim(addr, sym, amount, time.Now())
}

func TestClaim(t *testing.T) {
	t.Run("starts pending with an id and no transfer ref", func(t *testing.T) {
		c := newTestClaim(t)
		assert.NotEqual(t, uuid.Nil, c.ID())
		assert.Equal(t, claim.StatusPending, c.Status())
		assert.Nil(t, c.TransferRef())
		assert.Equal(t, c.CreatedAt(), c.UpdatedAt())
	})

	t.Run("confirm attaches the transfer reference", func(t *testing.T) {
		c := newTestClaim(t)
		now := time.Now()
		require.NoError(t, c.Confirm("0xdeadbeef", now))

		assert.Equal(t, claim.StatusConfirmed, c.Status())
		require.NotNil(t, c.TransferRef())
		assert.Equal(t, "0xdeadbeef", *c.TransferRef())
		assert.Equal(t, now, c.UpdatedAt())
	})

	t.Run("confirm without a reference is rejected", func(t *testing.T) {
		c := newTestClaim(t)
		assert.ErrorIs(t, c.Confirm("", time.Now()), claim.ErrMissingTransferRef)
		assert.Equal(t, claim.StatusPending, c.Status())
	})

	t.Run("fail keeps an optional submitted reference", func(t *testing.T) {
		c := newTestClaim(t)
		ref := "0xfeed"
		require.NoError(t, c.Fail(&ref, time.Now()))

		assert.Equal(t, claim.StatusFailed, c.Status())
		require.NotNil(t, c.TransferRef())
		assert.Equal(t, "0xfeed", *c.TransferRef())
	})

	t.Run("terminal states never transition again", func(t *testing.T) {
		confirmed := newTestClaim(t)
		require.NoError(t, confirmed.Confirm("0x1", time.Now()))
		assert.ErrorIs(t, confirmed.Confirm("0x2", time.Now()), claim.ErrAlreadyTerminal)
		assert.ErrorIs(t, confirmed.Fail(nil, time.Now()), claim.ErrAlreadyTerminal)
		assert.Equal(t, "0x1", *confirmed.TransferRef())

		failed := newTestClaim(t)
		require.NoError(t, failed.Fail(nil, time.Now()))
		assert.ErrorIs(t, failed.Confirm("0x3", time.Now()), claim.ErrAlreadyTerminal)
		assert.Equal(t, claim.StatusFailed, failed.Status())
	})

	t.Run("amount survives registry edits", func(t *testing.T) {
		c := newTestClaim(t)
		// The registry amount changing later must not reach an in-flight claim.
		assert.Equal(t, "0.1", c.Amount().String())
	})
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, claim.StatusPending.Terminal())
	assert.True(t, claim.StatusConfirmed.Terminal())
	assert.True(t, claim.StatusFailed.Terminal())
	assert.False(t, claim.Status("bogus").Valid())
}
