//go:build unit

package queries_test

import (
	"context"
	"testing"

	"shiba-faucet/internal/domain/wallet"
	"shiba-faucet/internal/pkg/config"
	"shiba-faucet/internal/usecase/queries"
	queriesmock "shiba-faucet/tests/mock/queries"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHistoryForLimits(t *testing.T) {
	addr, err := wallet.NewAddress("0x00000000000000000000000000000000000000aa")
	require.NoError(t, err)

	newQueries := func(t *testing.T, historyLimit int) (queries.ClaimQueries, *queriesmock.MockClaimReadStore) {
		t.Helper()
		store := queriesmock.NewMockClaimReadStore(gomock.NewController(t))
		return queries.NewClaimQueries(store, config.FaucetConfig{HistoryLimit: historyLimit}), store
	}

	t.Run("omitted limit falls back to the configured default", func(t *testing.T) {
		q, store := newQueries(t, 7)
		store.EXPECT().FindByWallet(gomock.Any(), addr.String(), int32(7)).Return(nil, nil)

		_, err := q.HistoryFor(context.Background(), addr, 0)
		require.NoError(t, err)
	})

	t.Run("unset config falls back to the package default", func(t *testing.T) {
		q, store := newQueries(t, 0)
		store.EXPECT().FindByWallet(gomock.Any(), addr.String(), int32(20)).Return(nil, nil)

		_, err := q.HistoryFor(context.Background(), addr, -1)
		require.NoError(t, err)
	})

	t.Run("explicit limit wins over the default", func(t *testing.T) {
		q, store := newQueries(t, 7)
		store.EXPECT().FindByWallet(gomock.Any(), addr.String(), int32(5)).Return(nil, nil)

		_, err := q.HistoryFor(context.Background(), addr, 5)
		require.NoError(t, err)
	})

	t.Run("oversized limit is clamped", func(t *testing.T) {
		q, store := newQueries(t, 7)
		store.EXPECT().FindByWallet(gomock.Any(), addr.String(), int32(100)).Return(nil, nil)

		_, err := q.HistoryFor(context.Background(), addr, 500)
		require.NoError(t, err)
	})
}
