//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"shiba-faucet/internal/domain/claim"
	"shiba-faucet/internal/pkg/clock"
	"shiba-faucet/internal/pkg/config"
	"shiba-faucet/internal/pkg/errs"
	"shiba-faucet/internal/usecase/commands"
	commandsmock "shiba-faucet/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReconcileCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockClaims    *commandsmock.MockClaimRepository
	mockCooldowns *commandsmock.MockCooldownRepository
	mockLedger    *commandsmock.MockLedgerClient
	clock         *clock.MockClock
	uc            commands.ReconcileCommands
}

func (s *ReconcileCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClaims = commandsmock.NewMockClaimRepository(s.mockCtrl)
	s.mockCooldowns = commandsmock.NewMockCooldownRepository(s.mockCtrl)
	s.mockLedger = commandsmock.NewMockLedgerClient(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	s.uc = commands.NewReconcileCommands(
		s.mockClaims,
		s.mockCooldowns,
		s.mockLedger,
		s.clock,
		config.FaucetConfig{ReconcileBatch: 100},
	)
}

func (s *ReconcileCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReconcileCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReconcileCommandsTestSuite))
}

func confirmedSnapshot(wallet string, createdAt time.Time) *commands.ClaimSnapshot {
	return &commands.ClaimSnapshot{
		ID:        uuid.New(),
		Wallet:    wallet,
		Asset:     "SHIB",
		Amount:    decimal.RequireFromString("1000"),
		Status:    claim.StatusConfirmed,
		CreatedAt: createdAt,
	}
}

func failedSnapshot(wallet, transferRef string, createdAt time.Time) *commands.ClaimSnapshot {
	return &commands.ClaimSnapshot{
		ID:          uuid.New(),
		Wallet:      wallet,
		Asset:       "SHIB",
		Amount:      decimal.RequireFromString("1000"),
		TransferRef: &transferRef,
		Status:      claim.StatusFailed,
		CreatedAt:   createdAt,
	}
}

func (s *ReconcileCommandsTestSuite) TestReconcileClaims_RepairsMissingCooldowns() {
	createdAt := s.clock.Now().Add(-time.Hour)
	rows := []*commands.ClaimSnapshot{
		confirmedSnapshot("0x00000000000000000000000000000000000000aa", createdAt),
		confirmedSnapshot("0x00000000000000000000000000000000000000bb", createdAt),
	}

	s.mockClaims.EXPECT().FindConfirmedMissingCooldown(gomock.Any(), int32(100)).Return(rows, nil)
	for _, row := range rows {
		s.mockCooldowns.EXPECT().MarkClaimed(gomock.Any(), row.Wallet, row.Asset, row.CreatedAt).Return(nil)
	}
	s.mockClaims.EXPECT().FindFailedWithTransferRef(gomock.Any(), int32(100)).Return(nil, nil)

	report, err := s.uc.ReconcileClaims(context.Background())

	s.NoError(err)
	s.Equal(int64(2), report.CooldownsRepaired)
	s.Equal(int64(0), report.ClaimsUpgraded)
	s.Equal(int64(2), report.Scanned)
}

func (s *ReconcileCommandsTestSuite) TestReconcileClaims_UpgradesLandedTransfers() {
	createdAt := s.clock.Now().Add(-2 * time.Hour)
	landed := failedSnapshot("0x00000000000000000000000000000000000000aa", "tx-landed", createdAt)
	stillFailed := failedSnapshot("0x00000000000000000000000000000000000000bb", "tx-dead", createdAt)

	s.mockClaims.EXPECT().FindConfirmedMissingCooldown(gomock.Any(), int32(100)).Return(nil, nil)
	s.mockClaims.EXPECT().FindFailedWithTransferRef(gomock.Any(), int32(100)).
		Return([]*commands.ClaimSnapshot{landed, stillFailed}, nil)

	s.mockLedger.EXPECT().ConfirmTransfer(gomock.Any(), "tx-landed").Return(commands.TransferConfirmed, nil)
	s.mockLedger.EXPECT().ConfirmTransfer(gomock.Any(), "tx-dead").Return(commands.TransferFailed, nil)

	s.mockClaims.EXPECT().UpgradeFailedToConfirmed(gomock.Any(), landed.ID, "tx-landed", s.clock.Now()).Return(nil)
	s.mockCooldowns.EXPECT().MarkClaimed(gomock.Any(), landed.Wallet, landed.Asset, landed.CreatedAt).Return(nil)

	report, err := s.uc.ReconcileClaims(context.Background())

	s.NoError(err)
	s.Equal(int64(1), report.ClaimsUpgraded)
	s.Equal(int64(2), report.Scanned)
}

func (s *ReconcileCommandsTestSuite) TestReconcileClaims_ConcurrentUpgradeTolerated() {
	createdAt := s.clock.Now().Add(-time.Hour)
	row := failedSnapshot("0x00000000000000000000000000000000000000aa", "tx-race", createdAt)

	s.mockClaims.EXPECT().FindConfirmedMissingCooldown(gomock.Any(), int32(100)).Return(nil, nil)
	s.mockClaims.EXPECT().FindFailedWithTransferRef(gomock.Any(), int32(100)).
		Return([]*commands.ClaimSnapshot{row}, nil)
	s.mockLedger.EXPECT().ConfirmTransfer(gomock.Any(), "tx-race").Return(commands.TransferConfirmed, nil)
	// Another pass already upgraded this claim.
	s.mockClaims.EXPECT().UpgradeFailedToConfirmed(gomock.Any(), row.ID, "tx-race", s.clock.Now()).Return(conflictErr())

	report, err := s.uc.ReconcileClaims(context.Background())

	s.NoError(err)
	s.Equal(int64(0), report.ClaimsUpgraded)
}

func (s *ReconcileCommandsTestSuite) TestReconcileClaims_ConfirmationErrorSkipsRow() {
	createdAt := s.clock.Now().Add(-time.Hour)
	row := failedSnapshot("0x00000000000000000000000000000000000000aa", "tx-unreachable", createdAt)

	s.mockClaims.EXPECT().FindConfirmedMissingCooldown(gomock.Any(), int32(100)).Return(nil, nil)
	s.mockClaims.EXPECT().FindFailedWithTransferRef(gomock.Any(), int32(100)).
		Return([]*commands.ClaimSnapshot{row}, nil)
	s.mockLedger.EXPECT().ConfirmTransfer(gomock.Any(), "tx-unreachable").
		Return(commands.TransferPending, errors.New("node unreachable"))

	report, err := s.uc.ReconcileClaims(context.Background())

	s.NoError(err)
	s.Equal(int64(0), report.ClaimsUpgraded)
	s.Equal(int64(1), report.Scanned)
}

func (s *ReconcileCommandsTestSuite) TestReconcileClaims_StorageFailureAborts() {
	s.mockClaims.EXPECT().FindConfirmedMissingCooldown(gomock.Any(), int32(100)).
		Return(nil, errors.New("connection reset"))

	_, err := s.uc.ReconcileClaims(context.Background())

	s.True(errs.Is(err, commands.ErrStorageUnavailable))
}
