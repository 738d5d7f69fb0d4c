package ledger

import (
	"context"
	"fmt"
	"sync"

	"shiba-faucet/internal/pkg/errs"
	"shiba-faucet/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

// StubClient is an in-memory ledger for development and tests. Pools
// start with a configurable balance and transfers settle instantly.
type StubClient struct {
	mu        sync.Mutex
	balances  map[string]decimal.Decimal
	statuses  map[string]commands.TransferStatus
	seq       int
	failNext  int
	submitErr error
}

func NewStubClient() *StubClient {
	return &StubClient{
		balances: make(map[string]decimal.Decimal),
		statuses: make(map[string]commands.TransferStatus),
	}
}

// SetBalance seeds or replaces a pool balance.
func (s *StubClient) SetBalance(poolRef string, balance decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[poolRef] = balance
}

// FailNextTransfers makes the next n submitted transfers settle as failed.
func (s *StubClient) FailNextTransfers(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = n
}

// SetSubmitError makes SubmitTransfer return err until cleared with nil.
func (s *StubClient) SetSubmitError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitErr = err
}

func (s *StubClient) PoolBalance(_ context.Context, poolRef string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	balance, ok := s.balances[poolRef]
	if !ok {
		return decimal.Zero, errs.New("unknown pool " + poolRef)
	}
	return balance, nil
}

func (s *StubClient) SubmitTransfer(_ context.Context, poolRef, destAddr string, amount decimal.Decimal) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitErr != nil {
		return "", s.submitErr
	}
	if _, ok := s.balances[poolRef]; !ok {
		return "", errs.New("unknown pool " + poolRef)
	}

	s.seq++
	ref := fmt.Sprintf("stub-tx-%06d", s.seq)

	if s.failNext > 0 {
		s.failNext--
		s.statuses[ref] = commands.TransferFailed
		return ref, nil
	}

	s.balances[poolRef] = s.balances[poolRef].Sub(amount)
	s.statuses[ref] = commands.TransferConfirmed
	return ref, nil
}

func (s *StubClient) ConfirmTransfer(_ context.Context, transferRef string) (commands.TransferStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	status, ok := s.statuses[transferRef]
	if !ok {
		return commands.TransferPending, errs.New("unknown transfer " + transferRef)
	}
	return status, nil
}
