package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"shiba-faucet/internal/pkg/config"
	"shiba-faucet/internal/pkg/errs"
	"shiba-faucet/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

// RPCClient talks JSON-RPC 2.0 to the custodial ledger node. One request
// per call, ConfirmTransfer polls until the context deadline.
type RPCClient struct {
	endpoint string
	http     *http.Client
	poll     time.Duration
	seq      atomic.Uint64
}

func NewRPCClient(cfg config.LedgerConfig) *RPCClient {
	return &RPCClient{
		endpoint: cfg.Endpoint,
		http:     &http.Client{Timeout: cfg.RequestTimeout},
		poll:     cfg.ConfirmPoll,
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
	ID      uint64 `json:"id"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

func (c *RPCClient) call(ctx context.Context, method string, params any, out any) error {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      c.seq.Add(1),
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode ledger request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build ledger request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Wrap(err, "ledger request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errs.Wrap(err, "failed to read ledger response")
	}
	if resp.StatusCode != http.StatusOK {
		return errs.New(fmt.Sprintf("ledger returned status %d", resp.StatusCode))
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(raw, &rpcResp); err != nil {
		return errs.Wrap(err, "failed to decode ledger response")
	}
	if rpcResp.Error != nil {
		return errs.New(fmt.Sprintf("ledger error %d: %s", rpcResp.Error.Code, rpcResp.Error.Message))
	}
	if out != nil {
		if err := json.Unmarshal(rpcResp.Result, out); err != nil {
			return errs.Wrap(err, "failed to decode ledger result")
		}
	}
	return nil
}

func (c *RPCClient) PoolBalance(ctx context.Context, poolRef string) (decimal.Decimal, error) {
	var result struct {
		Balance string `json:"balance"`
	}
	params := map[string]string{"pool": poolRef}
	if err := c.call(ctx, "pool_getBalance", params, &result); err != nil {
		return decimal.Zero, err
	}
	balance, err := decimal.NewFromString(result.Balance)
	if err != nil {
		return decimal.Zero, errs.Wrap(err, "ledger returned malformed balance")
	}
	return balance, nil
}

func (c *RPCClient) SubmitTransfer(ctx context.Context, poolRef, destAddr string, amount decimal.Decimal) (string, error) {
	var result struct {
		TransferRef string `json:"transferRef"`
	}
	params := map[string]string{
		"pool":   poolRef,
		"dest":   destAddr,
		"amount": amount.String(),
	}
	if err := c.call(ctx, "pool_submitTransfer", params, &result); err != nil {
		return "", err
	}
	if result.TransferRef == "" {
		return "", errs.New("ledger accepted transfer without a reference")
	}
	return result.TransferRef, nil
}

func (c *RPCClient) ConfirmTransfer(ctx context.Context, transferRef string) (commands.TransferStatus, error) {
	params := map[string]string{"transferRef": transferRef}

	ticker := time.NewTicker(c.poll)
	defer ticker.Stop()

	for {
		var result struct {
			Status string `json:"status"`
		}
		if err := c.call(ctx, "pool_getTransferStatus", params, &result); err != nil {
			return commands.TransferPending, err
		}
		switch commands.TransferStatus(result.Status) {
		case commands.TransferConfirmed:
			return commands.TransferConfirmed, nil
		case commands.TransferFailed:
			return commands.TransferFailed, nil
		}

		select {
		case <-ctx.Done():
			// Outcome still unknown; the caller decides how to record it.
			return commands.TransferPending, nil
		case <-ticker.C:
		}
	}
}
