// Package balance queries native-token balances across networks with
// endpoint failover, and aggregates them per wallet.
package balance

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/walletkeeper/walletkeeper/model"
)

// etherDecimals is the native token precision shared by all supported EVM
// chains (wei -> ether).
const etherDecimals = 18

// DefaultAttemptTimeout bounds a single endpoint attempt.
const DefaultAttemptTimeout = 10 * time.Second

// Resolver resolves the native balance of one (address, network) pair.
// Endpoints are tried strictly in order, never concurrently: the primary is
// always preferred and outbound load stays bounded.
type Resolver struct {
	attemptTimeout time.Duration
	logger         *zap.Logger
}

// NewResolver creates a Resolver. A non-positive timeout falls back to
// DefaultAttemptTimeout; a nil logger is replaced with a no-op logger.
func NewResolver(attemptTimeout time.Duration, logger *zap.Logger) *Resolver {
	if attemptTimeout <= 0 {
		attemptTimeout = DefaultAttemptTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{attemptTimeout: attemptTimeout, logger: logger}
}

// Resolve queries the network's endpoints in order and returns the first
// successful balance, formatted as a decimal string in the network's base
// unit. When every endpoint fails it returns a zero balance instead of an
// error: balance display must degrade gracefully, and the caller always gets
// a value. Connectivity trouble is visible only in the logs.
func (r *Resolver) Resolve(ctx context.Context, address string, net model.Network) model.WalletBalance {
	endpoints := net.Endpoints()

	for i, endpoint := range endpoints {
		wei, err := r.fetch(ctx, endpoint, address)
		if err != nil {
			r.logger.Warn("balance endpoint failed",
				zap.String("network", net.Name),
				zap.String("endpoint", endpoint),
				zap.Int("attempt", i+1),
				zap.Int("endpoints", len(endpoints)),
				zap.Error(err))
			continue
		}

		return model.WalletBalance{
			Address: address,
			Network: net.Name,
			Symbol:  net.Symbol,
			Balance: formatWei(wei),
		}
	}

	r.logger.Error("all balance endpoints failed, reporting zero",
		zap.String("network", net.Name),
		zap.String("address", address),
		zap.Int("endpoints", len(endpoints)))

	return model.WalletBalance{
		Address: address,
		Network: net.Name,
		Symbol:  net.Symbol,
		Balance: "0",
	}
}

// fetch performs one bounded eth_getBalance attempt against one endpoint.
// The timeout cancels only this attempt; the parent context is untouched.
func (r *Resolver) fetch(ctx context.Context, endpoint, address string) (*big.Int, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, r.attemptTimeout)
	defer cancel()

	client, err := ethclient.DialContext(attemptCtx, endpoint)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	return client.BalanceAt(attemptCtx, common.HexToAddress(address), nil)
}

// formatWei converts a wei amount to an ether-unit decimal string without
// float precision loss.
func formatWei(wei *big.Int) string {
	return decimal.NewFromBigInt(wei, -etherDecimals).String()
}
