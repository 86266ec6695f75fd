package balance

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/walletkeeper/walletkeeper/model"
)

// Aggregator fans out balance resolution across all wallets and networks.
type Aggregator struct {
	resolver *Resolver
}

// NewAggregator creates an Aggregator on top of the given resolver.
func NewAggregator(resolver *Resolver) *Aggregator {
	return &Aggregator{resolver: resolver}
}

// ResolveAll resolves every (wallet, network) pair concurrently and groups
// the results by wallet address. Pairs settle independently: the resolver
// already absorbs endpoint failures into zero-balance records, so no pair can
// abort the batch. Every wallet address is present in the returned map, even
// with an empty network list.
//
// Each goroutine writes only its own pre-allocated slot; the merge happens
// after all tasks finish, so no shared map is mutated concurrently.
func (a *Aggregator) ResolveAll(ctx context.Context, wallets []model.Wallet, networks []model.Network) map[string][]model.WalletBalance {
	results := make([]model.WalletBalance, len(wallets)*len(networks))

	g, gctx := errgroup.WithContext(ctx)
	for wi, wallet := range wallets {
		for ni, net := range networks {
			slot := wi*len(networks) + ni
			address := wallet.Address
			network := net
			g.Go(func() error {
				results[slot] = a.resolver.Resolve(gctx, address, network)
				return nil
			})
		}
	}
	_ = g.Wait() // tasks never return errors

	out := make(map[string][]model.WalletBalance, len(wallets))
	for _, wallet := range wallets {
		out[wallet.Address] = make([]model.WalletBalance, 0, len(networks))
	}
	for _, res := range results {
		out[res.Address] = append(out[res.Address], res)
	}
	return out
}
