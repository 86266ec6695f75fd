// Package network holds the static description of supported chains. The set
// is process-wide configuration owned by the caller: build a Registry once at
// startup and pass it by reference.
package network

import "github.com/walletkeeper/walletkeeper/model"

// Registry is an immutable ordered list of supported networks.
type Registry struct {
	networks []model.Network
}

// NewRegistry builds a registry from an explicit network list.
func NewRegistry(networks []model.Network) *Registry {
	out := make([]model.Network, len(networks))
	copy(out, networks)
	return &Registry{networks: out}
}

// Default returns a registry with the built-in test networks.
func Default() *Registry {
	return NewRegistry(DefaultNetworks())
}

// List returns the supported networks in registration order.
func (r *Registry) List() []model.Network {
	out := make([]model.Network, len(r.networks))
	copy(out, r.networks)
	return out
}

// DefaultNetworks returns the built-in chain set. Backup endpoints are public
// RPC providers tried in order after the primary.
func DefaultNetworks() []model.Network {
	return []model.Network{
		{
			Name:            "Ethereum Sepolia",
			ChainID:         11155111,
			Symbol:          "ETH",
			PrimaryEndpoint: "https://rpc.sepolia.eth.gateway.fm",
			BackupEndpoints: []string{
				"https://eth-sepolia.public.blastapi.io",
				"https://rpc.sepolia.org",
				"https://sepolia.gateway.tenderly.co",
				"https://ethereum-sepolia.publicnode.com",
			},
		},
		{
			Name:            "BSC Testnet",
			ChainID:         97,
			Symbol:          "tBNB",
			PrimaryEndpoint: "https://data-seed-prebsc-1-s1.binance.org:8545",
			BackupEndpoints: []string{
				"https://data-seed-prebsc-2-s1.binance.org:8545",
				"https://bsc-testnet.public.blastapi.io",
				"https://bsc-testnet.publicnode.com",
			},
		},
	}
}
