package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletkeeper/walletkeeper/model"
)

func TestDefault_Networks(t *testing.T) {
	nets := Default().List()
	require.Len(t, nets, 2)

	sepolia := nets[0]
	assert.Equal(t, "Ethereum Sepolia", sepolia.Name)
	assert.Equal(t, uint64(11155111), sepolia.ChainID)
	assert.Equal(t, "ETH", sepolia.Symbol)
	assert.NotEmpty(t, sepolia.PrimaryEndpoint)
	assert.NotEmpty(t, sepolia.BackupEndpoints)

	bsc := nets[1]
	assert.Equal(t, "BSC Testnet", bsc.Name)
	assert.Equal(t, uint64(97), bsc.ChainID)
	assert.Equal(t, "tBNB", bsc.Symbol)
}

func TestRegistry_ListIsACopy(t *testing.T) {
	r := Default()

	first := r.List()
	first[0].Name = "mutated"

	assert.Equal(t, "Ethereum Sepolia", r.List()[0].Name)
}

func TestNetwork_EndpointOrder(t *testing.T) {
	n := model.Network{
		PrimaryEndpoint: "https://primary.example",
		BackupEndpoints: []string{"https://b1.example", "https://b2.example"},
	}

	assert.Equal(t, []string{
		"https://primary.example",
		"https://b1.example",
		"https://b2.example",
	}, n.Endpoints())

	solo := model.Network{PrimaryEndpoint: "https://only.example"}
	assert.Equal(t, []string{"https://only.example"}, solo.Endpoints())
}

func TestFaucets(t *testing.T) {
	eth := Faucets("ETH")
	require.NotEmpty(t, eth)
	for _, f := range eth {
		assert.NotEmpty(t, f.Name)
		assert.NotEmpty(t, f.URL)
	}

	assert.NotEmpty(t, Faucets("tBNB"))
	assert.Nil(t, Faucets("DOGE"))
}
