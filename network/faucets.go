package network

// Faucet points at a public faucet where a test wallet can be funded.
type Faucet struct {
	Name        string
	URL         string
	Description string
}

// Faucets lists known faucets per network symbol, for presentation layers
// that want to show funding instructions next to an empty wallet.
func Faucets(symbol string) []Faucet {
	switch symbol {
	case "ETH":
		return []Faucet{
			{Name: "PoW Faucet", URL: "https://sepolia-faucet.pk910.de", Description: "Mine for up to 1 ETH"},
			{Name: "Alchemy Sepolia Faucet", URL: "https://sepoliafaucet.com", Description: "0.5 ETH per day"},
			{Name: "QuickNode Faucet", URL: "https://faucet.quicknode.com/ethereum/sepolia", Description: "0.1 ETH per day"},
		}
	case "tBNB":
		return []Faucet{
			{Name: "Official BSC Faucet", URL: "https://testnet.bnbchain.org/faucet-smart", Description: "0.1 tBNB per day"},
			{Name: "Alternative BSC Faucet", URL: "https://testnet.binance.org/faucet-smart", Description: "Backup faucet"},
		}
	default:
		return nil
	}
}
