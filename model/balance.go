package model

// WalletBalance is a point-in-time balance query result. It is never
// persisted; each refresh discards and replaces the previous set.
// Balance is a decimal string in the network's base unit (ether-equivalent),
// formatted without float precision loss.
type WalletBalance struct {
	Address string `json:"address"`
	Network string `json:"network"`
	Symbol  string `json:"symbol"`
	Balance string `json:"balance"`
}
