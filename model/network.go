package model

// Network describes one supported chain: where to ask for balances and how to
// label the result. Endpoints are tried in order: Primary first, then Backups.
type Network struct {
	Name            string   `json:"name"`
	ChainID         uint64   `json:"chainId"`
	Symbol          string   `json:"symbol"`
	PrimaryEndpoint string   `json:"primaryEndpoint"`
	BackupEndpoints []string `json:"backupEndpoints,omitempty"`
}

// Endpoints returns the full attempt order for balance queries.
func (n Network) Endpoints() []string {
	out := make([]string, 0, 1+len(n.BackupEndpoints))
	out = append(out, n.PrimaryEndpoint)
	out = append(out, n.BackupEndpoints...)
	return out
}
