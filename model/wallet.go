package model

// Wallet is a persisted wallet record. The private key is never stored in
// plaintext: EncryptedPrivateKey is an opaque envelope string produced by
// cipherbox and is the only ciphertext-bearing field (salt and nonce are
// embedded in the envelope itself).
type Wallet struct {
	ID                  string `json:"id"`
	Address             string `json:"address"`
	EncryptedPrivateKey string `json:"encryptedPrivateKey"`
	Name                string `json:"name,omitempty"`
	CreatedAt           string `json:"createdAt"` // RFC3339, set once at creation
}
