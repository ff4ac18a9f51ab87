package model

// GenerateRequest represents a password batch request.
// Pointer ints distinguish an omitted field (nil -> service default) from an explicit value.
type GenerateRequest struct {
	Length  *int   `json:"length"`
	Count   *int   `json:"count"`
	Symbols string `json:"symbols"`
	Hash    bool   `json:"hash"`

	// ClientIP is set by the transport layer and only used for auditing.
	ClientIP string `json:"-"`
}

// GenerateResponse represents a generated batch.
// Hashes, when requested, are argon2id PHC strings aligned with Passwords.
type GenerateResponse struct {
	ID        string   `json:"id"`
	Passwords []string `json:"passwords"`
	Hashes    []string `json:"hashes,omitempty"`
	Length    int      `json:"length"`
	Count     int      `json:"count"`
}
