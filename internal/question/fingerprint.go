package question

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// CanonicalJSON returns deterministic JSON bytes for hashing and storage.
// Values are round-tripped through a generic decode so map keys are sorted
// regardless of the input's field order.
func CanonicalJSON(value any) ([]byte, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("canonical json: %w", err)
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("canonical json: %w", err)
	}
	return json.Marshal(decoded)
}

// DeckKey returns the SHA-256 hex digest of the questions' canonical JSON.
func DeckKey(questions []Question) (string, error) {
	data, err := CanonicalJSON(questions)
	if err != nil {
		return "", fmt.Errorf("fingerprint deck: %w", err)
	}
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}
