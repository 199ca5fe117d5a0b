package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Metadata describes an ingested resume document
type Metadata struct {
	Source     string `json:"source,omitempty"` // file path or URL
	Filename   string `json:"filename"`
	Format     Format `json:"format"`
	Size       int    `json:"size"`       // bytes of the original document
	Characters int    `json:"characters"` // runes of extracted text
	Timestamp  string `json:"timestamp"`  // RFC3339 format
	Hash       string `json:"hash"`       // SHA256 hex digest of the original document
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(source, filename string, format Format, data []byte, text string) *Metadata {
	return &Metadata{
		Source:     source,
		Filename:   filename,
		Format:     format,
		Size:       len(data),
		Characters: len([]rune(text)),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Hash:       ComputeHash(data),
	}
}

// ComputeHash computes the SHA256 hex digest of data
func ComputeHash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
