package domain

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// NewID returns a 12-character hex identifier for findings and crumbs.
func NewID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])[:12]
}

// NewChainID returns a 16-character hex identifier for trails and chains.
func NewChainID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])[:16]
}
