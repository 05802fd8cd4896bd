package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"
)

// GenerateTransactionID returns a bookkeeping identifier in the form
// TXN-<base36 millisecond timestamp>-<16 hex chars>.
//
// This is a non-cryptographic convenience identifier: a collision affects
// bookkeeping only, never confidentiality or integrity.
func GenerateTransactionID() (string, error) {
	suffix := make([]byte, 8)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("failed to generate transaction id: %w", err)
	}

	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 36)

	return fmt.Sprintf("TXN-%s-%s", timestamp, hex.EncodeToString(suffix)), nil
}
