package commands

import (
	"fmt"
	"io"

	cryptoDomain "github.com/edulearn/cardvault/internal/crypto/domain"
)

// RunGenerateEncryptionKey generates a cryptographically secure 32-byte card
// encryption key and writes it as a hex-encoded environment variable assignment.
//
// Output format:
//   - CARD_ENCRYPTION_KEY="<64 hex characters>"
//
// Security: store the key in a secrets manager, never in source control. Rotating
// the key requires re-encrypting all stored card envelopes under the new key.
func RunGenerateEncryptionKey(w io.Writer) error {
	key, err := cryptoDomain.GenerateEncryptionKey()
	if err != nil {
		return fmt.Errorf("failed to generate encryption key: %w", err)
	}

	fmt.Fprintln(w, "# Card Encryption Key Configuration")
	fmt.Fprintln(w, "# Copy this environment variable to your .env file or secrets manager")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s=\"%s\"\n", cryptoDomain.EncryptionKeyEnvVar, key)

	return nil
}
