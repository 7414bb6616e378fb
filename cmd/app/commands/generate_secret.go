package commands

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// secretKeyBytes is the length of generated signing secrets.
const secretKeyBytes = 32

// RunGenerateSecret prints a random signing secret suitable for SECRET_KEY.
func RunGenerateSecret() error {
	key := make([]byte, secretKeyBytes)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("failed to generate secret: %w", err)
	}

	fmt.Println(base64.RawURLEncoding.EncodeToString(key))
	return nil
}
