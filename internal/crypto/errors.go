package crypto

import "errors"

var (
	// ErrVaultLocked is returned when an operation needs the user key but the
	// vault is locked.
	ErrVaultLocked = errors.New("vault is locked")

	// ErrInvalidKey is returned when key material is empty, not valid base64 or
	// has the wrong length.
	ErrInvalidKey = errors.New("invalid key material")

	// ErrInvalidData is returned when a ciphertext is too short, fails
	// authentication or decrypts to an unexpected shape.
	ErrInvalidData = errors.New("invalid encrypted data")
)
