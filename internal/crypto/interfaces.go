package crypto

import "github.com/MKhiriev/go-pass-keeper-sync/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// VaultCrypto encrypts and decrypts vault records with the unlocked user key.
//
// Key scheme:
//
//	UserKey  = 32 random bytes, held in memory while the vault is unlocked
//	ItemKey  = 32 random bytes per record
//	Record.Key = Seal(UserKey, ItemKey)   (base64 of nonce || ciphertext)
//	field      = Seal(ItemKey, plaintext) (base64 of nonce || ciphertext)
//
// Every method except SetUserKey, Lock and IsUnlocked returns [ErrVaultLocked]
// while no user key is set.
type VaultCrypto interface {
	// SetUserKey unlocks the vault for userID with a base64-encoded 256-bit key.
	SetUserKey(userID, userKeyB64 string) error

	// Lock forgets the user key.
	Lock()

	// IsUnlocked reports whether a user key is currently set.
	IsUnlocked() bool

	// UserKey returns the raw unlocked user key.
	UserKey() ([]byte, error)

	// Decrypt returns the plaintext view of record.
	Decrypt(record models.Record) (models.RecordView, error)

	// Encrypt seals view and returns the encrypted record together with the
	// identifier of the user it was encrypted for. A view without Key gets a
	// freshly generated item key.
	Encrypt(view models.RecordView) (models.Record, string, error)

	// DecryptFolderName returns the plaintext name of folder.
	DecryptFolderName(folder models.Folder) (string, error)

	// EncryptFolderName seals a folder name with the user key.
	EncryptFolderName(name string) (string, error)
}

// CounterCipher seals the offline password change counter kept next to every
// pending change in the local store.
type CounterCipher interface {
	// Encrypt returns nonce || ciphertext of count. Two calls with the same
	// count produce different output.
	Encrypt(count int) ([]byte, error)

	// Decrypt reverses Encrypt.
	Decrypt(data []byte) (int, error)
}

// UserKeySource supplies the key material the counter key is derived from.
type UserKeySource interface {
	UserKey() ([]byte, error)
}
