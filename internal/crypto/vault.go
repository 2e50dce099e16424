// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pass-keeper-sync/models"
)

// vaultCrypto is the private implementation of [VaultCrypto].
type vaultCrypto struct {
	mu      sync.RWMutex
	userID  string
	userKey []byte
}

// NewVaultCrypto returns a locked [VaultCrypto].
func NewVaultCrypto() VaultCrypto {
	return &vaultCrypto{}
}

// SetUserKey implements [VaultCrypto].
func (v *vaultCrypto) SetUserKey(userID, userKeyB64 string) error {
	key, err := decodeKey(userKeyB64)
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.userID = userID
	v.userKey = key
	return nil
}

// Lock implements [VaultCrypto].
func (v *vaultCrypto) Lock() {
	v.mu.Lock()
	defer v.mu.Unlock()
	clear(v.userKey)
	v.userKey = nil
	v.userID = ""
}

// IsUnlocked implements [VaultCrypto].
func (v *vaultCrypto) IsUnlocked() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.userKey != nil
}

// UserKey implements [VaultCrypto]. The returned slice is a copy.
func (v *vaultCrypto) UserKey() ([]byte, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.userKey == nil {
		return nil, ErrVaultLocked
	}
	return append([]byte(nil), v.userKey...), nil
}

func (v *vaultCrypto) unlocked() (string, []byte, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.userKey == nil {
		return "", nil, ErrVaultLocked
	}
	return v.userID, v.userKey, nil
}

// Decrypt implements [VaultCrypto]. Records without an item key are assumed
// to be sealed with the user key directly.
func (v *vaultCrypto) Decrypt(record models.Record) (models.RecordView, error) {
	_, userKey, err := v.unlocked()
	if err != nil {
		return models.RecordView{}, err
	}

	itemKey := userKey
	if record.Key != nil {
		raw, err := openString(userKey, *record.Key)
		if err != nil {
			return models.RecordView{}, fmt.Errorf("unwrap item key: %w", err)
		}
		itemKey = []byte(raw)
	}

	view := models.RecordView{
		FolderID:     record.FolderID,
		Key:          record.Key,
		Type:         record.Type,
		Favorite:     record.Favorite,
		Attachments:  record.Attachments,
		CreationDate: record.CreationDate,
		RevisionDate: record.RevisionDate,
		DeletedDate:  record.DeletedDate,
	}
	if record.ID != "" {
		id := record.ID
		view.ID = &id
	}

	if view.Name, err = openString(itemKey, record.Name); err != nil {
		return models.RecordView{}, fmt.Errorf("decrypt name: %w", err)
	}
	if view.Data, err = openString(itemKey, record.Data); err != nil {
		return models.RecordView{}, fmt.Errorf("decrypt data: %w", err)
	}
	if record.Notes != nil {
		notes, err := openString(itemKey, *record.Notes)
		if err != nil {
			return models.RecordView{}, fmt.Errorf("decrypt notes: %w", err)
		}
		view.Notes = &notes
	}

	for _, f := range record.Fields {
		value, err := openString(itemKey, f.Value)
		if err != nil {
			return models.RecordView{}, fmt.Errorf("decrypt field %q: %w", f.Name, err)
		}
		view.Fields = append(view.Fields, models.Field{Name: f.Name, Value: value, Hidden: f.Hidden})
	}
	for _, h := range record.PasswordHistory {
		password, err := openString(itemKey, h.Password)
		if err != nil {
			return models.RecordView{}, fmt.Errorf("decrypt password history: %w", err)
		}
		view.PasswordHistory = append(view.PasswordHistory, models.PasswordHistoryEntry{
			Password:     password,
			LastUsedDate: h.LastUsedDate,
		})
	}

	return view, nil
}

// Encrypt implements [VaultCrypto].
func (v *vaultCrypto) Encrypt(view models.RecordView) (models.Record, string, error) {
	userID, userKey, err := v.unlocked()
	if err != nil {
		return models.Record{}, "", err
	}

	var (
		itemKey    []byte
		wrappedKey string
	)
	if view.Key != nil {
		raw, err := openString(userKey, *view.Key)
		if err != nil {
			return models.Record{}, "", fmt.Errorf("unwrap item key: %w", err)
		}
		itemKey, wrappedKey = []byte(raw), *view.Key
	} else {
		if itemKey, err = newKey(); err != nil {
			return models.Record{}, "", err
		}
		if wrappedKey, err = sealString(userKey, string(itemKey)); err != nil {
			return models.Record{}, "", fmt.Errorf("wrap item key: %w", err)
		}
	}

	record := models.Record{
		FolderID:     view.FolderID,
		Key:          &wrappedKey,
		Type:         view.Type,
		Favorite:     view.Favorite,
		Attachments:  view.Attachments,
		CreationDate: view.CreationDate,
		RevisionDate: view.RevisionDate,
		DeletedDate:  view.DeletedDate,
	}
	if view.ID != nil {
		record.ID = *view.ID
	}

	if record.Name, err = sealString(itemKey, view.Name); err != nil {
		return models.Record{}, "", fmt.Errorf("encrypt name: %w", err)
	}
	if record.Data, err = sealString(itemKey, view.Data); err != nil {
		return models.Record{}, "", fmt.Errorf("encrypt data: %w", err)
	}
	if view.Notes != nil {
		notes, err := sealString(itemKey, *view.Notes)
		if err != nil {
			return models.Record{}, "", fmt.Errorf("encrypt notes: %w", err)
		}
		record.Notes = &notes
	}

	for _, f := range view.Fields {
		value, err := sealString(itemKey, f.Value)
		if err != nil {
			return models.Record{}, "", fmt.Errorf("encrypt field %q: %w", f.Name, err)
		}
		record.Fields = append(record.Fields, models.Field{Name: f.Name, Value: value, Hidden: f.Hidden})
	}
	for _, h := range view.PasswordHistory {
		password, err := sealString(itemKey, h.Password)
		if err != nil {
			return models.Record{}, "", fmt.Errorf("encrypt password history: %w", err)
		}
		record.PasswordHistory = append(record.PasswordHistory, models.PasswordHistoryEntry{
			Password:     password,
			LastUsedDate: h.LastUsedDate,
		})
	}

	return record, userID, nil
}

// DecryptFolderName implements [VaultCrypto].
func (v *vaultCrypto) DecryptFolderName(folder models.Folder) (string, error) {
	_, userKey, err := v.unlocked()
	if err != nil {
		return "", err
	}
	return openString(userKey, folder.Name)
}

// EncryptFolderName implements [VaultCrypto].
func (v *vaultCrypto) EncryptFolderName(name string) (string, error) {
	_, userKey, err := v.unlocked()
	if err != nil {
		return "", err
	}
	return sealString(userKey, name)
}

func decodeKey(keyB64 string) ([]byte, error) {
	if keyB64 == "" {
		return nil, fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	key, err := base64.StdEncoding.DecodeString(keyB64)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	if len(key) != keySize {
		return nil, fmt.Errorf("%w: key length %d, want %d", ErrInvalidKey, len(key), keySize)
	}
	return key, nil
}
