package service

import (
	"errors"

	"github.com/MKhiriev/go-pass-keeper-sync/internal/crypto"
	"github.com/MKhiriev/go-pass-keeper-sync/internal/validators"
)

var (
	// ErrMissingPayload is returned for a create or update entry without the
	// record snapshot needed to act on it.
	ErrMissingPayload = validators.ErrMissingPayload

	// ErrMissingEntityID is returned for a malformed entry without an entity id.
	ErrMissingEntityID = validators.ErrInvalidEntityID

	// ErrVaultLocked is returned by a resolution pass started while no user
	// key is loaded. It matches [crypto.ErrVaultLocked] as well.
	ErrVaultLocked = crypto.ErrVaultLocked

	// ErrUnsupportedChangeType is returned when the resolver is handed a
	// change type it has no branch for.
	ErrUnsupportedChangeType = errors.New("unsupported pending change type")
)

// ErrMissingFolderID is returned when the remote store creates the backup
// folder but reports no id for it.
var ErrMissingFolderID = errors.New("created backup folder has no id")
