package service

// BatchContext carries state shared by the items of a single resolution pass.
// It is created by ProcessAll and dropped when the pass ends.
type BatchContext struct {
	conflictFolderID string
}

// NewBatchContext returns an empty BatchContext.
func NewBatchContext() *BatchContext {
	return &BatchContext{}
}

// ConflictFolderID returns the cached id of the backup folder.
func (b *BatchContext) ConflictFolderID() (string, bool) {
	if b == nil || b.conflictFolderID == "" {
		return "", false
	}
	return b.conflictFolderID, true
}

// SetConflictFolderID caches the id of the backup folder for the rest of the pass.
func (b *BatchContext) SetConflictFolderID(id string) {
	if b == nil {
		return
	}
	b.conflictFolderID = id
}
