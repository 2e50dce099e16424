package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-keeper-sync/internal/config"
	"github.com/MKhiriev/go-pass-keeper-sync/internal/logger"
	"github.com/MKhiriev/go-pass-keeper-sync/internal/utils"
	"github.com/MKhiriev/go-pass-keeper-sync/models"
)

const (
	ciphersPath = "/api/ciphers"
	foldersPath = "/api/folders"
)

// recordRequest is the body of create and update calls.
type recordRequest struct {
	Record       models.Record `json:"cipher"`
	EncryptedFor string        `json:"encrypted_for"`
}

type httpRemoteStore struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string
	now   func() time.Time

	logger *logger.Logger
}

// NewHTTPRemoteStore constructs an HTTP/REST implementation of [RemoteStore].
// It normalises and validates the base URL from cfg.HTTPAddress and
// configures the underlying HTTP client with it and cfg.RequestTimeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPRemoteStore(cfg config.Adapter, logger *logger.Logger) (RemoteStore, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	h := &httpRemoteStore{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		now:    time.Now,
		logger: logger,
	}
	h.SetToken(cfg.Token)
	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [RemoteStore].
func (h *httpRemoteStore) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// authedRequest returns a request carrying the bearer token. A missing,
// malformed or expired token fails locally with [ErrUnauthorized].
func (h *httpRemoteStore) authedRequest(ctx context.Context) (*resty.Request, error) {
	h.mu.RLock()
	token := h.token
	h.mu.RUnlock()

	if token == "" {
		return nil, fmt.Errorf("%w: no bearer token", ErrUnauthorized)
	}
	expired, err := utils.IsTokenExpired(token, h.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	if expired {
		return nil, fmt.Errorf("%w: bearer token expired", ErrUnauthorized)
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}

func recordPath(id string) string {
	return ciphersPath + "/" + url.PathEscape(id)
}

// GetRecord implements [RemoteStore]. GET /api/ciphers/{id}.
func (h *httpRemoteStore) GetRecord(ctx context.Context, id string) (models.Record, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Record{}, err
	}

	var record models.Record
	resp, err := req.
		SetResult(&record).
		Get(recordPath(id))
	if err != nil {
		return models.Record{}, fmt.Errorf("get record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Record{}, err
	}

	return record, nil
}

// CreateRecord implements [RemoteStore]. POST /api/ciphers.
func (h *httpRemoteStore) CreateRecord(ctx context.Context, record models.Record, encryptedFor string) (models.Record, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Record{}, err
	}

	var created models.Record
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(recordRequest{Record: record, EncryptedFor: encryptedFor}).
		SetResult(&created).
		Post(ciphersPath)
	if err != nil {
		return models.Record{}, fmt.Errorf("create record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Record{}, err
	}

	h.logger.Debug().
		Str("func", "httpRemoteStore.CreateRecord").
		Str("id", created.ID).
		Msg("record created")
	return created, nil
}

// UpdateRecord implements [RemoteStore]. PUT /api/ciphers/{id}.
func (h *httpRemoteStore) UpdateRecord(ctx context.Context, record models.Record, encryptedFor string) (models.Record, error) {
	if record.ID == "" {
		return models.Record{}, fmt.Errorf("%w: update without record id", ErrBadRequest)
	}

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Record{}, err
	}

	var updated models.Record
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(recordRequest{Record: record, EncryptedFor: encryptedFor}).
		SetResult(&updated).
		Put(recordPath(record.ID))
	if err != nil {
		return models.Record{}, fmt.Errorf("update record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Record{}, err
	}

	return updated, nil
}

// SoftDeleteRecord implements [RemoteStore]. PUT /api/ciphers/{id}/delete.
func (h *httpRemoteStore) SoftDeleteRecord(ctx context.Context, id string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Put(recordPath(id) + "/delete")
	if err != nil {
		return fmt.Errorf("soft delete request: %w", err)
	}
	return mapHTTPError(resp)
}

// HardDeleteRecord implements [RemoteStore]. DELETE /api/ciphers/{id}.
func (h *httpRemoteStore) HardDeleteRecord(ctx context.Context, id string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Delete(recordPath(id))
	if err != nil {
		return fmt.Errorf("hard delete request: %w", err)
	}
	return mapHTTPError(resp)
}

// ListFolders implements [RemoteStore]. GET /api/folders.
func (h *httpRemoteStore) ListFolders(ctx context.Context) ([]models.Folder, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var folders []models.Folder
	resp, err := req.
		SetResult(&folders).
		Get(foldersPath)
	if err != nil {
		return nil, fmt.Errorf("list folders request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return folders, nil
}

// CreateFolder implements [RemoteStore]. POST /api/folders.
func (h *httpRemoteStore) CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Folder{}, err
	}

	var created models.Folder
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(folder).
		SetResult(&created).
		Post(foldersPath)
	if err != nil {
		return models.Folder{}, fmt.Errorf("create folder request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Folder{}, err
	}

	return created, nil
}
