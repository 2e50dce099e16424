// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-keeper-sync/internal/crypto"
	"github.com/MKhiriev/go-pass-keeper-sync/internal/logger"
	"github.com/MKhiriev/go-pass-keeper-sync/models"
)

type batchProcessor struct {
	queue    PendingChangeQueue
	resolver Resolver
	vault    crypto.VaultCrypto
	logger   *logger.Logger
}

// NewBatchProcessor returns a [BatchProcessor] resolving items strictly one
// after another.
func NewBatchProcessor(queue PendingChangeQueue, resolver Resolver, vault crypto.VaultCrypto, logger *logger.Logger) BatchProcessor {
	return &batchProcessor{
		queue:    queue,
		resolver: resolver,
		vault:    vault,
		logger:   logger,
	}
}

func (b *batchProcessor) ProcessAll(ctx context.Context, userID string) (models.BatchReport, error) {
	report := models.BatchReport{UserID: userID}

	if !b.vault.IsUnlocked() {
		return report, ErrVaultLocked
	}

	changes, quarantined, err := b.queue.FetchPending(ctx, userID)
	if err != nil {
		return report, fmt.Errorf("fetch pending changes: %w", err)
	}

	report.Total = len(changes) + len(quarantined)
	report.Skipped = len(quarantined)
	for _, q := range quarantined {
		b.logger.Warn().Err(q.Reason).
			Str("func", "batchProcessor.ProcessAll").
			Str("user_id", userID).
			Str("pending_change_id", q.ID).
			Str("entity_id", q.EntityID).
			Msg("skipping quarantined pending change")
	}

	if len(changes) == 0 {
		return report, nil
	}

	batch := NewBatchContext()
	for _, change := range changes {
		if err = ctx.Err(); err != nil {
			b.logger.Info().
				Str("func", "batchProcessor.ProcessAll").
				Str("user_id", userID).
				Int("remaining", len(changes)-len(report.Items)).
				Msg("resolution pass cancelled")
			return report, err
		}

		report.Items = append(report.Items, b.processOne(ctx, batch, change))
		if report.Items[len(report.Items)-1].Err != nil {
			report.Failed++
		} else {
			report.Resolved++
		}
	}

	b.logger.Info().
		Str("func", "batchProcessor.ProcessAll").
		Str("user_id", userID).
		Int("total", report.Total).
		Int("resolved", report.Resolved).
		Int("failed", report.Failed).
		Int("skipped", report.Skipped).
		Msg("resolution pass finished")

	return report, nil
}

// processOne resolves change detached from ctx cancellation, so an item is
// never abandoned halfway.
func (b *batchProcessor) processOne(ctx context.Context, batch *BatchContext, change models.PendingChange) models.ItemResult {
	log := b.logger.ForChange(change)
	itemCtx := log.WithContext(context.WithoutCancel(ctx))

	outcome, err := b.resolver.Resolve(itemCtx, batch, change)
	result := models.ItemResult{
		PendingChangeID: change.ID,
		EntityID:        change.EntityID,
		ChangeType:      change.ChangeType,
		Outcome:         outcome,
		Err:             err,
	}

	if err != nil {
		log.Err(err).
			Str("func", "batchProcessor.processOne").
			Msg("failed to resolve pending change, keeping it queued")
		return result
	}

	log.Info().
		Str("func", "batchProcessor.processOne").
		Str("outcome", outcome.String()).
		Msg("pending change resolved")
	return result
}
