// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

// Package selection tracks the checked material ids on the materials list
// and runs bulk deletes against the upstream one id at a time, aggregating
// outcomes instead of aborting on the first failure.
package selection

import (
	"context"
	"errors"
	"sort"

	"github.com/scano-io/scanogate/internal/logging"
	"github.com/scano-io/scanogate/internal/models"
	"github.com/scano-io/scanogate/internal/scano"
)

// Set is a mutable id selection. Not safe for concurrent use; each request
// builds its own.
type Set struct {
	ids map[string]struct{}
}

// NewSet creates an empty selection.
func NewSet() *Set {
	return &Set{ids: make(map[string]struct{})}
}

// FromIDs creates a selection holding the given ids, dropping duplicates
// and empty strings.
func FromIDs(ids []string) *Set {
	s := NewSet()
	for _, id := range ids {
		if id != "" {
			s.ids[id] = struct{}{}
		}
	}
	return s
}

// Toggle flips one id's membership.
func (s *Set) Toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

// SelectAll adds every id from the visible page. The select-all checkbox
// covers the current page only, not the whole result set.
func (s *Set) SelectAll(pageItems []models.Material) {
	for _, m := range pageItems {
		s.ids[m.ID] = struct{}{}
	}
}

// Clear empties the selection.
func (s *Set) Clear() {
	s.ids = make(map[string]struct{})
}

// Contains reports membership.
func (s *Set) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the selection size.
func (s *Set) Len() int {
	return len(s.ids)
}

// IDs returns the selected ids in sorted order for deterministic delete
// sequencing and stable test output.
func (s *Set) IDs() []string {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Deleter deletes one material upstream.
type Deleter interface {
	DeleteMaterial(ctx context.Context, token, id string) error
}

// BulkDelete deletes every selected id and reports per-id outcomes. A
// failure on one id does not stop the rest; partial results are the point.
// Context cancellation stops the loop, reporting the remaining ids as
// failed so the caller knows they were never attempted.
func BulkDelete(ctx context.Context, deleter Deleter, token string, ids []string) models.BulkResult {
	result := models.BulkResult{Deleted: make([]string, 0, len(ids))}

	for i, id := range ids {
		if err := ctx.Err(); err != nil {
			for _, remaining := range ids[i:] {
				result.Failed = append(result.Failed, models.BulkFailure{ID: remaining, Reason: "cancelled"})
			}
			break
		}

		if err := deleter.DeleteMaterial(ctx, token, id); err != nil {
			reason := "delete failed"
			switch {
			case errors.Is(err, scano.ErrNotFound):
				reason = "not found"
			case errors.Is(err, scano.ErrUnauthorized):
				reason = "unauthorized"
			case errors.Is(err, scano.ErrUnavailable):
				reason = "upstream unavailable"
			}
			logging.Ctx(ctx).Warn().Err(err).Str("material_id", id).Msg("Bulk delete item failed")
			result.Failed = append(result.Failed, models.BulkFailure{ID: id, Reason: reason})
			continue
		}
		result.Deleted = append(result.Deleted, id)
	}

	return result
}
