package service

import (
	"context"

	"github.com/Venkat-46/devs-dairy-backend/internal/model"
)

// LogService runs CRUD over standup entries. Every operation passes the
// acting identity through the Guard before touching the store, and the
// store itself re-checks ownership on each mutation, so neither layer
// alone is the last line of defense.
type LogService struct {
	logs  LogStore
	guard *Guard
}

// NewLogService creates a new LogService.
func NewLogService(logs LogStore, guard *Guard) *LogService {
	return &LogService{logs: logs, guard: guard}
}

// AddLog creates a standup entry owned by targetUserID and returns it
// with its assigned id.
func (s *LogService) AddLog(ctx context.Context, actor string, targetUserID int64, req model.LogEntryRequest) (*model.LogEntry, error) {
	if _, err := s.guard.Authorize(ctx, actor, targetUserID); err != nil {
		return nil, err
	}

	entry := &model.LogEntry{
		UserID:    targetUserID,
		Date:      req.Date,
		Yesterday: req.Yesterday,
		Today:     req.Today,
		Blocker:   req.Blocker,
	}

	if err := s.logs.Insert(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// ListLogs returns all of targetUserID's entries in insertion order. A
// user with no entries gets an empty array, never null.
func (s *LogService) ListLogs(ctx context.Context, actor string, targetUserID int64) ([]model.LogEntry, error) {
	if _, err := s.guard.Authorize(ctx, actor, targetUserID); err != nil {
		return nil, err
	}

	entries, err := s.logs.ListByUser(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []model.LogEntry{}
	}

	return entries, nil
}

// GetLog returns one of targetUserID's entries by log id.
func (s *LogService) GetLog(ctx context.Context, actor string, targetUserID, logID int64) (*model.LogEntry, error) {
	if _, err := s.guard.Authorize(ctx, actor, targetUserID); err != nil {
		return nil, err
	}

	return s.logs.GetOne(ctx, targetUserID, logID)
}

// UpdateLog replaces all four content fields of the targeted entry. It
// either changes exactly that one row or changes nothing and reports
// repository.ErrLogNotFound.
func (s *LogService) UpdateLog(ctx context.Context, actor string, targetUserID, logID int64, req model.LogEntryRequest) error {
	if _, err := s.guard.Authorize(ctx, actor, targetUserID); err != nil {
		return err
	}

	entry := &model.LogEntry{
		ID:        logID,
		UserID:    targetUserID,
		Date:      req.Date,
		Yesterday: req.Yesterday,
		Today:     req.Today,
		Blocker:   req.Blocker,
	}

	return s.logs.Update(ctx, entry)
}

// DeleteLog permanently removes the targeted entry.
func (s *LogService) DeleteLog(ctx context.Context, actor string, targetUserID, logID int64) error {
	if _, err := s.guard.Authorize(ctx, actor, targetUserID); err != nil {
		return err
	}

	return s.logs.Delete(ctx, targetUserID, logID)
}
