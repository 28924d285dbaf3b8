package app

import (
	"context"
	"time"

	"otasuke/internal/domain"
)

// SettingsService stores the per-user setup blob wholesale under a fixed key
// prefix. Reads apply schema defaults so blobs written before a field existed
// still come back complete.
type SettingsService struct {
	store domain.Cache
}

func NewSettingsService(store domain.Cache) *SettingsService {
	return &SettingsService{store: store}
}

func settingsKey(user domain.UserID) string { return "otasuke:settings:" + string(user) }

func (s *SettingsService) Get(ctx context.Context, user domain.UserID) (domain.UserSettings, error) {
	if !user.Valid() {
		return domain.UserSettings{}, &domain.ValidationError{Message: "User ID is required"}
	}
	var st domain.UserSettings
	ok, err := s.store.Get(ctx, settingsKey(user), &st)
	if err != nil {
		return domain.UserSettings{}, err
	}
	if !ok {
		return domain.UserSettings{}, domain.ErrNotFound
	}
	st.ApplyDefaults()
	return st, nil
}

func (s *SettingsService) Put(ctx context.Context, user domain.UserID, st domain.UserSettings) (domain.UserSettings, error) {
	if !user.Valid() {
		return domain.UserSettings{}, &domain.ValidationError{Message: "User ID is required"}
	}
	st.ApplyDefaults()
	if err := st.Validate(); err != nil {
		return domain.UserSettings{}, err
	}
	now := time.Now().UTC()
	if st.CreatedAt.IsZero() {
		st.CreatedAt = now
	}
	st.UpdatedAt = now
	// settings persist until overwritten; no TTL
	if err := s.store.Set(ctx, settingsKey(user), st, 0); err != nil {
		return domain.UserSettings{}, err
	}
	return st, nil
}
