package app

import (
	"context"
	"fmt"
	"time"

	"otasuke/internal/domain"
)

// DealService wraps the deals repository with a small cache-aside layer for
// the today's-deals read path, the only query the displays poll repeatedly.
// Admin reads and all writes go straight to the store; every write evicts the
// affected user's today cache.
type DealService struct {
	repo     domain.DealRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewDealService(r domain.DealRepository, c domain.Cache, ttl time.Duration) *DealService {
	return &DealService{repo: r, cache: c, cacheTTL: ttl}
}

func todayKey(user domain.UserID, today string) string {
	return fmt.Sprintf("otasuke:today:%s:%s", user, today)
}

// Today returns the active deals whose sale window contains the given date,
// ordered by discount descending.
func (s *DealService) Today(ctx context.Context, user domain.UserID, today string) ([]domain.Deal, error) {
	if !user.Valid() {
		return nil, &domain.ValidationError{Message: "User ID is required"}
	}
	key := todayKey(user, today)
	var cached []domain.Deal
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached, nil
	}
	deals, err := s.repo.TodayDeals(ctx, user, today)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, deals, int(s.cacheTTL.Seconds()))
	return deals, nil
}

func (s *DealService) List(ctx context.Context) ([]domain.Deal, error) {
	return s.repo.ListDeals(ctx)
}

// Create inserts a deal, deriving discount_amount from the submitted prices.
func (s *DealService) Create(ctx context.Context, d domain.NewDeal) (domain.Deal, error) {
	if !d.UserID.Valid() || d.StoreName == "" || d.ProductName == "" {
		return domain.Deal{}, &domain.ValidationError{Message: "必要な情報が不足しています"}
	}
	deal, err := s.repo.InsertDeal(ctx, d, d.RegularPrice-d.SalePrice)
	if err != nil {
		return domain.Deal{}, err
	}
	s.invalidateToday(ctx, deal.UserID)
	return deal, nil
}

// Update writes the explicit column set and a server-captured updated_at.
// discount_amount is left untouched unless the client supplies it; the new
// prices are never used to recompute it.
func (s *DealService) Update(ctx context.Context, id int64, u domain.DealUpdate) (domain.Deal, error) {
	deal, err := s.repo.UpdateDeal(ctx, id, u)
	if err != nil {
		return domain.Deal{}, err
	}
	s.invalidateToday(ctx, deal.UserID)
	return deal, nil
}

func (s *DealService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteDeal(ctx, id); err != nil {
		return err
	}
	// The deleted row's user is unknown at this point; evict both.
	s.invalidateToday(ctx, domain.UserMother)
	s.invalidateToday(ctx, domain.UserGibo)
	return nil
}

func (s *DealService) invalidateToday(ctx context.Context, user domain.UserID) {
	if s.cache == nil {
		return
	}
	today := time.Now().UTC().Format("2006-01-02")
	_ = s.cache.Del(ctx, todayKey(user, today))
}
