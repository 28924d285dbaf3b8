package domain

import "context"

type DealRepository interface {
	// Write paths
	InsertDeal(ctx context.Context, d NewDeal, discountAmount int) (Deal, error)
	UpdateDeal(ctx context.Context, id int64, u DealUpdate) (Deal, error)
	DeleteDeal(ctx context.Context, id int64) error

	// Read paths
	ListDeals(ctx context.Context) ([]Deal, error)
	TodayDeals(ctx context.Context, user UserID, today string) ([]Deal, error)
}

// ModelRequest is one generation call: a system instruction, a user
// instruction, and optionally the provider's web search tool.
type ModelRequest struct {
	System    string
	User      string
	MaxTokens int
	WebSearch bool
}

// ContentBlock is one block of the provider's ordered response content.
// Only text blocks carry payload the pipeline consumes.
type ContentBlock struct {
	Type string
	Text string
}

type ModelClient interface {
	CreateMessage(ctx context.Context, req ModelRequest) ([]ContentBlock, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// DisplayNotifier pushes a title/message pair to a user's smart display.
type DisplayNotifier interface {
	Send(ctx context.Context, user UserID, title, message string) error
}
