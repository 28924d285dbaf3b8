package app

import (
	"context"
	"time"

	"otasuke/internal/domain"
)

// AdviceService runs the advice pipeline: normalize the request, render the
// prompt, call the model, extract the JSON payload, stamp the generation time.
// Every call is independent; the service holds no per-request state.
type AdviceService struct {
	model domain.ModelClient
}

func NewAdviceService(m domain.ModelClient) *AdviceService {
	return &AdviceService{model: m}
}

const (
	searchMaxTokens = 2000
	scriptMaxTokens = 1000
)

var errMissingParams = &domain.ValidationError{Message: "必要な情報が不足しています"}

// normalizeFlight validates required fields and fills the documented defaults.
func normalizeFlight(req domain.FlightSearchRequest) (domain.FlightSearchRequest, error) {
	if req.Route == "" || req.Timing == "" || req.TimeOfDay == "" {
		return req, errMissingParams
	}
	if req.UserLocation == "" {
		req.UserLocation = domain.DefaultLocation
	}
	if req.AgeGroup == "" {
		req.AgeGroup = domain.DefaultAgeGroup
	}
	return req, nil
}

func normalizeGoods(req domain.GoodsSearchRequest) (domain.GoodsSearchRequest, error) {
	if req.Product == "" || req.Priority == "" {
		return req, errMissingParams
	}
	if req.UserLocation == "" {
		req.UserLocation = domain.DefaultLocation
	}
	if req.AgeGroup == "" {
		req.AgeGroup = domain.DefaultAgeGroup
	}
	if req.Transport == "" {
		req.Transport = domain.DefaultTransport
	}
	return req, nil
}

func (s *AdviceService) SearchFlight(ctx context.Context, req domain.FlightSearchRequest) (domain.FlightAdvice, error) {
	req, err := normalizeFlight(req)
	if err != nil {
		return domain.FlightAdvice{}, err
	}
	p := flightPrompt(req)
	blocks, err := s.model.CreateMessage(ctx, domain.ModelRequest{
		System:    p.System,
		User:      p.User,
		MaxTokens: searchMaxTokens,
		WebSearch: true,
	})
	if err != nil {
		return domain.FlightAdvice{}, &domain.ProviderError{Err: err}
	}

	var out domain.FlightAdvice
	if err := extractJSON(blocks, &out); err != nil {
		return domain.FlightAdvice{}, err
	}
	if out.Advice.MainAdvice == "" {
		return domain.FlightAdvice{}, &domain.ExtractionError{Reason: "response missing advice section"}
	}
	out.GeneratedAt = time.Now().UTC().Format(time.RFC3339)
	return out, nil
}

func (s *AdviceService) SearchGoods(ctx context.Context, req domain.GoodsSearchRequest) (domain.GoodsAdvice, error) {
	req, err := normalizeGoods(req)
	if err != nil {
		return domain.GoodsAdvice{}, err
	}
	p := goodsPrompt(req)
	blocks, err := s.model.CreateMessage(ctx, domain.ModelRequest{
		System:    p.System,
		User:      p.User,
		MaxTokens: searchMaxTokens,
		WebSearch: true,
	})
	if err != nil {
		return domain.GoodsAdvice{}, &domain.ProviderError{Err: err}
	}

	var out domain.GoodsAdvice
	if err := extractJSON(blocks, &out); err != nil {
		return domain.GoodsAdvice{}, err
	}
	if out.Recommendation.ProductName == "" && out.Advice.MainAdvice == "" {
		return domain.GoodsAdvice{}, &domain.ExtractionError{Reason: "response missing recommendation"}
	}
	out.GeneratedAt = time.Now().UTC().Format(time.RFC3339)
	return out, nil
}

// GenerateScript produces the promotional read-aloud text for a deal. The
// model answers in plain prose, so the text blocks are returned as-is with no
// JSON extraction.
func (s *AdviceService) GenerateScript(ctx context.Context, deal domain.Deal) (string, error) {
	p := scriptPrompt(deal)
	blocks, err := s.model.CreateMessage(ctx, domain.ModelRequest{
		System:    p.System,
		User:      p.User,
		MaxTokens: scriptMaxTokens,
	})
	if err != nil {
		return "", &domain.ProviderError{Err: err}
	}
	return joinText(blocks), nil
}
