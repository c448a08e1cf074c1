package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"bistro/internal/cache"
	"bistro/internal/model"
	"bistro/internal/repository"
)

const (
	summaryCacheKey = "stats:summary"
	summaryCacheTTL = 30 * time.Second
)

// Summary is the on-demand aggregate over users, catalog and the payment
// ledger. Counts are as fresh as the cache TTL; TotalRevenue is the exact
// ledger sum at computation time.
type Summary struct {
	UserCount     int64           `json:"users"`
	MenuItemCount int64           `json:"menu_items"`
	OrderCount    int64           `json:"orders"`
	TotalRevenue  decimal.Decimal `json:"revenue"`
}

// StatsService derives read-only analytics from the payment ledger.
type StatsService interface {
	Summary(ctx context.Context) (*Summary, error)
	OrdersByCategory(ctx context.Context) ([]model.CategoryStat, error)
}

type statsService struct {
	userRepo    repository.UserRepository
	menuRepo    repository.MenuRepository
	paymentRepo repository.PaymentRepository
	cache       *cache.Client
}

// NewStatsService creates a new stats service.
func NewStatsService(
	userRepo repository.UserRepository,
	menuRepo repository.MenuRepository,
	paymentRepo repository.PaymentRepository,
	cache *cache.Client,
) StatsService {
	return &statsService{
		userRepo:    userRepo,
		menuRepo:    menuRepo,
		paymentRepo: paymentRepo,
		cache:       cache,
	}
}

func (s *statsService) Summary(ctx context.Context) (*Summary, error) {
	if data, _ := s.cache.Get(ctx, summaryCacheKey); data != nil {
		var cached Summary
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	menuItems, err := s.menuRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count menu items: %w", err)
	}
	orders, err := s.paymentRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count payments: %w", err)
	}
	revenue, err := s.paymentRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("total revenue: %w", err)
	}

	summary := &Summary{
		UserCount:     users,
		MenuItemCount: menuItems,
		OrderCount:    orders,
		TotalRevenue:  revenue,
	}

	if payload, err := json.Marshal(summary); err == nil {
		_ = s.cache.Set(ctx, summaryCacheKey, payload, summaryCacheTTL)
	}
	return summary, nil
}

func (s *statsService) OrdersByCategory(ctx context.Context) ([]model.CategoryStat, error) {
	stats, err := s.paymentRepo.RevenueByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("revenue by category: %w", err)
	}
	return stats, nil
}
