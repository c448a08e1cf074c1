package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	errs "bistro/internal/errors"
	"bistro/internal/model"
	"bistro/internal/processor"
	"bistro/internal/repository"
)

const intentCurrency = "usd"

// SettlementSubmission is a completed payment as submitted for settlement.
// CartIDs and MenuIDs are parallel: MenuIDs[i] is the catalog item the cart
// line CartIDs[i] refers to.
type SettlementSubmission struct {
	CustomerEmail string
	Price         decimal.Decimal
	TransactionID string
	CartIDs       []uuid.UUID
	MenuIDs       []uuid.UUID
}

// SettlementResult reports the outcome of a settlement.
type SettlementResult struct {
	PaymentID        uuid.UUID `json:"payment_id"`
	RemovedCartCount int64     `json:"removed_cart_count"`
}

// CheckoutService converts carts into ledger entries and fronts the
// external payment processor.
type CheckoutService interface {
	// Settle persists the payment and retires the redeemed cart lines as
	// one unit. It does not check that the cart ids still exist: retrying
	// a settlement yields RemovedCartCount 0 and a duplicate ledger entry,
	// which callers must treat as expected.
	Settle(ctx context.Context, sub SettlementSubmission) (*SettlementResult, error)
	History(ctx context.Context, email string) ([]model.Payment, error)
	CreatePaymentIntent(ctx context.Context, price decimal.Decimal) (clientSecret string, err error)
}

type checkoutService struct {
	paymentRepo repository.PaymentRepository
	cartRepo    repository.CartRepository
	menuRepo    repository.MenuRepository
	intents     processor.IntentClient
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	paymentRepo repository.PaymentRepository,
	cartRepo repository.CartRepository,
	menuRepo repository.MenuRepository,
	intents processor.IntentClient,
) CheckoutService {
	return &checkoutService{
		paymentRepo: paymentRepo,
		cartRepo:    cartRepo,
		menuRepo:    menuRepo,
		intents:     intents,
	}
}

func (s *checkoutService) Settle(ctx context.Context, sub SettlementSubmission) (*SettlementResult, error) {
	if len(sub.CartIDs) == 0 {
		return nil, errs.ErrCartEmpty
	}
	if len(sub.MenuIDs) != len(sub.CartIDs) {
		return nil, errs.ErrCartMismatch
	}
	if sub.Price.LessThanOrEqual(decimal.Zero) {
		return nil, errs.ErrInvalidAmount
	}

	lines, err := s.buildLines(ctx, sub)
	if err != nil {
		return nil, err
	}

	payment := &model.Payment{
		ID:            uuid.New(),
		CustomerEmail: sub.CustomerEmail,
		Price:         sub.Price,
		TransactionID: sub.TransactionID,
		Lines:         lines,
	}

	removed, err := s.paymentRepo.SettleCart(ctx, payment, sub.CartIDs)
	if err != nil {
		// no payment is complete without a persisted record
		return nil, fmt.Errorf("%w: settle cart: %v", errs.ErrStorageUnavailable, err)
	}

	return &SettlementResult{
		PaymentID:        payment.ID,
		RemovedCartCount: removed,
	}, nil
}

// buildLines captures the transacted unit price per redeemed cart line.
// When a cart line is already gone (settlement retry) the current catalog
// price stands in, so the ledger entry still carries per-line prices.
func (s *checkoutService) buildLines(ctx context.Context, sub SettlementSubmission) ([]model.PaymentLine, error) {
	carts, err := s.cartRepo.FindByIDs(ctx, sub.CartIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: load cart lines: %v", errs.ErrStorageUnavailable, err)
	}
	cartPrice := make(map[uuid.UUID]decimal.Decimal, len(carts))
	for _, c := range carts {
		cartPrice[c.ID] = c.Price
	}

	var missingMenu []uuid.UUID
	for i, cartID := range sub.CartIDs {
		if _, ok := cartPrice[cartID]; !ok {
			missingMenu = append(missingMenu, sub.MenuIDs[i])
		}
	}
	menuPrice := make(map[uuid.UUID]decimal.Decimal)
	if len(missingMenu) > 0 {
		items, err := s.menuRepo.FindByIDs(ctx, missingMenu)
		if err != nil {
			return nil, fmt.Errorf("%w: load menu items: %v", errs.ErrStorageUnavailable, err)
		}
		for _, m := range items {
			menuPrice[m.ID] = m.Price
		}
	}

	lines := make([]model.PaymentLine, 0, len(sub.CartIDs))
	for i, cartID := range sub.CartIDs {
		unit, ok := cartPrice[cartID]
		if !ok {
			unit = menuPrice[sub.MenuIDs[i]]
		}
		lines = append(lines, model.PaymentLine{
			CartItemID: cartID,
			MenuItemID: sub.MenuIDs[i],
			UnitPrice:  unit,
		})
	}
	return lines, nil
}

func (s *checkoutService) History(ctx context.Context, email string) ([]model.Payment, error) {
	return s.paymentRepo.FindByEmail(ctx, email)
}

func (s *checkoutService) CreatePaymentIntent(ctx context.Context, price decimal.Decimal) (string, error) {
	if price.LessThanOrEqual(decimal.Zero) {
		return "", errs.ErrInvalidAmount
	}
	cents := price.Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	secret, err := s.intents.CreateIntent(ctx, cents, intentCurrency)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrPaymentIntent, err)
	}
	return secret, nil
}
