package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	errs "bistro/internal/errors"
	"bistro/internal/model"
)

func newCheckoutFixture() (*MockPaymentRepository, *MockCartRepository, *MockMenuRepository, *MockIntentClient, CheckoutService) {
	paymentRepo := new(MockPaymentRepository)
	cartRepo := new(MockCartRepository)
	menuRepo := new(MockMenuRepository)
	intents := new(MockIntentClient)
	svc := NewCheckoutService(paymentRepo, cartRepo, menuRepo, intents)
	return paymentRepo, cartRepo, menuRepo, intents, svc
}

func TestSettle_Validation(t *testing.T) {
	cartID := uuid.New()
	menuID := uuid.New()

	tests := []struct {
		name     string
		sub      SettlementSubmission
		expected error
	}{
		{
			name: "empty cart ids",
			sub: SettlementSubmission{
				CustomerEmail: "alice@example.com",
				Price:         decimal.NewFromInt(10),
			},
			expected: errs.ErrCartEmpty,
		},
		{
			name: "cart and menu ids disagree",
			sub: SettlementSubmission{
				CustomerEmail: "alice@example.com",
				Price:         decimal.NewFromInt(10),
				CartIDs:       []uuid.UUID{cartID},
				MenuIDs:       []uuid.UUID{menuID, uuid.New()},
			},
			expected: errs.ErrCartMismatch,
		},
		{
			name: "non-positive price",
			sub: SettlementSubmission{
				CustomerEmail: "alice@example.com",
				Price:         decimal.Zero,
				CartIDs:       []uuid.UUID{cartID},
				MenuIDs:       []uuid.UUID{menuID},
			},
			expected: errs.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paymentRepo, _, _, _, svc := newCheckoutFixture()

			result, err := svc.Settle(context.Background(), tt.sub)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.expected)
			paymentRepo.AssertNotCalled(t, "SettleCart", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSettle_Success(t *testing.T) {
	paymentRepo, cartRepo, _, _, svc := newCheckoutFixture()

	cartIDs := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	menuIDs := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	price := decimal.RequireFromString("42.50")

	carts := []model.CartItem{
		{ID: cartIDs[0], MenuItemID: menuIDs[0], Price: decimal.RequireFromString("14.50")},
		{ID: cartIDs[1], MenuItemID: menuIDs[1], Price: decimal.RequireFromString("14.00")},
		{ID: cartIDs[2], MenuItemID: menuIDs[2], Price: decimal.RequireFromString("14.00")},
	}
	cartRepo.On("FindByIDs", mock.Anything, cartIDs).Return(carts, nil)

	var settled *model.Payment
	paymentRepo.On("SettleCart", mock.Anything, mock.AnythingOfType("*model.Payment"), cartIDs).
		Run(func(args mock.Arguments) {
			settled = args.Get(1).(*model.Payment)
		}).
		Return(int64(3), nil)

	result, err := svc.Settle(context.Background(), SettlementSubmission{
		CustomerEmail: "alice@example.com",
		Price:         price,
		TransactionID: "pi_123",
		CartIDs:       cartIDs,
		MenuIDs:       menuIDs,
	})

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.NotEqual(t, uuid.Nil, result.PaymentID)
	assert.Equal(t, int64(3), result.RemovedCartCount)

	assert.NotNil(t, settled)
	assert.Equal(t, result.PaymentID, settled.ID)
	assert.Equal(t, "alice@example.com", settled.CustomerEmail)
	assert.True(t, price.Equal(settled.Price))
	assert.Len(t, settled.Lines, 3)
	// transacted prices captured from the cart lines
	assert.True(t, carts[0].Price.Equal(settled.Lines[0].UnitPrice))
	assert.Equal(t, cartIDs[0], settled.Lines[0].CartItemID)
	assert.Equal(t, menuIDs[0], settled.Lines[0].MenuItemID)

	paymentRepo.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
}

func TestSettle_StorageFailureAbortsWholeOperation(t *testing.T) {
	paymentRepo, cartRepo, _, _, svc := newCheckoutFixture()

	cartIDs := []uuid.UUID{uuid.New()}
	menuIDs := []uuid.UUID{uuid.New()}

	cartRepo.On("FindByIDs", mock.Anything, cartIDs).Return([]model.CartItem{
		{ID: cartIDs[0], MenuItemID: menuIDs[0], Price: decimal.NewFromInt(5)},
	}, nil)
	paymentRepo.On("SettleCart", mock.Anything, mock.Anything, cartIDs).
		Return(int64(0), errors.New("connection refused"))

	result, err := svc.Settle(context.Background(), SettlementSubmission{
		CustomerEmail: "alice@example.com",
		Price:         decimal.NewFromInt(5),
		CartIDs:       cartIDs,
		MenuIDs:       menuIDs,
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
}

// Settlement is not idempotent under retry: the second call removes nothing
// but still appends a second ledger record. That duplication is the
// documented contract, not a bug to swallow.
func TestSettle_RetryCreatesSecondLedgerEntry(t *testing.T) {
	paymentRepo, cartRepo, menuRepo, _, svc := newCheckoutFixture()

	cartIDs := []uuid.UUID{uuid.New(), uuid.New()}
	menuIDs := []uuid.UUID{uuid.New(), uuid.New()}

	// cart lines already deleted by the first settlement
	cartRepo.On("FindByIDs", mock.Anything, cartIDs).Return([]model.CartItem{}, nil)
	menuRepo.On("FindByIDs", mock.Anything, menuIDs).Return([]model.MenuItem{
		{ID: menuIDs[0], Price: decimal.NewFromInt(5)},
		{ID: menuIDs[1], Price: decimal.NewFromInt(5)},
	}, nil)
	paymentRepo.On("SettleCart", mock.Anything, mock.AnythingOfType("*model.Payment"), cartIDs).
		Return(int64(0), nil)

	result, err := svc.Settle(context.Background(), SettlementSubmission{
		CustomerEmail: "alice@example.com",
		Price:         decimal.NewFromInt(10),
		CartIDs:       cartIDs,
		MenuIDs:       menuIDs,
	})

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, int64(0), result.RemovedCartCount)
	assert.NotEqual(t, uuid.Nil, result.PaymentID)
	paymentRepo.AssertExpectations(t)
}

func TestCreatePaymentIntent(t *testing.T) {
	tests := []struct {
		name      string
		price     decimal.Decimal
		setupMock func(m *MockIntentClient)
		secret    string
		expected  error
	}{
		{
			name:  "success converts price to cents",
			price: decimal.RequireFromString("42.50"),
			setupMock: func(m *MockIntentClient) {
				m.On("CreateIntent", mock.Anything, int64(4250), "usd").Return("pi_secret_abc", nil)
			},
			secret: "pi_secret_abc",
		},
		{
			name:      "non-positive price rejected",
			price:     decimal.Zero,
			setupMock: func(m *MockIntentClient) {},
			expected:  errs.ErrInvalidAmount,
		},
		{
			name:  "processor failure",
			price: decimal.NewFromInt(10),
			setupMock: func(m *MockIntentClient) {
				m.On("CreateIntent", mock.Anything, int64(1000), "usd").Return("", errors.New("upstream 500"))
			},
			expected: errs.ErrPaymentIntent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, intents, svc := newCheckoutFixture()
			tt.setupMock(intents)

			secret, err := svc.CreatePaymentIntent(context.Background(), tt.price)

			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
				assert.Empty(t, secret)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.secret, secret)
			}
			intents.AssertExpectations(t)
		})
	}
}
