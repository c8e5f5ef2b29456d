package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"whatsup/internal/models/response_models"
	"whatsup/internal/store"
	"whatsup/pkg/utils"
)

// Premium is a single fixed product: one upgrade unlocking unlimited
// members.
const (
	premiumAmountMinor = 999 // $9.99 / year
	premiumCurrency    = "USD"
)

const (
	checkoutStatusPending   = "PENDING"
	checkoutStatusConfirmed = "CONFIRMED"
)

// PaymentProvider settles a checkout. The demo provider approves after a
// simulated delay; real providers can decline or time out, which is why
// Settle is fallible and context-aware.
type PaymentProvider interface {
	Settle(ctx context.Context, orderCode int64, amountMinor int64) error
}

type MockPaymentProvider struct {
	Delay time.Duration
}

func (m *MockPaymentProvider) Settle(ctx context.Context, orderCode int64, amountMinor int64) error {
	select {
	case <-time.After(m.Delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type PaymentServiceInterface interface {
	CreateCheckout(ctx context.Context, familyID string) (response_models.CheckoutResponse, error)
	ConfirmCheckout(ctx context.Context, familyID string, orderCode int64) (response_models.CheckoutResponse, error)
}

type pendingCheckout struct {
	familyID    string
	amountMinor int64
}

type PaymentService struct {
	store    *store.FamilyStore
	provider PaymentProvider

	mu      sync.Mutex
	pending map[int64]pendingCheckout
}

func NewPaymentService(familyStore *store.FamilyStore, provider PaymentProvider) PaymentServiceInterface {
	return &PaymentService{
		store:    familyStore,
		provider: provider,
		pending:  make(map[int64]pendingCheckout),
	}
}

// CreateCheckout opens a pending checkout for the premium upgrade. The
// order code follows the provider convention: unix seconds plus a short
// random suffix, within 13 digits.
func (p *PaymentService) CreateCheckout(ctx context.Context, familyID string) (response_models.CheckoutResponse, error) {
	if _, ok := p.store.GetFamily(familyID); !ok {
		return response_models.CheckoutResponse{}, utils.ErrFamilyNotFound
	}

	p.mu.Lock()
	var orderCode int64
	for {
		orderCode = time.Now().Unix()%1_000_000_000 + int64(rand.Intn(9000)+1000)
		if _, exists := p.pending[orderCode]; !exists {
			break
		}
	}
	p.pending[orderCode] = pendingCheckout{familyID: familyID, amountMinor: premiumAmountMinor}
	p.mu.Unlock()

	return response_models.CheckoutResponse{
		OrderCode:   orderCode,
		AmountMinor: premiumAmountMinor,
		Currency:    premiumCurrency,
		Description: fmt.Sprintf("Premium upgrade (%d.%02d %s / year)", premiumAmountMinor/100, premiumAmountMinor%100, premiumCurrency),
		Status:      checkoutStatusPending,
	}, nil
}

// ConfirmCheckout settles the pending checkout with the provider and, on
// success, grants premium. A checkout is bound to the family it was opened
// for; if that family has been discarded by the time the provider settles,
// the completion is dropped rather than mutating a moved-on store.
func (p *PaymentService) ConfirmCheckout(ctx context.Context, familyID string, orderCode int64) (response_models.CheckoutResponse, error) {
	p.mu.Lock()
	checkout, ok := p.pending[orderCode]
	p.mu.Unlock()
	if !ok || checkout.familyID != familyID {
		return response_models.CheckoutResponse{}, utils.ErrCheckoutNotFound
	}

	if err := p.provider.Settle(ctx, orderCode, checkout.amountMinor); err != nil {
		return response_models.CheckoutResponse{}, utils.ErrPaymentDeclined
	}

	family, ok := p.store.GetFamily(checkout.familyID)
	if !ok {
		// Stale completion: the session logged out mid-payment.
		log.Printf("checkout %d settled for discarded family %s, dropping", orderCode, checkout.familyID)
		return response_models.CheckoutResponse{}, utils.ErrCheckoutNotFound
	}

	family.IsPremium = true
	p.store.ReplaceFamily(family)

	p.mu.Lock()
	delete(p.pending, orderCode)
	p.mu.Unlock()

	return response_models.CheckoutResponse{
		OrderCode:   orderCode,
		AmountMinor: checkout.amountMinor,
		Currency:    premiumCurrency,
		Status:      checkoutStatusConfirmed,
	}, nil
}
