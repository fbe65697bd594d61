package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/fadedpez/aetheria/internal/logging"
	"github.com/fadedpez/aetheria/internal/types"
	"github.com/fadedpez/aetheria/pkg/entities"
	"github.com/fadedpez/aetheria/pkg/feedback"
	"github.com/fadedpez/aetheria/pkg/services/wallet"
	"github.com/shopspring/decimal"
)

var (
	ErrDeclined       = errors.New("purchase was not confirmed")
	ErrUnknownProduct = errors.New("unknown product")
)

// Ledger is the part of the wallet purchases credit
type Ledger interface {
	Credit(ctx context.Context, amount int64) (int64, error)
}

// Confirmer asks the user to approve a grant before it lands
type Confirmer interface {
	Confirm(ctx context.Context, product entities.Product) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer
type ConfirmFunc func(ctx context.Context, product entities.Product) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, product entities.Product) (bool, error) {
	return f(ctx, product)
}

// Receipt describes a completed grant
type Receipt struct {
	Product entities.Product
	Granted int64
	Balance int64
}

// DefaultCatalog returns the credit packages on sale
func DefaultCatalog() []entities.Product {
	return []entities.Product{
		{ID: "pkg_75", Base: 50, Bonus: 25, Price: decimal.RequireFromString("0.99")},
		{ID: "pkg_300", Base: 200, Bonus: 100, Price: decimal.RequireFromString("2.99"), Popular: true},
		{ID: "pkg_1500", Base: 1000, Bonus: 500, Price: decimal.RequireFromString("9.99")},
	}
}

// Approve confirms every grant
var Approve = ConfirmFunc(func(context.Context, entities.Product) (bool, error) { return true, nil })

// Service simulates in-app purchases and rewarded ads
type Service struct {
	ledger   Ledger
	catalog  []entities.Product
	feedback feedback.Player
	logger   *logging.Logger
}

// NewService creates a store over the default catalog; player and logger may be nil
func NewService(ledger Ledger, player feedback.Player, logger *logging.Logger) *Service {
	if player == nil {
		player = feedback.Noop{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{
		ledger:   ledger,
		catalog:  DefaultCatalog(),
		feedback: player,
		logger:   logger,
	}
}

// Catalog returns a copy of the products on sale
func (s *Service) Catalog() []entities.Product {
	out := make([]entities.Product, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// Product looks up a package by ID
func (s *Service) Product(id string) (entities.Product, bool) {
	for _, p := range s.catalog {
		if p.ID == id {
			return p, true
		}
	}
	return entities.Product{}, false
}

// Purchase sells the package with productID once confirm approves it
func (s *Service) Purchase(ctx context.Context, productID string, confirm Confirmer) (*Receipt, error) {
	product, ok := s.Product(productID)
	if !ok {
		return nil, types.WrapError(types.ErrProductNotFound,
			fmt.Sprintf("There is no package called %q.", productID), ErrUnknownProduct)
	}
	return s.grant(ctx, product, confirm)
}

// WatchAd grants the rewarded-ad credits once confirm reports the ad was watched
func (s *Service) WatchAd(ctx context.Context, confirm Confirmer) (*Receipt, error) {
	return s.grant(ctx, entities.Product{
		ID:    entities.AdRewardProductID,
		Base:  entities.AdRewardCredits,
		Price: decimal.Zero,
	}, confirm)
}

// Grant credits amount under productID after confirmation
func (s *Service) Grant(ctx context.Context, amount int64, productID string, confirm Confirmer) (*Receipt, error) {
	if amount <= 0 {
		return nil, types.NewError(types.ErrInvalidAmount, "Grant amount must be positive.")
	}
	return s.grant(ctx, entities.Product{ID: productID, Base: amount, Price: decimal.Zero}, confirm)
}

func (s *Service) grant(ctx context.Context, product entities.Product, confirm Confirmer) (*Receipt, error) {
	s.feedback.Pulse(feedback.HapticLight)

	if confirm == nil {
		return nil, types.WrapError(types.ErrPurchaseDeclined, "Purchase cancelled.", ErrDeclined)
	}
	ok, err := confirm.Confirm(ctx, product)
	if err != nil {
		return nil, types.WrapError(types.ErrPurchaseDeclined, "The purchase could not be confirmed.", err)
	}
	if !ok {
		s.logger.Info("[STORE] %s declined", product.ID)
		return nil, types.WrapError(types.ErrPurchaseDeclined, "Purchase cancelled.", ErrDeclined)
	}

	amount := product.Total()
	balance, err := s.ledger.Credit(context.WithoutCancel(ctx), amount)
	if errors.Is(err, wallet.ErrBalanceOverflow) {
		return nil, types.WrapError(types.ErrInvalidAmount, "Your wallet cannot hold that many credits.", err)
	}
	if err != nil {
		return nil, types.WrapError(types.ErrInternalError, "Could not add credits.", err)
	}

	s.logger.Info("[STORE] Granted %d credits for %s, balance %d", amount, product.ID, balance)
	s.feedback.PlaySound(feedback.SoundPurchase)
	s.feedback.Pulse(feedback.HapticSuccess)

	return &Receipt{Product: product, Granted: amount, Balance: balance}, nil
}
