package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/ovenside/storefront-api/internal/core"
	"github.com/ovenside/storefront-api/internal/domain/auth"
	"github.com/ovenside/storefront-api/internal/domain/model"
	apperrors "github.com/ovenside/storefront-api/internal/errors"
	"github.com/ovenside/storefront-api/internal/observability/statsd"
)

// CartServiceConfig tunes the loyalty program.
type CartServiceConfig struct {
	// PointsPerUnit is credited per ordered unit on PlaceOrder.
	PointsPerUnit int
	// RewardThreshold unlocks the free reward and is the redemption debit.
	RewardThreshold int
}

// DefaultCartServiceConfig returns the production loyalty tuning.
func DefaultCartServiceConfig() CartServiceConfig {
	return CartServiceConfig{PointsPerUnit: 100, RewardThreshold: 1000}
}

func (c *CartServiceConfig) sanitize() {
	if c.PointsPerUnit < 1 {
		c.PointsPerUnit = 100
	}
	if c.RewardThreshold < 1 {
		c.RewardThreshold = 1000
	}
}

// CartServiceOptions groups dependencies for CartService.
type CartServiceOptions struct {
	State   core.StateRepository // Required: snapshot and balance persistence
	Config  CartServiceConfig
	Logger  *slog.Logger // Optional: structured logger
	Metrics statsd.Sink  // Optional: order/redemption counters
}

// CartService is the cart and loyalty engine. It owns the in-memory cart of
// the active user, keeps the derived total consistent after every mutation,
// and persists snapshots best-effort: store failures are logged and the
// in-memory state stays authoritative for the session.
//
// The engine is keyed to one active user at a time (the storefront has a
// single live session); Initialize re-keys it. All methods are safe for
// concurrent use.
type CartService struct {
	state   core.StateRepository
	cfg     CartServiceConfig
	logger  *slog.Logger
	metrics statsd.Sink

	mu     sync.Mutex
	userID string
	cart   model.CartState
}

// NewCartService constructs a new CartService keyed to the guest identity.
func NewCartService(opts CartServiceOptions) *CartService {
	if opts.State == nil {
		panic("StateRepository is required")
	}
	cfg := opts.Config
	cfg.sanitize()

	return &CartService{
		state:   opts.State,
		cfg:     cfg,
		logger:  opts.Logger,
		metrics: opts.Metrics,
		userID:  auth.GuestUserID,
	}
}

// Initialize loads the persisted snapshot for userID (empty on none or read
// failure), recomputes the total, and makes userID the active user.
func (s *CartService) Initialize(ctx context.Context, userID string) model.CartState {
	if userID == "" {
		userID = auth.GuestUserID
	}

	lines, err := s.state.LoadCart(ctx, userID)
	if err != nil {
		// Degrade to an empty cart; the store is a best-effort cache of view
		// state, not a system of record.
		s.logError(ctx, "load cart snapshot failed", userID, err)
		lines = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = userID
	s.cart = model.NewCartState(lines)
	return s.cart.Clone()
}

// ActiveUser returns the user ID the engine is currently keyed to.
func (s *CartService) ActiveUser() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// Cart returns a copy of the current cart state.
func (s *CartService) Cart() model.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Clone()
}

// AddItem merges quantity into the existing line for the item's ID, or
// appends a new line. Quantity below 1 is normalized to 1 (the quick-add
// contract). The snapshot is persisted best-effort.
func (s *CartService) AddItem(ctx context.Context, item model.CatalogItem, quantity int) model.CartState {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	s.cart.AddLine(item, quantity)
	out, userID, lines := s.cart.Clone(), s.userID, s.snapshotLocked()
	s.mu.Unlock()

	s.persistCart(ctx, userID, lines)
	return out
}

// RemoveItem deletes the line matching itemID. Removing an absent line
// leaves the lines alone but still persists the snapshot.
func (s *CartService) RemoveItem(ctx context.Context, itemID int) model.CartState {
	s.mu.Lock()
	s.cart.RemoveLine(itemID)
	out, userID, lines := s.cart.Clone(), s.userID, s.snapshotLocked()
	s.mu.Unlock()

	s.persistCart(ctx, userID, lines)
	return out
}

// SetQuantity sets the matching line's quantity directly. No floor is
// enforced here; the view layer prevents decrementing below 1.
func (s *CartService) SetQuantity(ctx context.Context, itemID, quantity int) model.CartState {
	s.mu.Lock()
	s.cart.SetLineQuantity(itemID, quantity)
	out, userID, lines := s.cart.Clone(), s.userID, s.snapshotLocked()
	s.mu.Unlock()

	s.persistCart(ctx, userID, lines)
	return out
}

// ApplyDiscount subtracts the lowest-priced line's subtotal from the total
// without touching the lines or the persisted snapshot. No-op on an empty
// cart; repeated application subtracts again.
func (s *CartService) ApplyDiscount() model.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.ApplyDiscount()
	return s.cart.Clone()
}

// ClearCart empties the cart and deletes the persisted snapshot.
func (s *CartService) ClearCart(ctx context.Context) model.CartState {
	s.mu.Lock()
	s.cart.Clear()
	out, userID := s.cart.Clone(), s.userID
	s.mu.Unlock()

	if _, err := s.state.ClearCart(ctx, userID); err != nil {
		s.logError(ctx, "clear cart snapshot failed", userID, err)
	}
	return out
}

// Points returns the active user's loyalty balance.
func (s *CartService) Points(ctx context.Context) (int, error) {
	s.mu.Lock()
	userID := s.userID
	s.mu.Unlock()

	points, err := s.state.LoadPoints(ctx, userID)
	if err != nil {
		s.logError(ctx, "load points failed", userID, err)
		return 0, nil
	}
	return points, nil
}

// PlaceOrder credits PointsPerUnit × unit count to the active user's balance,
// clears the cart and its persisted snapshot, and reports whether the new
// balance crossed the free-reward threshold. Rejected with a validation
// error on an empty cart or the guest identity.
func (s *CartService) PlaceOrder(ctx context.Context) (*model.OrderReceipt, error) {
	s.mu.Lock()
	userID := s.userID
	if s.cart.IsEmpty() {
		s.mu.Unlock()
		return nil, apperrors.Validation("cannot place an order with an empty cart")
	}
	if userID == auth.GuestUserID || userID == "" {
		s.mu.Unlock()
		return nil, apperrors.Validation("guests cannot place orders")
	}
	units := s.cart.UnitCount()
	s.cart.Clear()
	s.mu.Unlock()

	earned := s.cfg.PointsPerUnit * units
	balance, err := s.state.LoadPoints(ctx, userID)
	if err != nil {
		s.logError(ctx, "load points failed", userID, err)
		balance = 0
	}
	balance += earned

	if err := s.state.SavePoints(ctx, userID, balance); err != nil {
		s.logError(ctx, "save points failed", userID, err)
	}
	if _, err := s.state.ClearCart(ctx, userID); err != nil {
		s.logError(ctx, "clear cart snapshot failed", userID, err)
	}

	if s.metrics != nil {
		s.metrics.Count("orders.placed", 1)
		s.metrics.Count("orders.units", int64(units))
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "order placed", "user", userID, "units", units, "points_earned", earned)
	}

	return &model.OrderReceipt{
		OrderID:          uuid.NewString(),
		PointsEarned:     earned,
		Balance:          balance,
		FreeRewardEarned: balance >= s.cfg.RewardThreshold,
	}, nil
}

// RedeemReward debits the reward threshold from the balance and zeroes the
// unit price of the first lowest-priced line, persisting both the balance
// and the mutated snapshot. Rejected with a validation error when the
// balance is below the threshold or the cart is empty.
func (s *CartService) RedeemReward(ctx context.Context) (*model.RedemptionResult, error) {
	s.mu.Lock()
	userID := s.userID
	empty := s.cart.IsEmpty()
	s.mu.Unlock()

	if empty {
		return nil, apperrors.Validation("cannot redeem a reward with an empty cart")
	}

	balance, err := s.state.LoadPoints(ctx, userID)
	if err != nil {
		s.logError(ctx, "load points failed", userID, err)
		balance = 0
	}
	if balance < s.cfg.RewardThreshold {
		return nil, apperrors.Validation("not enough points to redeem a reward")
	}
	balance -= s.cfg.RewardThreshold

	s.mu.Lock()
	if i := s.cart.LowestPricedIndex(); i >= 0 {
		s.cart.Lines[i].Price = 0
		s.cart.RecomputeTotal()
	}
	out, lines := s.cart.Clone(), s.snapshotLocked()
	s.mu.Unlock()

	if err := s.state.SavePoints(ctx, userID, balance); err != nil {
		s.logError(ctx, "save points failed", userID, err)
	}
	s.persistCart(ctx, userID, lines)

	if s.metrics != nil {
		s.metrics.Count("rewards.redeemed", 1)
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "reward redeemed", "user", userID, "balance", balance)
	}

	return &model.RedemptionResult{Balance: balance, Cart: out}, nil
}

// snapshotLocked copies the lines for persistence. Caller must hold s.mu.
func (s *CartService) snapshotLocked() []model.CartLine {
	lines := make([]model.CartLine, len(s.cart.Lines))
	copy(lines, s.cart.Lines)
	return lines
}

func (s *CartService) persistCart(ctx context.Context, userID string, lines []model.CartLine) {
	if err := s.state.SaveCart(ctx, userID, lines); err != nil {
		s.logError(ctx, "save cart snapshot failed", userID, err)
	}
}

func (s *CartService) logError(ctx context.Context, msg, userID string, err error) {
	if s.logger != nil {
		s.logger.ErrorContext(ctx, msg, "user", userID, "error", err)
	}
}
