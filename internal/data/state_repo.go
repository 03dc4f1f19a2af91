package data

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ovenside/storefront-api/internal/core"
	"github.com/ovenside/storefront-api/internal/domain/auth"
	"github.com/ovenside/storefront-api/internal/domain/model"
)

// Key schema shared with earlier storefront clients. Values are opaque
// strings to the store: cart snapshots are JSON arrays of lines, loyalty
// balances are decimal strings, session fields are plain strings.
const (
	cartKeyPrefix   = "cart_"
	pointsKeyPrefix = "points_"
	sessionRoleKey  = "userRole"
	sessionUserKey  = "userId"
)

// KVStateRepo implements core.StateRepository over any core.KVRepository.
type KVStateRepo struct {
	kv core.KVRepository
}

// NewKVStateRepo creates a state repo over the given key-value store.
func NewKVStateRepo(kv core.KVRepository) *KVStateRepo {
	if kv == nil {
		panic("KVRepository is required")
	}
	return &KVStateRepo{kv: kv}
}

// storedLine tolerates snapshots written by older clients that serialized
// prices as strings.
type storedLine struct {
	ItemID   int             `json:"id"`
	Name     string          `json:"name"`
	Price    json.RawMessage `json:"price"`
	ImageURL string          `json:"image_url"`
	Quantity int             `json:"quantity"`
}

func (l storedLine) toCartLine() (model.CartLine, error) {
	out := model.CartLine{
		ItemID:   l.ItemID,
		Name:     l.Name,
		ImageURL: l.ImageURL,
		Quantity: l.Quantity,
	}
	if len(l.Price) == 0 {
		return out, nil
	}
	raw := strings.TrimSpace(string(l.Price))
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(l.Price, &s); err != nil {
			return out, fmt.Errorf("decode string price: %w", err)
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return out, fmt.Errorf("parse string price %q: %w", s, err)
		}
		out.Price = price
		return out, nil
	}
	if err := json.Unmarshal(l.Price, &out.Price); err != nil {
		return out, fmt.Errorf("decode price: %w", err)
	}
	return out, nil
}

// LoadCart returns the persisted snapshot for userID, or an empty slice when
// none exists.
func (r *KVStateRepo) LoadCart(ctx context.Context, userID string) ([]model.CartLine, error) {
	raw, err := r.kv.Get(ctx, cartKeyPrefix+userID)
	if err != nil {
		return nil, fmt.Errorf("load cart snapshot: %w", err)
	}
	if len(raw) == 0 {
		return []model.CartLine{}, nil
	}

	var stored []storedLine
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("decode cart snapshot: %w", err)
	}
	lines := make([]model.CartLine, 0, len(stored))
	for _, sl := range stored {
		line, convErr := sl.toCartLine()
		if convErr != nil {
			return nil, fmt.Errorf("decode cart snapshot: %w", convErr)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// SaveCart replaces the persisted snapshot for userID.
func (r *KVStateRepo) SaveCart(ctx context.Context, userID string, lines []model.CartLine) error {
	if lines == nil {
		lines = []model.CartLine{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart snapshot: %w", err)
	}
	if err := r.kv.Set(ctx, cartKeyPrefix+userID, raw); err != nil {
		return fmt.Errorf("save cart snapshot: %w", err)
	}
	return nil
}

// ClearCart removes the persisted snapshot for userID.
func (r *KVStateRepo) ClearCart(ctx context.Context, userID string) (bool, error) {
	ok, err := r.kv.Delete(ctx, cartKeyPrefix+userID)
	if err != nil {
		return false, fmt.Errorf("clear cart snapshot: %w", err)
	}
	return ok, nil
}

// LoadPoints returns the user's loyalty balance, zero when none exists.
func (r *KVStateRepo) LoadPoints(ctx context.Context, userID string) (int, error) {
	raw, err := r.kv.Get(ctx, pointsKeyPrefix+userID)
	if err != nil {
		return 0, fmt.Errorf("load points: %w", err)
	}
	if len(raw) == 0 {
		return 0, nil
	}
	points, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return 0, fmt.Errorf("parse points %q: %w", raw, err)
	}
	return points, nil
}

// SavePoints replaces the user's loyalty balance.
func (r *KVStateRepo) SavePoints(ctx context.Context, userID string, points int) error {
	if err := r.kv.Set(ctx, pointsKeyPrefix+userID, []byte(strconv.Itoa(points))); err != nil {
		return fmt.Errorf("save points: %w", err)
	}
	return nil
}

// LoadSession returns the persisted session fields, or the guest sentinel
// when none exist or the stored role is unrecognized.
func (r *KVStateRepo) LoadSession(ctx context.Context) (auth.Session, error) {
	roleRaw, err := r.kv.Get(ctx, sessionRoleKey)
	if err != nil {
		return auth.GuestSession(), fmt.Errorf("load session role: %w", err)
	}
	userRaw, err := r.kv.Get(ctx, sessionUserKey)
	if err != nil {
		return auth.GuestSession(), fmt.Errorf("load session user: %w", err)
	}

	sess := auth.GuestSession()
	if role, ok := auth.ParseRole(string(roleRaw)); ok {
		sess.Role = role
	}
	if user := strings.TrimSpace(string(userRaw)); user != "" {
		sess.UserID = user
	}
	return sess, nil
}

// SaveSession persists both session fields.
func (r *KVStateRepo) SaveSession(ctx context.Context, sess auth.Session) error {
	if err := r.kv.Set(ctx, sessionRoleKey, []byte(sess.Role)); err != nil {
		return fmt.Errorf("save session role: %w", err)
	}
	if err := r.kv.Set(ctx, sessionUserKey, []byte(sess.UserID)); err != nil {
		return fmt.Errorf("save session user: %w", err)
	}
	return nil
}

// ClearSession removes both session fields. Cart and points for the
// now-inactive user remain in the store, addressed by that user ID.
func (r *KVStateRepo) ClearSession(ctx context.Context) error {
	if _, err := r.kv.Delete(ctx, sessionRoleKey); err != nil {
		return fmt.Errorf("clear session role: %w", err)
	}
	if _, err := r.kv.Delete(ctx, sessionUserKey); err != nil {
		return fmt.Errorf("clear session user: %w", err)
	}
	return nil
}
