package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"panier-api/models"

	"github.com/redis/go-redis/v9"
)

// PanierTTL is a fixed sliding-from-write expiration. It is not refreshed on
// read: an untouched cart disappears 30 days after its last mutation.
const PanierTTL = 30 * 24 * time.Hour

type PanierRepository struct {
	client *redis.Client
}

func NewPanierRepository(client *redis.Client) *PanierRepository {
	return &PanierRepository{client: client}
}

func KeyFor(userID string) string {
	return "panier:" + userID
}

// Get loads the stored cart for a user. A missing key, an unreachable store or
// an undecodable payload all yield nil: a failed read must never block cart
// usage, so it degrades to "no cart" and is only logged.
func (r *PanierRepository) Get(ctx context.Context, userID string) *models.Panier {
	raw, err := r.client.Get(ctx, KeyFor(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		log.Printf("Redis read failed for user %s: %v", userID, err)
		return nil
	}

	var panier models.Panier
	if err := json.Unmarshal([]byte(raw), &panier); err != nil {
		log.Printf("Corrupt cart payload for user %s: %v", userID, err)
		return nil
	}
	return &panier
}

// Save writes the cart with the fixed TTL. Write failures are surfaced to the
// caller: silently losing a write would corrupt user-visible state.
func (r *PanierRepository) Save(ctx context.Context, panier *models.Panier) error {
	raw, err := json.Marshal(panier)
	if err != nil {
		return fmt.Errorf("marshal cart for user %s: %w", panier.UserID, err)
	}

	if err := r.client.Set(ctx, KeyFor(panier.UserID), raw, PanierTTL).Err(); err != nil {
		return fmt.Errorf("redis write failed for user %s: %w", panier.UserID, err)
	}
	return nil
}

func (r *PanierRepository) Delete(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, KeyFor(userID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed for user %s: %w", userID, err)
	}
	return nil
}
