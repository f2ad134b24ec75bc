package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/usermgmt/user-management-api/internal/core/domain"
	"github.com/usermgmt/user-management-api/internal/core/ports"
)

const cacheTTL = 5 * time.Minute

// CachedUserRepository decorates a UserRepository with a Redis read-through
// cache on FindByID, the lookup the auth middleware performs on every
// authenticated request. Writes invalidate the cached entry so stale data
// never outlives a mutation; cache failures fall through to the inner
// repository and never fail a request.
type CachedUserRepository struct {
	inner  ports.UserRepository
	client *redis.Client
	log    zerolog.Logger
}

func NewCachedUserRepository(inner ports.UserRepository, client *redis.Client, log zerolog.Logger) *CachedUserRepository {
	return &CachedUserRepository{inner: inner, client: client, log: log}
}

// cachedUser mirrors domain.User with the hash included; domain.User's own
// JSON tags deliberately drop the hash, which a cache entry must keep.
type cachedUser struct {
	ID           string        `json:"id"`
	Email        string        `json:"email"`
	PasswordHash string        `json:"password_hash"`
	FullName     string        `json:"full_name"`
	Role         domain.Role   `json:"role"`
	Status       domain.Status `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	LastLogin    time.Time     `json:"last_login"`
}

func (r *CachedUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	key := r.key(id)

	raw, err := r.client.Get(ctx, key).Bytes()
	if err == nil {
		var cu cachedUser
		if jsonErr := json.Unmarshal(raw, &cu); jsonErr == nil {
			return fromCached(&cu), nil
		}
	} else if err != redis.Nil {
		r.log.Debug().Err(err).Str("user_id", id).Msg("user cache read failed")
	}

	user, err := r.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(toCached(user)); err == nil {
		if err := r.client.Set(ctx, key, raw, cacheTTL).Err(); err != nil {
			r.log.Debug().Err(err).Str("user_id", id).Msg("user cache write failed")
		}
	}
	return user, nil
}

func (r *CachedUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return r.inner.Create(ctx, user)
}

func (r *CachedUserRepository) Update(ctx context.Context, user *domain.User) error {
	if err := r.inner.Update(ctx, user); err != nil {
		return err
	}
	if err := r.client.Del(ctx, r.key(user.ID)).Err(); err != nil {
		r.log.Debug().Err(err).Str("user_id", user.ID).Msg("user cache invalidation failed")
	}
	return nil
}

func (r *CachedUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.inner.FindByEmail(ctx, email)
}

func (r *CachedUserRepository) Count(ctx context.Context) (int64, error) {
	return r.inner.Count(ctx)
}

func (r *CachedUserRepository) List(ctx context.Context, offset, limit int64) ([]*domain.User, error) {
	return r.inner.List(ctx, offset, limit)
}

func (r *CachedUserRepository) key(id string) string {
	return "user:" + id
}

func toCached(u *domain.User) *cachedUser {
	return &cachedUser{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FullName:     u.FullName,
		Role:         u.Role,
		Status:       u.Status,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
		LastLogin:    u.LastLogin,
	}
}

func fromCached(c *cachedUser) *domain.User {
	return &domain.User{
		ID:           c.ID,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		FullName:     c.FullName,
		Role:         c.Role,
		Status:       c.Status,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
		LastLogin:    c.LastLogin,
	}
}
