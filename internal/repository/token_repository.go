package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/go-redis/redis/v8"
)

const revokedKeyPrefix = "auth:revoked:"

// TokenRepository guarda tokens revogados (logout) no Redis.
// A chave expira junto com o próprio token, então a lista não cresce sem limite.
type TokenRepository struct {
	RDB *redis.Client
}

func NewTokenRepository(rdb *redis.Client) *TokenRepository {
	return &TokenRepository{RDB: rdb}
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (r *TokenRepository) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if r.RDB == nil {
		// Sem Redis não há lista de revogados; o token vale até expirar.
		return nil
	}
	if ttl <= 0 {
		// Token já expirado; nada a registrar.
		return nil
	}
	return r.RDB.Set(ctx, revokedKeyPrefix+hashToken(token), "1", ttl).Err()
}

func (r *TokenRepository) IsRevoked(ctx context.Context, token string) (bool, error) {
	if r.RDB == nil {
		return false, nil
	}
	n, err := r.RDB.Exists(ctx, revokedKeyPrefix+hashToken(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
