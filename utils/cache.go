// File: utils/cache.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"rent2reuse/config"

	"github.com/go-redis/redis/v8"
)

// AuthCacheClient is the dedicated client for session/authorization state.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for session state (using DB from AppConfig).
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AuthCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for session state.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// SessionFlags are the persisted per-admin session markers. They mirror the
// dashboard's locally persisted isAuthenticated/adminRole/adminUid flags and
// are cleared on every sign-out or denial path.
type SessionFlags struct {
	IsAuthenticated bool      `json:"isAuthenticated"`
	AdminRole       string    `json:"adminRole"`
	AdminUID        string    `json:"adminUid"`
	Email           string    `json:"email"`
	LastRefreshedAt time.Time `json:"lastRefreshedAt"`
}

// SaveSessionFlags stores the session flags in Redis with a TTL.
func SaveSessionFlags(ctx context.Context, client *redis.Client, uid string, flags SessionFlags) error {
	flags.LastRefreshedAt = time.Now()
	data, err := json.Marshal(flags)
	if err != nil {
		return fmt.Errorf("failed to marshal session flags: %w", err)
	}
	if err := client.Set(ctx, SessionFlagPrefix+uid, data, SessionFlagTTL).Err(); err != nil {
		return fmt.Errorf("failed to save session flags: %w", err)
	}
	return nil
}

// GetSessionFlags retrieves the persisted session flags for a uid.
// A missing key returns redis.Nil unchanged so callers can treat it as "no session".
func GetSessionFlags(ctx context.Context, client *redis.Client, uid string) (*SessionFlags, error) {
	data, err := client.Get(ctx, SessionFlagPrefix+uid).Result()
	if err != nil {
		return nil, err
	}
	var flags SessionFlags
	if err := json.Unmarshal([]byte(data), &flags); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session flags: %w", err)
	}
	return &flags, nil
}

// ClearSessionFlags removes the persisted session flags for a uid.
func ClearSessionFlags(ctx context.Context, client *redis.Client, uid string) error {
	return client.Del(ctx, SessionFlagPrefix+uid).Err()
}
