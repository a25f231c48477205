package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

const dashboardKeyFmt = "dashboard:stats:"

var client *redis.Client

// Init initializes the Redis connection. The cache is optional: on failure
// the client stays nil and every helper degrades to a miss.
func Init() error {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// Enabled reports whether a Redis client is connected.
func Enabled() bool {
	return client != nil
}

// Ping probes the Redis connection.
func Ping() error {
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return client.Ping(ctx).Err()
}

func hashCredentials(email, password string) string {
	h := sha256.New()
	h.Write([]byte(email + ":" + password))
	return "auth:" + hex.EncodeToString(h.Sum(nil))[:32]
}

// GetCachedAuth checks if credentials are cached and valid
func GetCachedAuth(ctx context.Context, email, password string) (string, bool) {
	if client == nil {
		return "", false
	}
	key := hashCredentials(email, password)
	userID, err := client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return userID, true
}

// CacheAuth caches valid credentials for 15 minutes
func CacheAuth(ctx context.Context, email, password, userID string) {
	if client == nil {
		return
	}
	client.Set(ctx, hashCredentials(email, password), userID, 15*time.Minute)
}

// InvalidateAuth removes cached auth for a user (on password change)
func InvalidateAuth(ctx context.Context, email, password string) {
	if client == nil {
		return
	}
	client.Del(ctx, hashCredentials(email, password))
}

// GetCachedDashboard returns a tenant's cached dashboard section.
func GetCachedDashboard(ctx context.Context, userID, section string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, dashboardKeyFmt+userID+":"+section).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// CacheDashboard caches a tenant's dashboard section for 5 minutes.
func CacheDashboard(ctx context.Context, userID, section string, data []byte) {
	if client == nil {
		return
	}
	client.Set(ctx, dashboardKeyFmt+userID+":"+section, data, 5*time.Minute)
}

// InvalidateDashboard drops every cached dashboard section of a tenant
// after a mutation.
func InvalidateDashboard(ctx context.Context, userID string) {
	if client == nil {
		return
	}
	iter := client.Scan(ctx, 0, dashboardKeyFmt+userID+":*", 100).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
}
