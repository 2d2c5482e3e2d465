package utils

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"mandapbook/config"
)

// HealthStatus is the latest snapshot of the service's dependencies: the
// booking ledger's database, the two Redis caches and the push channel.
type HealthStatus struct {
	Healthy   bool      `json:"healthy"`
	Mongo     bool      `json:"mongo"`
	Cache     bool      `json:"cache"`
	AuthCache bool      `json:"authCache"`
	Messaging bool      `json:"messaging"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

func checkHealth(mongoClient *mongo.Client) HealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	status := HealthStatus{
		Messaging: FCMClient != nil,
		CheckedAt: time.Now(),
	}
	status.Mongo = mongoClient != nil && mongoClient.Ping(ctx, nil) == nil
	if c := GetCacheClient(); c != nil {
		status.Cache = c.Ping(ctx).Err() == nil
	}
	if c := GetAuthCacheClient(); c != nil {
		status.AuthCache = c.Ping(ctx).Err() == nil
	}
	// The caches and pushes degrade gracefully; only Mongo is load-bearing.
	status.Healthy = status.Mongo
	return status
}

// StartHealthMonitor checks dependency health on the configured interval
// and keeps an in-memory snapshot for the /health endpoint. The first check
// runs immediately so the endpoint never reports a zero value.
func StartHealthMonitor(mongoClient *mongo.Client) {
	interval := time.Duration(config.AppConfig.HealthCheckIntervalSec) * time.Second
	if interval <= 0 {
		interval = 60 * time.Second
	}

	store := func(status HealthStatus) {
		healthMu.Lock()
		prev := currentHealth
		currentHealth = status
		healthMu.Unlock()

		if prev.Healthy && !status.Healthy {
			GetLogger().Error("health check degraded",
				zap.Bool("mongo", status.Mongo),
				zap.Bool("cache", status.Cache),
				zap.Bool("authCache", status.AuthCache))
		} else if !prev.Healthy && status.Healthy && !prev.CheckedAt.IsZero() {
			GetLogger().Info("health check recovered")
		}
	}

	store(checkHealth(mongoClient))

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			store(checkHealth(mongoClient))
		}
	}()
}
