package container

import (
	"context"
	"fmt"

	"festival-scoreboard/internal/config"
	"festival-scoreboard/internal/repository"
	"festival-scoreboard/internal/service"
	"festival-scoreboard/internal/service/auth"
	"festival-scoreboard/pkg/logger"
	"festival-scoreboard/pkg/metrics"
	"festival-scoreboard/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *logger.Logger
	Store       *repository.MemoryStore
	RedisClient *redis.Client
	Cache       *service.CacheService
	Metrics     *metrics.Metrics
	Policy      service.MedalPolicy
	Services    *service.Services
}

// New creates a new dependency injection container. The store is seeded
// before any service sees it.
func New(ctx context.Context, cfg *config.Config, logger *logger.Logger) (*Container, error) {
	policy, err := service.NewMedalPolicy(cfg.MedalPolicy)
	if err != nil {
		return nil, err
	}

	store := repository.NewMemoryStore()
	summary, err := repository.Seed(ctx, store, cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to seed store: %w", err)
	}
	logger.WithFields(map[string]interface{}{
		"users":      summary.Users,
		"teams":      summary.Teams,
		"categories": summary.Categories,
		"events":     summary.Events,
		"results":    summary.Results,
	}).Info("Store seeded")

	m := metrics.New()

	// Initialize Redis client if Redis URL is configured
	var redisClient *redis.Client
	var cache *service.CacheService
	if cfg.RedisURL != "" {
		client, err := redis.NewClient(cfg.RedisURL, cfg.Environment, logger.Logger)
		if err != nil {
			logger.WithError(err).Warn("Failed to initialize Redis client, proceeding without caching")
		} else {
			redisClient = client
			cache = service.NewCacheService(client, logger.Logger, m)
			logger.WithField("prefix", client.KeyBuilder.GetPrefix()).Info("Redis client initialized successfully")
		}
	} else {
		logger.Info("Redis URL not configured, proceeding without caching")
	}

	logger.WithField("policy", policy.Name()).Info("Medal policy selected")

	services := &service.Services{
		Auth:       auth.NewService(store, cfg.JWTSecret, cfg.SessionTTL, logger),
		Scoreboard: service.NewScoreboardService(store, policy, cache, m, logger),
	}

	return &Container{
		Config:      cfg,
		Logger:      logger,
		Store:       store,
		RedisClient: redisClient,
		Cache:       cache,
		Metrics:     m,
		Policy:      policy,
		Services:    services,
	}, nil
}

// Close releases external connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		return c.RedisClient.Close()
	}
	return nil
}

// GetAuthService returns the auth service
func (c *Container) GetAuthService() service.AuthService {
	return c.Services.Auth
}

// GetScoreboardService returns the scoreboard service
func (c *Container) GetScoreboardService() service.ScoreboardService {
	return c.Services.Scoreboard
}

// GetLogger returns the logger
func (c *Container) GetLogger() *logger.Logger {
	return c.Logger
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// GetMetrics returns the metrics registry
func (c *Container) GetMetrics() *metrics.Metrics {
	return c.Metrics
}

// HasRedis returns true if Redis client is available
func (c *Container) HasRedis() bool {
	return c.RedisClient != nil
}

// GetCacheService returns the cache service (nil if Redis is not available)
func (c *Container) GetCacheService() *service.CacheService {
	return c.Cache
}
