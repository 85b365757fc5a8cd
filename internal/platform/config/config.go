package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures process-level configuration for the bot. Values come from
// the environment so main stays lean.
type Config struct {
	// Addr is the listen address for the ops HTTP surface (health, metrics,
	// action listing).
	Addr string

	// JWTSigningKey verifies ops API access tokens.
	JWTSigningKey string

	// BotUserID is the bot's own identity on the chat platform, used for
	// the self-exclusion gate.
	BotUserID uint64

	Redis      RedisConfig
	Postgres   PostgresConfig
	Kafka      KafkaConfig
	Moderation ModerationConfig
}

// RedisConfig holds connection settings for the designation cache.
type RedisConfig struct {
	// URL enables Redis when non-empty (redis://host:port/db).
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// PostgresConfig holds connection settings for the action record store.
// When DSN is empty the in-memory store is used instead.
type PostgresConfig struct {
	DSN string
}

// KafkaConfig holds settings for the action notification topic. When Brokers
// is empty the Kafka handler is not wired.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// ModerationConfig bounds the moderation pipeline's external interactions.
type ModerationConfig struct {
	// MatchTimeout is the hard cap on invite pattern matching per message.
	MatchTimeout time.Duration
	// LookupTimeout bounds each external lookup a gate performs
	// (designations, claims, active invites).
	LookupTimeout time.Duration
	// DesignationCacheTTL enforces retention for cached channel designations.
	DesignationCacheTTL time.Duration
}

// FromEnv builds a Config from environment variables, applying defaults for
// anything unset.
func FromEnv() Config {
	addr := os.Getenv("MODBOT_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("MODBOT_JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Development default - must be overridden in production.
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	var brokers []string
	if raw := os.Getenv("MODBOT_KAFKA_BROKERS"); raw != "" {
		brokers = strings.Split(raw, ",")
	}
	topic := os.Getenv("MODBOT_KAFKA_TOPIC")
	if topic == "" {
		topic = "modbot.actions"
	}

	return Config{
		Addr:          addr,
		JWTSigningKey: jwtSigningKey,
		BotUserID:     envUint("MODBOT_BOT_USER_ID", 0),
		Redis: RedisConfig{
			URL:          os.Getenv("MODBOT_REDIS_URL"),
			PoolSize:     envInt("MODBOT_REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("MODBOT_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("MODBOT_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("MODBOT_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("MODBOT_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Postgres: PostgresConfig{
			DSN: os.Getenv("MODBOT_POSTGRES_DSN"),
		},
		Kafka: KafkaConfig{
			Brokers: brokers,
			Topic:   topic,
		},
		Moderation: ModerationConfig{
			MatchTimeout:        envDuration("MODBOT_MATCH_TIMEOUT", 2*time.Second),
			LookupTimeout:       envDuration("MODBOT_LOOKUP_TIMEOUT", 5*time.Second),
			DesignationCacheTTL: envDuration("MODBOT_DESIGNATION_CACHE_TTL", 5*time.Minute),
		},
	}
}

func envUint(key string, fallback uint64) uint64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return v
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return v
}
