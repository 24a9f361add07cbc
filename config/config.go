// Package config loads service settings from the environment and builds the
// shared infrastructure clients.
package config

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/caarlos0/env/v10"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"fooddelivery/auth"
)

const (
	StoreFirestore = "firestore"
	StorePostgres  = "postgres"

	AuthFirebase = "firebase"
	AuthJWT      = "jwt"
)

type Config struct {
	HTTPPort    string   `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string   `env:"LOG_FORMAT" envDefault:"json"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	StoreDriver string `env:"STORE_DRIVER" envDefault:"firestore"`
	ProjectID   string `env:"GOOGLE_CLOUD_PROJECT"`

	DB    DBConfig
	Redis RedisConfig
	Kafka KafkaConfig

	AuthMode  string `env:"AUTH_MODE" envDefault:"firebase"`
	JWTSecret string `env:"JWT_SECRET"`
	JWTIssuer string `env:"JWT_ISSUER"`

	MapboxToken   string        `env:"MAPBOX_TOKEN_SECRET"`
	MapboxBaseURL string        `env:"MAPBOX_BASE_URL" envDefault:"https://api.mapbox.com"`
	MapboxTimeout time.Duration `env:"MAPBOX_TIMEOUT" envDefault:"10s"`

	ReviewBaseURL   string        `env:"REVIEW_BASE_URL" envDefault:"https://fooddelivery.app"`
	ReviewMarkerTTL time.Duration `env:"REVIEW_MARKER_TTL" envDefault:"168h"`
	ReportTimezone  string        `env:"REPORT_TIMEZONE" envDefault:"UTC"`
	EventPushToken  string        `env:"EVENT_PUSH_TOKEN"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

type DBConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	Name     string `env:"DB_NAME" envDefault:"fooddelivery"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

func (c DBConfig) DSN() string {
	return "host=" + c.Host + " port=" + c.Port + " user=" + c.User +
		" password=" + c.Password + " dbname=" + c.Name + " sslmode=" + c.SSLMode
}

type RedisConfig struct {
	Host string `env:"REDIS_HOST" envDefault:"localhost"`
	Port string `env:"REDIS_PORT" envDefault:"6379"`
}

func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

type KafkaConfig struct {
	Brokers     []string `env:"KAFKA_BROKER" envSeparator:"," envDefault:"localhost:9092"`
	ReviewTopic string   `env:"KAFKA_REVIEW_TOPIC" envDefault:"reviews"`
	GroupID     string   `env:"KAFKA_GROUP_ID" envDefault:"agg-svc-consumer"`
}

// Load parses the environment and checks the combinations that would only
// fail later at startup.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.StoreDriver = strings.ToLower(c.StoreDriver)
	c.AuthMode = strings.ToLower(c.AuthMode)

	switch c.StoreDriver {
	case StoreFirestore, StorePostgres:
	default:
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreFirestore, StorePostgres, c.StoreDriver)
	}
	switch c.AuthMode {
	case AuthFirebase:
	case AuthJWT:
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required when AUTH_MODE=%s", AuthJWT)
		}
	default:
		return fmt.Errorf("AUTH_MODE must be %q or %q, got %q", AuthFirebase, AuthJWT, c.AuthMode)
	}
	if _, err := time.LoadLocation(c.ReportTimezone); err != nil {
		return fmt.Errorf("REPORT_TIMEZONE: %w", err)
	}
	return nil
}

func MustInitPostgres(cfg DBConfig, logger *zap.Logger) *sql.DB {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err = db.Ping(); err != nil {
		logger.Fatal("failed to ping database", zap.Error(err))
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg RedisConfig, logger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}

	return client
}

func MustInitFirestore(ctx context.Context, projectID string, logger *zap.Logger) *firestore.Client {
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		logger.Fatal("failed to create firestore client", zap.Error(err))
	}
	return client
}

// MustInitVerifier picks the token verifier for AUTH_MODE.
func MustInitVerifier(ctx context.Context, cfg *Config, logger *zap.Logger) auth.Verifier {
	if cfg.AuthMode == AuthJWT {
		return auth.NewJWTVerifier(cfg.JWTSecret, cfg.JWTIssuer)
	}
	v, err := auth.NewFirebaseVerifierFromApp(ctx, cfg.ProjectID)
	if err != nil {
		logger.Fatal("failed to init firebase auth", zap.Error(err))
	}
	return v
}

func NewKafkaReader(cfg KafkaConfig, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(cfg KafkaConfig, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Topic:    topic,
		Balancer: &kafka.Hash{},
	}
}
