package redisdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Lead-Coder/api-rate-limit/internal/domain"
	"github.com/Lead-Coder/api-rate-limit/internal/repo/repoerrs"
	errorsUtils "github.com/Lead-Coder/api-rate-limit/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const defaultKey = "console:session"

type Config struct {
	Addr     string
	Username string
	Password string
	DB       int
	Key      string
}

type SessionRepo struct {
	client *redis.Client
	key    string
}

func NewSessionRepo(ctx context.Context, cfg Config) (*SessionRepo, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: redis address", repoerrs.ErrMissingSetting)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errorsUtils.WrapPathErr(fmt.Errorf("redis ping failed: %w", err))
	}

	key := cfg.Key
	if key == "" {
		key = defaultKey
	}
	return &SessionRepo{client: client, key: key}, nil
}

func (r *SessionRepo) Load(ctx context.Context) (domain.Session, bool, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Session{}, false, nil
	}
	if err != nil {
		return domain.Session{}, false, errorsUtils.WrapPathErr(err)
	}

	var s domain.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return domain.Session{}, false, errorsUtils.WrapPathErr(fmt.Errorf("%w: %v", repoerrs.ErrCorruptRecord, err))
	}
	return s, true, nil
}

// Save writes without expiry: the record lives until logout.
func (r *SessionRepo) Save(ctx context.Context, s domain.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	return errorsUtils.WrapPathErr(r.client.Set(ctx, r.key, raw, 0).Err())
}

func (r *SessionRepo) Clear(ctx context.Context) error {
	return errorsUtils.WrapPathErr(r.client.Del(ctx, r.key).Err())
}

func (r *SessionRepo) Close() error {
	return r.client.Close()
}
