package repo

import (
	"context"
	"fmt"

	"github.com/Lead-Coder/api-rate-limit/internal/domain"
	"github.com/Lead-Coder/api-rate-limit/internal/repo/filedb"
	"github.com/Lead-Coder/api-rate-limit/internal/repo/memdb"
	"github.com/Lead-Coder/api-rate-limit/internal/repo/redisdb"
	"github.com/Lead-Coder/api-rate-limit/internal/repo/repoerrs"
)

const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverRedis  = "redis"
)

// Session is the durable side store for the single console session. Every
// read and write covers the whole record.
type Session interface {
	Load(ctx context.Context) (domain.Session, bool, error)
	Save(ctx context.Context, s domain.Session) error
	Clear(ctx context.Context) error
	Close() error
}

type Config struct {
	Driver   string
	FilePath string
	Redis    redisdb.Config
}

type Repositories struct {
	Session
}

func NewRepositories(ctx context.Context, cfg Config) (*Repositories, error) {
	s, err := NewSession(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Repositories{Session: s}, nil
}

func NewSession(ctx context.Context, cfg Config) (Session, error) {
	switch cfg.Driver {
	case "", DriverMemory:
		return memdb.NewSessionRepo(), nil
	case DriverFile:
		if cfg.FilePath == "" {
			return nil, fmt.Errorf("%w: file path", repoerrs.ErrMissingSetting)
		}
		return filedb.NewSessionRepo(cfg.FilePath), nil
	case DriverRedis:
		return redisdb.NewSessionRepo(ctx, cfg.Redis)
	default:
		return nil, fmt.Errorf("%w: %s", repoerrs.ErrUnknownDriver, cfg.Driver)
	}
}
