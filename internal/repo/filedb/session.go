package filedb

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Lead-Coder/api-rate-limit/internal/domain"
	"github.com/Lead-Coder/api-rate-limit/internal/repo/repoerrs"
	errorsUtils "github.com/Lead-Coder/api-rate-limit/pkg/errors"
	"gopkg.in/yaml.v3"
)

const filePerm = 0o600

// SessionRepo stores the record as a small YAML document. Writes go through a
// temp file and rename so a reader never sees half a record.
type SessionRepo struct {
	path string
}

func NewSessionRepo(path string) *SessionRepo {
	return &SessionRepo{path: path}
}

func (r *SessionRepo) Load(_ context.Context) (domain.Session, bool, error) {
	raw, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.Session{}, false, nil
	}
	if err != nil {
		return domain.Session{}, false, errorsUtils.WrapPathErr(err)
	}

	var s domain.Session
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return domain.Session{}, false, errorsUtils.WrapPathErr(fmt.Errorf("%w: %v", repoerrs.ErrCorruptRecord, err))
	}
	if s == (domain.Session{}) {
		return domain.Session{}, false, nil
	}
	return s, true, nil
}

func (r *SessionRepo) Save(_ context.Context, s domain.Session) error {
	raw, err := yaml.Marshal(s)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".session-*")
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return errorsUtils.WrapPathErr(err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return errorsUtils.WrapPathErr(err)
	}
	if err := tmp.Close(); err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	return errorsUtils.WrapPathErr(os.Rename(tmp.Name(), r.path))
}

func (r *SessionRepo) Clear(_ context.Context) error {
	err := os.Remove(r.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errorsUtils.WrapPathErr(err)
	}
	return nil
}

func (r *SessionRepo) Close() error {
	return nil
}
