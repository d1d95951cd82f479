package credentialservice

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/GlebRadaev/topups/internal/metrics"
)

var (
	ErrUnknownToken = errors.New("unknown API token")
	ErrFileNotFound = errors.New("credential file not found")
)

// FileNotFoundError names the mapped file that is missing from the secret directory.
type FileNotFoundError struct {
	Name string
	Dir  string
}

func (e *FileNotFoundError) Error() string {
	return e.Name + " not found in " + e.Dir
}

func (e *FileNotFoundError) Is(target error) bool {
	return target == ErrFileNotFound
}

type Service struct {
	dir   string
	files map[string]string
}

// New serves files from dir, files maps an API token to a file name inside dir.
func New(dir string, files map[string]string) *Service {
	return &Service{
		dir:   dir,
		files: files,
	}
}

// Open returns the file mapped to token. The caller closes it.
func (s *Service) Open(token string) (string, io.ReadCloser, error) {
	name, ok := s.files[token]
	if token == "" || !ok {
		metrics.CredentialRequestsTotal.WithLabelValues(metrics.OutcomeForbidden).Inc()
		return "", nil, ErrUnknownToken
	}

	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			metrics.CredentialRequestsTotal.WithLabelValues(metrics.OutcomeNotFound).Inc()
			zap.L().Warn("credential file missing", zap.String("file", name))
			return "", nil, &FileNotFoundError{Name: name, Dir: s.dir}
		}
		return "", nil, fmt.Errorf("open %s: %w", name, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return "", nil, fmt.Errorf("stat %s: %w", name, err)
	}
	if info.IsDir() {
		f.Close()
		metrics.CredentialRequestsTotal.WithLabelValues(metrics.OutcomeNotFound).Inc()
		return "", nil, &FileNotFoundError{Name: name, Dir: s.dir}
	}

	metrics.CredentialRequestsTotal.WithLabelValues(metrics.OutcomeServed).Inc()
	return filepath.Base(name), f, nil
}
