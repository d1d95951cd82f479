package healthservice

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

const pingTimeout = 5 * time.Second

//go:generate mockgen -source=healthservice.go -destination=mock_healthservice.go -package=healthservice
type Pinger interface {
	Ping(ctx context.Context) error
}

type Service struct {
	topups Pinger
	users  Pinger
}

func New(topups, users Pinger) *Service {
	return &Service{
		topups: topups,
		users:  users,
	}
}

// Ready pings both record stores at once and returns the first failure.
func (s *Service) Ready(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.topups.Ping(ctx); err != nil {
			return fmt.Errorf("topups store: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := s.users.Ping(ctx); err != nil {
			return fmt.Errorf("users store: %w", err)
		}
		return nil
	})
	return g.Wait()
}
