package services

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// HomeAPI is the part of the API client behind the public counters.
type HomeAPI interface {
	GetDirectoryCount(ctx context.Context) (int, error)
	GetCommunityStrength(ctx context.Context) (int, error)
}

// Counters are the figures shown on the home screen.
type Counters struct {
	Registered        int
	CommunityStrength int
}

type HomeService struct {
	api HomeAPI
}

func NewHomeService(api HomeAPI) *HomeService {
	return &HomeService{api: api}
}

// Counters fetches both figures concurrently.
func (s *HomeService) Counters(ctx context.Context) (Counters, error) {
	var c Counters
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		c.Registered, err = s.api.GetDirectoryCount(ctx)
		return err
	})
	g.Go(func() (err error) {
		c.CommunityStrength, err = s.api.GetCommunityStrength(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Counters{}, err
	}
	return c, nil
}
