package publisher

import (
	"context"
	"errors"

	"github.com/mww/sports_scoreboard/model"
)

// Publisher pushes a freshly generated scoreboard to interested listeners.
type Publisher interface {
	PublishScoreboard(ctx context.Context, sb *model.Scoreboard) error
}

type multi []Publisher

// Multi publishes to every non-nil publisher in order. All of them are tried
// even if one fails, and the errors are joined.
func Multi(pubs ...Publisher) Publisher {
	m := make(multi, 0, len(pubs))
	for _, p := range pubs {
		if p != nil {
			m = append(m, p)
		}
	}
	return m
}

func (m multi) PublishScoreboard(ctx context.Context, sb *model.Scoreboard) error {
	var errs []error
	for _, p := range m {
		if err := p.PublishScoreboard(ctx, sb); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type nop struct{}

// Nop discards everything.
func Nop() Publisher {
	return nop{}
}

func (nop) PublishScoreboard(ctx context.Context, sb *model.Scoreboard) error {
	return nil
}
