package mockpublisher

import (
	"context"

	"github.com/mww/sports_scoreboard/model"
	"github.com/stretchr/testify/mock"
)

type Publisher struct {
	mock.Mock
}

func (m *Publisher) PublishScoreboard(ctx context.Context, sb *model.Scoreboard) error {
	args := m.Called(ctx, sb)
	return args.Error(0)
}
