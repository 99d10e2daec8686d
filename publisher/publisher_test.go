package publisher_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mww/sports_scoreboard/model"
	"github.com/mww/sports_scoreboard/publisher"
	"github.com/mww/sports_scoreboard/publisher/mockpublisher"
	"github.com/stretchr/testify/mock"
)

func TestMulti(t *testing.T) {
	ctx := context.Background()
	sb := &model.Scoreboard{}

	first := &mockpublisher.Publisher{}
	first.On("PublishScoreboard", mock.Anything, sb).Return(errors.New("first failed"))
	second := &mockpublisher.Publisher{}
	second.On("PublishScoreboard", mock.Anything, sb).Return(nil)

	err := publisher.Multi(first, nil, second).PublishScoreboard(ctx, sb)
	if err == nil || err.Error() != "first failed" {
		t.Errorf("expected the first error, got: %v", err)
	}

	// The second publisher still runs after the first fails
	first.AssertExpectations(t)
	second.AssertExpectations(t)
}

func TestMulti_noErrors(t *testing.T) {
	sb := &model.Scoreboard{}
	p := &mockpublisher.Publisher{}
	p.On("PublishScoreboard", mock.Anything, sb).Return(nil).Twice()

	err := publisher.Multi(p, p).PublishScoreboard(context.Background(), sb)
	if err != nil {
		t.Errorf("expected no error, got: %v", err)
	}
	p.AssertNumberOfCalls(t, "PublishScoreboard", 2)
}

func TestNop(t *testing.T) {
	if err := publisher.Nop().PublishScoreboard(context.Background(), nil); err != nil {
		t.Errorf("expected nil, got: %v", err)
	}
	if err := publisher.Multi().PublishScoreboard(context.Background(), nil); err != nil {
		t.Errorf("expected nil from an empty Multi, got: %v", err)
	}
}
