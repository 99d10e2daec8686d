package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mww/sports_scoreboard/model"
	"github.com/redis/go-redis/v9"
)

const ScoreboardStream = "scoreboard.updates"

// Keeps the stream from growing forever, trimming is approximate.
const streamMaxLen = 1000

// streamAdder is the part of *redis.Client the publisher needs.
type streamAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// RedisStream appends every scoreboard to a Redis stream.
type RedisStream struct {
	client streamAdder
	stream string
}

func NewRedisStream(client *redis.Client) *RedisStream {
	return &RedisStream{
		client: client,
		stream: ScoreboardStream,
	}
}

func (p *RedisStream) PublishScoreboard(ctx context.Context, sb *model.Scoreboard) error {
	if sb == nil {
		return errors.New("nil scoreboard")
	}

	values, err := streamValues(sb)
	if err != nil {
		return err
	}

	err = p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: streamMaxLen,
		Approx: true,
		Values: values,
	}).Err()
	if err != nil {
		return fmt.Errorf("error publishing scoreboard to %s: %w", p.stream, err)
	}
	return nil
}

func streamValues(sb *model.Scoreboard) (map[string]any, error) {
	data, err := json.Marshal(sb)
	if err != nil {
		return nil, fmt.Errorf("error marshaling scoreboard: %w", err)
	}

	return map[string]any{
		"data":    string(data),
		"updated": sb.Updated.UTC().Format(time.RFC3339),
		"games":   len(sb.Games),
	}, nil
}
