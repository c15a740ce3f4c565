package streamreader

import (
	"context"
	"fmt"
	"time"

	streamv1 "github.com/muhammadchandra19/marketfeed/internal/domain/stream/v1"
	"github.com/muhammadchandra19/marketfeed/pkg/errors"
	"github.com/muhammadchandra19/marketfeed/pkg/logger"
	"github.com/muhammadchandra19/marketfeed/pkg/redis"
	v9 "github.com/redis/go-redis/v9"
)

// Reader reads Redis streams with XREAD COUNT/BLOCK.
type Reader struct {
	redisclient redis.Client
	count       int64
	block       time.Duration
	logger      *logger.Logger
}

var _ streamv1.Reader = (*Reader)(nil)

// NewReader creates a Reader returning at most count entries per call and
// waiting at most block for new ones. block must be positive: XREAD BLOCK 0 waits forever.
func NewReader(redisclient redis.Client, count int64, block time.Duration, log *logger.Logger) *Reader {
	if block <= 0 {
		block = 10 * time.Millisecond
	}
	return &Reader{
		redisclient: redisclient,
		count:       count,
		block:       block,
		logger:      log,
	}
}

// Read returns the entries of stream after the cursor, oldest first.
func (r *Reader) Read(ctx context.Context, stream string, after streamv1.ID) ([]streamv1.Entry, error) {
	streams, err := r.redisclient.XRead(ctx, &v9.XReadArgs{
		Streams: []string{stream, after.String()},
		Count:   r.count,
		Block:   r.block,
	})
	if err != nil {
		return nil, errors.NewTracer("stream_read_error").Wrap(err)
	}

	var entries []streamv1.Entry
	for _, s := range streams {
		if s.Stream != stream {
			continue
		}
		entries = make([]streamv1.Entry, 0, len(s.Messages))
		for _, msg := range s.Messages {
			id, err := streamv1.ParseID(msg.ID)
			if err != nil {
				r.logger.WarnContext(ctx, "Dropping stream entry with invalid id",
					logger.NewField("stream", stream),
					logger.NewField("id", msg.ID),
				)
				continue
			}
			entries = append(entries, streamv1.Entry{ID: id, Fields: toStrings(msg.Values)})
		}
	}
	return entries, nil
}

func toStrings(values map[string]interface{}) map[string]string {
	fields := make(map[string]string, len(values))
	for k, v := range values {
		switch val := v.(type) {
		case string:
			fields[k] = val
		case []byte:
			fields[k] = string(val)
		case nil:
			fields[k] = ""
		default:
			fields[k] = fmt.Sprint(val)
		}
	}
	return fields
}
