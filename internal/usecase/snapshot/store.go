package snapshot

import (
	"context"
	"encoding/json"

	snapshotv1 "github.com/muhammadchandra19/marketfeed/internal/domain/snapshot/v1"
	"github.com/muhammadchandra19/marketfeed/pkg/errors"
	logger "github.com/muhammadchandra19/marketfeed/pkg/logger"
	"github.com/muhammadchandra19/marketfeed/pkg/redis"
)

// Store keeps the latest snapshot of every instrument as one field of a Redis hash.
type Store struct {
	key         string
	logger      *logger.Logger
	redisclient redis.Client
}

var _ snapshotv1.Store = (*Store)(nil)

// NewSnapshotStore creates a Store writing to hash key.
func NewSnapshotStore(redisclient redis.Client, key string, logger *logger.Logger) *Store {
	return &Store{
		key:         key,
		redisclient: redisclient,
		logger:      logger,
	}
}

// Save overwrites the stored snapshot. An empty snapshot is stored as [].
func (s *Store) Save(ctx context.Context, productID string, snapshot snapshotv1.Snapshot) error {
	if snapshot == nil {
		snapshot = snapshotv1.Snapshot{}
	}

	buf, err := json.Marshal(snapshot)
	if err != nil {
		return errors.NewTracer("snapshot_marshal_error").Wrap(err)
	}

	if _, err := s.redisclient.HSet(ctx, s.key, map[string]any{productID: string(buf)}); err != nil {
		s.logger.ErrorContext(ctx, err,
			logger.NewField("hash", s.key),
			logger.NewField("action", "store snapshot"),
		)
		return errors.NewTracer("snapshot_store_error").Wrap(err)
	}

	s.logger.DebugContext(ctx, "Snapshot stored",
		logger.NewField("hash", s.key),
		logger.NewField("rows", len(snapshot)),
	)
	return nil
}

// Load reads the stored snapshot. ok is false when nothing was stored yet.
func (s *Store) Load(ctx context.Context, productID string) (snapshotv1.Snapshot, bool, error) {
	data, err := s.redisclient.HGet(ctx, s.key, productID)
	if err != nil {
		s.logger.ErrorContext(ctx, err,
			logger.NewField("hash", s.key),
			logger.NewField("action", "load snapshot"),
		)
		return nil, false, errors.NewTracer("snapshot_load_error").Wrap(err)
	}

	if data == "" {
		return nil, false, nil
	}

	var snapshot snapshotv1.Snapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		decodeErr := errors.WrapDetails(err, "stored snapshot is not a row array", string(errors.SnapshotDecodeError), productID)
		return nil, false, errors.NewTracer("snapshot_unmarshal_error").Wrap(decodeErr)
	}

	return snapshot, true, nil
}
