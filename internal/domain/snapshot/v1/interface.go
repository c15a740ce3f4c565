package snapshotv1

import "context"

// Store keeps the latest full snapshot per instrument for late joiners.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=snapshotv1_mock
type Store interface {
	// Load returns the stored snapshot, or ok=false when none was ever stored.
	Load(ctx context.Context, productID string) (snapshot Snapshot, ok bool, err error)
	Save(ctx context.Context, productID string, snapshot Snapshot) error
}
