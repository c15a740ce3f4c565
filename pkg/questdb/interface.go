package questdb

import (
	"context"

	"github.com/jackc/pgx/v5"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// RowsInterface wraps pgx.Rows for mocking
type RowsInterface interface {
	Next() bool
	Scan(dest ...any) error
	Close()
	Err() error
}

// QuestDBClient defines the interface for QuestDB operations.
type QuestDBClient interface {
	Exec(ctx context.Context, sql string, args ...any) error
	Query(ctx context.Context, sql string, args ...any) (RowsInterface, error)

	// CopyFrom is the batch insert path used by the archive repositories.
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)

	Ping(ctx context.Context) error
	Close()
}
