package migration

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/golang/mock/gomock"
	"github.com/muhammadchandra19/marketfeed/pkg/logger"
	mock "github.com/muhammadchandra19/marketfeed/pkg/questdb/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFS = fstest.MapFS{
	"001_ticks.up.sql":   {Data: []byte("CREATE TABLE ticks (x INT);\n")},
	"001_ticks.down.sql": {Data: []byte("DROP TABLE ticks;")},
	"002_ohlc.up.sql":    {Data: []byte("CREATE TABLE ohlc (x INT);")},
}

func TestRunner_LoadMigrations(t *testing.T) {
	r := NewRunner(nil, testFS, logger.NewNop())

	migrations, err := r.LoadMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 2)

	assert.Equal(t, Migration{ID: "001_ticks", Name: "ticks", UpSQL: "CREATE TABLE ticks (x INT);", DownSQL: "DROP TABLE ticks;"}, migrations[0])
	assert.Equal(t, "002_ohlc", migrations[1].ID)
	assert.Empty(t, migrations[1].DownSQL)
}

func TestRunner_MigrateUpSkipsApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockQuestDBClient(ctrl)
	rows := mock.NewMockRowsInterface(ctrl)

	client.EXPECT().Exec(gomock.Any(), gomock.Any()).Return(nil)
	client.EXPECT().Query(gomock.Any(), "SELECT id FROM schema_migrations ORDER BY applied_at").Return(rows, nil)
	gomock.InOrder(
		rows.EXPECT().Next().Return(true),
		rows.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
			*(dest[0].(*string)) = "001_ticks"
			return nil
		}),
		rows.EXPECT().Next().Return(false),
	)
	rows.EXPECT().Err().Return(nil)
	rows.EXPECT().Close()

	client.EXPECT().Exec(gomock.Any(), "CREATE TABLE ohlc (x INT);").Return(nil)
	client.EXPECT().Exec(gomock.Any(), "INSERT INTO schema_migrations VALUES ($1, $2, now())", "002_ohlc", "ohlc").Return(nil)

	r := NewRunner(client, testFS, logger.NewNop())
	assert.NoError(t, r.MigrateUp(context.Background(), 0))
}

func TestRunner_MigrateDownRequiresSteps(t *testing.T) {
	r := NewRunner(nil, testFS, logger.NewNop())
	assert.Error(t, r.MigrateDown(context.Background(), 0))
}
