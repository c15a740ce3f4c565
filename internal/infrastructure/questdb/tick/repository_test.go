package tick

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	orderv1 "github.com/muhammadchandra19/marketfeed/internal/domain/order/v1"
	mock "github.com/muhammadchandra19/marketfeed/pkg/questdb/mock"
	"github.com/stretchr/testify/assert"
)

func testTick() *Tick {
	return &Tick{
		Timestamp: time.Unix(1709251200, 0).UTC(),
		Symbol:    "BTC-USD",
		OrderID:   "a",
		Price:     100,
		Volume:    2,
		Side:      "buy",
	}
}

func TestFromMatch(t *testing.T) {
	got := FromMatch(&orderv1.Order{
		ID:        "a",
		ProductID: "BTC-USD",
		Side:      orderv1.SideBuy,
		Price:     100,
		Size:      2,
		CreatedAt: 1709251200,
	})
	assert.Equal(t, testTick(), got)
}

func TestTickRepository_Store(t *testing.T) {
	query := `INSERT INTO ticks (timestamp, symbol, order_id, price, volume, side) VALUES ($1, $2, $3, $4, $5, $6)`
	testCases := []struct {
		name     string
		mockFn   func(tickData *Tick, mock *mock.MockQuestDBClient)
		assertFn func(t *testing.T, err error)
	}{
		{
			name: "success",
			mockFn: func(tickData *Tick, mock *mock.MockQuestDBClient) {
				mock.EXPECT().Exec(gomock.Any(), query, tickData.Timestamp, tickData.Symbol, tickData.OrderID, tickData.Price, tickData.Volume, tickData.Side).Return(nil)
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "error",
			mockFn: func(tickData *Tick, mock *mock.MockQuestDBClient) {
				mock.EXPECT().Exec(gomock.Any(), query, tickData.Timestamp, tickData.Symbol, tickData.OrderID, tickData.Price, tickData.Volume, tickData.Side).Return(errors.New("error"))
			},
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tick := testTick()
			mock := mock.NewMockQuestDBClient(ctrl)
			tc.mockFn(tick, mock)

			repo := NewRepository(mock)
			tc.assertFn(t, repo.Store(context.Background(), tick))
		})
	}
}

func TestTickRepository_StoreBatch(t *testing.T) {
	testCases := []struct {
		name     string
		mockFn   func(mock *mock.MockQuestDBClient)
		assertFn func(t *testing.T, err error)
		ticks    []*Tick
	}{
		{
			name: "success",
			mockFn: func(mock *mock.MockQuestDBClient) {
				mock.EXPECT().CopyFrom(gomock.Any(), gomock.Any(), columns, gomock.Any()).Return(int64(1), nil)
			},
			ticks: []*Tick{testTick()},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:   "empty batch skips the copy",
			mockFn: func(mock *mock.MockQuestDBClient) {},
			ticks:  nil,
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "error",
			mockFn: func(mock *mock.MockQuestDBClient) {
				mock.EXPECT().CopyFrom(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("error"))
			},
			ticks: []*Tick{testTick()},
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mock := mock.NewMockQuestDBClient(ctrl)
			tc.mockFn(mock)

			repo := NewRepository(mock)
			tc.assertFn(t, repo.StoreBatch(context.Background(), tc.ticks))
		})
	}
}

func TestTickRepository_GetLatestBySymbol(t *testing.T) {
	query := `SELECT timestamp, symbol, order_id, price, volume, side FROM ticks WHERE symbol = $1 ORDER BY timestamp DESC LIMIT 1`
	now := time.Now()

	testCases := []struct {
		name     string
		mockFn   func(mock *mock.MockQuestDBClient, mockRows *mock.MockRowsInterface)
		assertFn func(t *testing.T, tick *Tick, err error)
	}{
		{
			name: "success - single row",
			mockFn: func(mock *mock.MockQuestDBClient, mockRows *mock.MockRowsInterface) {
				mock.EXPECT().Query(gomock.Any(), query, "BTC-USD").Return(mockRows, nil)
				mockRows.EXPECT().Next().Return(true)
				mockRows.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
					*dest[0].(*time.Time) = now
					*dest[1].(*string) = "BTC-USD"
					*dest[2].(*string) = "a"
					*dest[3].(*int64) = 100
					*dest[4].(*int64) = 2
					*dest[5].(*string) = "buy"
					return nil
				})
				mockRows.EXPECT().Close()
			},
			assertFn: func(t *testing.T, tick *Tick, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(100), tick.Price)
				assert.Equal(t, "a", tick.OrderID)
			},
		},
		{
			name: "success - no rows",
			mockFn: func(mock *mock.MockQuestDBClient, mockRows *mock.MockRowsInterface) {
				mock.EXPECT().Query(gomock.Any(), query, "BTC-USD").Return(mockRows, nil)
				mockRows.EXPECT().Next().Return(false)
				mockRows.EXPECT().Err().Return(nil)
				mockRows.EXPECT().Close()
			},
			assertFn: func(t *testing.T, tick *Tick, err error) {
				assert.NoError(t, err)
				assert.Nil(t, tick)
			},
		},
		{
			name: "error - query fails",
			mockFn: func(mock *mock.MockQuestDBClient, mockRows *mock.MockRowsInterface) {
				mock.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("query failed"))
			},
			assertFn: func(t *testing.T, tick *Tick, err error) {
				assert.Error(t, err)
				assert.Nil(t, tick)
			},
		},
		{
			name: "error - scan fails",
			mockFn: func(mock *mock.MockQuestDBClient, mockRows *mock.MockRowsInterface) {
				mock.EXPECT().Query(gomock.Any(), query, "BTC-USD").Return(mockRows, nil)
				mockRows.EXPECT().Next().Return(true)
				mockRows.EXPECT().Scan(gomock.Any()).Return(errors.New("scan failed"))
				mockRows.EXPECT().Close()
			},
			assertFn: func(t *testing.T, tick *Tick, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "scan failed")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mock.NewMockQuestDBClient(ctrl)
			rows := mock.NewMockRowsInterface(ctrl)
			tc.mockFn(client, rows)

			repo := NewRepository(client)
			tick, err := repo.GetLatestBySymbol(context.Background(), "BTC-USD")
			tc.assertFn(t, tick, err)
		})
	}
}
