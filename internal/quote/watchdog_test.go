package quote

import (
	"context"
	"testing"
	"time"

	"metalwatch/internal/domain"
	"metalwatch/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewWatchdog_Constructs(t *testing.T) {
	w := NewWatchdog(new(MockQuoteStore), fixedClock{t: testNow}, time.Minute, time.Hour)
	require.NotNil(t, w)
	require.Nil(t, w.sched)
}

func TestWatchdog_Shutdown_NotStarted_ReturnsNil(t *testing.T) {
	w := NewWatchdog(new(MockQuoteStore), fixedClock{t: testNow}, time.Minute, time.Hour)
	require.NoError(t, w.Shutdown())
	require.Nil(t, w.sched)
}

func TestWatchdog_Start_And_ContextCancel_ShutsDown(t *testing.T) {
	mockStore := new(MockQuoteStore)
	mockStore.On("Spot").Return(store.SpotRecord{}, false).Maybe()

	w := NewWatchdog(mockStore, fixedClock{t: testNow}, time.Minute, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, w.Start(ctx))
	require.NotNil(t, w.sched)

	cancel()

	// Wait until w.sched becomes nil (Shutdown sets it to nil)
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if w.sched == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	require.Nil(t, w.sched, "expected watchdog to be shutdown after ctx cancel")
}

func TestCheckSpotFreshness(t *testing.T) {
	cases := []struct {
		name      string
		record    store.SpotRecord
		hasRecord bool
		wantStale bool
	}{
		{
			name:      "no record yet",
			hasRecord: false,
			wantStale: true,
		},
		{
			name: "fresh record",
			record: store.SpotRecord{
				Price:       decimal.RequireFromString("245.50"),
				Source:      domain.DialectSpotTicker,
				LastUpdated: testNow.Add(-30 * time.Minute),
			},
			hasRecord: true,
			wantStale: false,
		},
		{
			name: "stale record",
			record: store.SpotRecord{
				Price:       decimal.RequireFromString("245.50"),
				Source:      domain.DialectCashSettlement,
				LastUpdated: testNow.Add(-2 * time.Hour),
			},
			hasRecord: true,
			wantStale: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockStore := new(MockQuoteStore)
			mockStore.On("Spot").Return(tc.record, tc.hasRecord).Once()

			stale := CheckSpotFreshness("exec-w", mockStore, fixedClock{t: testNow}, time.Hour)

			require.Equal(t, tc.wantStale, stale)
			mockStore.AssertExpectations(t)
		})
	}
}
