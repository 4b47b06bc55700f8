package rotation

import (
	"math/big"
	"testing"
	"time"

	"github.com/ccradio/rotation-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const interval = 90 * time.Minute

func testEpoch(t *testing.T) time.Time {
	t.Helper()

	epoch, err := time.Parse(time.RFC3339, "2026-01-17T21:00:00+09:00")
	require.NoError(t, err)
	return epoch
}

func newTestClock(t *testing.T) *Clock {
	t.Helper()

	clock, err := NewClock([]Map{{Name: "A", Emote: "🅰️"}, {Name: "B"}, {Name: "C"}}, interval, testEpoch(t))
	require.NoError(t, err)
	return clock
}

// sampleOffsets covers both sides of the epoch, exact boundaries and the
// instants right before them.
func sampleOffsets() []time.Duration {
	offsets := []time.Duration{
		0, time.Nanosecond, -time.Nanosecond,
		interval, interval - time.Nanosecond, -interval, -interval - time.Nanosecond,
		95 * time.Minute, -10 * time.Minute,
		1000 * 24 * time.Hour, -1000 * 24 * time.Hour,
	}
	for m := -600; m <= 600; m += 7 {
		offsets = append(offsets, time.Duration(m)*time.Minute)
	}
	return offsets
}

func TestNewClock(t *testing.T) {
	epoch := testEpoch(t)

	tests := []struct {
		name     string
		maps     []Map
		interval time.Duration
		epoch    time.Time
		wantErr  bool
	}{
		{name: "Should build clock with valid config", maps: []Map{{Name: "A"}}, interval: interval, epoch: epoch},
		{name: "Should reject empty sequence", maps: nil, interval: interval, epoch: epoch, wantErr: true},
		{name: "Should reject zero interval", maps: []Map{{Name: "A"}}, interval: 0, epoch: epoch, wantErr: true},
		{name: "Should reject negative interval", maps: []Map{{Name: "A"}}, interval: -time.Minute, epoch: epoch, wantErr: true},
		{name: "Should reject zero epoch", maps: []Map{{Name: "A"}}, interval: interval, epoch: time.Time{}, wantErr: true},
		{name: "Should reject duplicate names", maps: []Map{{Name: "A"}, {Name: "B"}, {Name: "A"}}, interval: interval, epoch: epoch, wantErr: true},
		{name: "Should reject empty name", maps: []Map{{Name: "A"}, {Name: ""}}, interval: interval, epoch: epoch, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock, err := NewClock(tt.maps, tt.interval, tt.epoch)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidArgument)
				assert.Nil(t, clock)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.maps), clock.Len())
		})
	}
}

func TestClock_MapsIsACopy(t *testing.T) {
	clock := newTestClock(t)

	maps := clock.Maps()
	maps[0].Name = "changed"

	assert.Equal(t, "A", clock.Maps()[0].Name)
	assert.Equal(t, "A", clock.MapAt(clock.Epoch()).Name)
}

func TestClock_SlotIndexInRange(t *testing.T) {
	clock := newTestClock(t)
	epoch := clock.Epoch()

	for _, offset := range sampleOffsets() {
		slot := clock.SlotIndexAt(epoch.Add(offset))
		assert.GreaterOrEqual(t, slot, 0, "offset %s", offset)
		assert.Less(t, slot, clock.Len(), "offset %s", offset)
	}
}

// farInstants lie beyond the ±292 year range of time.Duration.
func farInstants(epoch time.Time) []time.Time {
	return []time.Time{
		epoch.AddDate(500, 0, 0),
		epoch.AddDate(-500, 0, 0),
		epoch.AddDate(500, 0, 0).Add(-time.Nanosecond),
		epoch.AddDate(-500, 0, 0).Add(time.Nanosecond),
		time.Date(1700, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2400, 1, 1, 0, 0, 0, 0, time.UTC),
		epoch.AddDate(-10000, 0, 0),
		epoch.AddDate(10000, 0, 0),
	}
}

func TestClock_CurrentWindowStartContainsInstant(t *testing.T) {
	clock := newTestClock(t)
	epoch := clock.Epoch()

	instants := farInstants(epoch)
	for _, offset := range sampleOffsets() {
		instants = append(instants, epoch.Add(offset))
	}

	for _, at := range instants {
		start := clock.CurrentWindowStart(at)

		assert.False(t, start.After(at), "%s: start %s after instant", at, start)
		assert.True(t, at.Before(start.Add(interval)), "%s: not before window end %s", at, start.Add(interval))
		assert.Zero(t, new(big.Int).Mod(clock.sinceEpoch(start), big.NewInt(int64(interval))).Sign(), "%s: start %s off the grid", at, start)
		assert.Equal(t, clock.MapAt(at), clock.MapAt(start), "%s", at)
	}
}

func TestClock_FarFromEpoch(t *testing.T) {
	clock := newTestClock(t)

	for _, at := range farInstants(clock.Epoch()) {
		windows, err := clock.EnumerateFrom(at, 4)
		require.NoError(t, err)
		for i := 1; i < len(windows); i++ {
			assert.Equal(t, interval, windows[i].Start.Sub(windows[i-1].Start), "%s", at)
			assert.Equal(t, (windows[i-1].SlotIndex+1)%clock.Len(), windows[i].SlotIndex, "%s", at)
		}

		occ, err := clock.NextOccurrences("B", at, 3)
		require.NoError(t, err)
		assert.True(t, at.Before(occ[0].End), "%s", at)
		for i, o := range occ {
			assert.Equal(t, "B", clock.MapAt(o.Start).Name, "%s", at)
			if i > 0 {
				assert.Equal(t, clock.CycleDuration(), o.Start.Sub(occ[i-1].Start), "%s", at)
			}
		}
	}
}

func TestClock_MapAtEpochIsFirstSlot(t *testing.T) {
	clock := newTestClock(t)

	assert.Equal(t, 0, clock.SlotIndexAt(clock.Epoch()))
	assert.Equal(t, "A", clock.MapAt(clock.Epoch()).Name)
}

func TestClock_Scenario(t *testing.T) {
	clock := newTestClock(t)
	epoch := clock.Epoch()

	t.Run("at epoch", func(t *testing.T) {
		snap := clock.CurrentAndNext(epoch)

		assert.Equal(t, "A", snap.Current.Map.Name)
		assert.True(t, snap.Current.End.Equal(epoch.Add(interval)))
		assert.Equal(t, "B", snap.Next.Map.Name)
		assert.True(t, snap.Next.Start.Equal(snap.Current.End))
	})

	t.Run("95 minutes after epoch", func(t *testing.T) {
		at := epoch.Add(95 * time.Minute)

		assert.Equal(t, 1, clock.SlotIndexAt(at))
		assert.Equal(t, "B", clock.MapAt(at).Name)
	})

	t.Run("10 minutes before epoch resolves to the previous slot", func(t *testing.T) {
		at := epoch.Add(-10 * time.Minute)

		assert.Equal(t, 2, clock.SlotIndexAt(at))
		assert.Equal(t, "C", clock.MapAt(at).Name)
		assert.True(t, clock.CurrentWindowStart(at).Equal(epoch.Add(-interval)))
	})

	t.Run("next occurrences of A while B is active", func(t *testing.T) {
		occ, err := clock.NextOccurrences("A", epoch.Add(95*time.Minute), 2)
		require.NoError(t, err)
		require.Len(t, occ, 2)

		assert.True(t, occ[0].Start.Equal(epoch.Add(3*interval)))
		assert.True(t, occ[0].End.Equal(epoch.Add(4*interval)))
		assert.True(t, occ[1].Start.Equal(occ[0].Start.Add(3*interval)))
		assert.False(t, occ[0].IsCurrent)
		assert.False(t, occ[1].IsCurrent)
	})
}

func TestClock_CurrentAndNextAtBoundary(t *testing.T) {
	clock := newTestClock(t)
	boundary := clock.Epoch().Add(interval)

	before := clock.CurrentAndNext(boundary.Add(-time.Nanosecond))
	at := clock.CurrentAndNext(boundary)

	assert.Equal(t, "A", before.Current.Map.Name)
	assert.True(t, before.Current.End.Equal(boundary))
	assert.Equal(t, "B", before.Next.Map.Name)

	assert.Equal(t, "B", at.Current.Map.Name)
	assert.True(t, at.Current.End.Equal(boundary.Add(interval)))
	assert.Equal(t, "C", at.Next.Map.Name)
}

func TestClock_CurrentAndNextWrapsAround(t *testing.T) {
	clock := newTestClock(t)
	at := clock.Epoch().Add(2*interval + time.Minute)

	snap := clock.CurrentAndNext(at)

	assert.Equal(t, "C", snap.Current.Map.Name)
	assert.Equal(t, "A", snap.Next.Map.Name)
}

func TestClock_EnumerateFrom(t *testing.T) {
	clock := newTestClock(t)
	epoch := clock.Epoch()

	t.Run("Should start at the current window and step by interval", func(t *testing.T) {
		for _, offset := range sampleOffsets() {
			at := epoch.Add(offset)
			windows, err := clock.EnumerateFrom(at, 7)
			require.NoError(t, err)
			require.Len(t, windows, 7)

			assert.True(t, windows[0].Start.Equal(clock.CurrentWindowStart(at)))
			for i, w := range windows {
				assert.True(t, w.End.Equal(w.Start.Add(interval)))
				assert.Equal(t, clock.MapAt(w.Start), w.Map)
				assert.Equal(t, clock.SlotIndexAt(w.Start), w.SlotIndex)
				if i > 0 {
					assert.Equal(t, interval, w.Start.Sub(windows[i-1].Start))
					assert.Equal(t, (windows[i-1].SlotIndex+1)%clock.Len(), w.SlotIndex)
				}
			}
		}
	})

	t.Run("Should return empty sequence for zero count", func(t *testing.T) {
		windows, err := clock.EnumerateFrom(epoch, 0)
		require.NoError(t, err)
		assert.Empty(t, windows)
	})

	t.Run("Should reject negative count", func(t *testing.T) {
		windows, err := clock.EnumerateFrom(epoch, -1)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		assert.Nil(t, windows)
	})

	t.Run("Should not cap the count", func(t *testing.T) {
		windows, err := clock.EnumerateFrom(epoch, 25)
		require.NoError(t, err)
		assert.Len(t, windows, 25)
		assert.Equal(t, "A", windows[24].Map.Name)
	})

	t.Run("Should repeat for identical queries", func(t *testing.T) {
		at := epoch.Add(123 * time.Minute)
		first, err := clock.EnumerateFrom(at, 5)
		require.NoError(t, err)
		second, err := clock.EnumerateFrom(at, 5)
		require.NoError(t, err)

		require.Len(t, second, len(first))
		for i := range first {
			assert.True(t, first[i].Equal(second[i]))
		}
	})
}

func TestClock_NextOccurrences(t *testing.T) {
	clock := newTestClock(t)
	epoch := clock.Epoch()
	cycle := clock.CycleDuration()

	t.Run("Should space occurrences by one cycle", func(t *testing.T) {
		for _, name := range []string{"A", "B", "C"} {
			for _, offset := range sampleOffsets() {
				at := epoch.Add(offset)
				occ, err := clock.NextOccurrences(name, at, 4)
				require.NoError(t, err)
				require.Len(t, occ, 4)

				for i, o := range occ {
					assert.Equal(t, name, clock.MapAt(o.Start).Name)
					assert.True(t, o.End.Equal(o.Start.Add(interval)))
					assert.True(t, at.Before(o.End), "occurrence must not be over")
					if i > 0 {
						assert.Equal(t, cycle, o.Start.Sub(occ[i-1].Start))
						assert.False(t, o.IsCurrent)
					}
				}
			}
		}
	})

	t.Run("Should include the active window as current", func(t *testing.T) {
		at := epoch.Add(100 * time.Minute)

		occ, err := clock.NextOccurrences("B", at, 3)
		require.NoError(t, err)

		assert.True(t, occ[0].IsCurrent)
		assert.True(t, occ[0].Start.Equal(clock.CurrentWindowStart(at)))
		assert.False(t, occ[1].IsCurrent)
	})

	t.Run("Should treat window start as current", func(t *testing.T) {
		occ, err := clock.NextOccurrences("A", epoch, 1)
		require.NoError(t, err)

		assert.True(t, occ[0].IsCurrent)
		assert.True(t, occ[0].Start.Equal(epoch))
	})

	t.Run("Should work before the epoch", func(t *testing.T) {
		occ, err := clock.NextOccurrences("A", epoch.Add(-10*time.Minute), 1)
		require.NoError(t, err)

		assert.False(t, occ[0].IsCurrent)
		assert.True(t, occ[0].Start.Equal(epoch))
	})

	t.Run("Should fail for unknown map", func(t *testing.T) {
		occ, err := clock.NextOccurrences("Z", epoch, 2)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, occ)
	})

	t.Run("Should reject count below one", func(t *testing.T) {
		for _, count := range []int{0, -3} {
			_, err := clock.NextOccurrences("A", epoch, count)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		}
	})
}

func TestClock_SingleMap(t *testing.T) {
	clock, err := NewClock([]Map{{Name: "solo"}}, interval, testEpoch(t))
	require.NoError(t, err)

	at := clock.Epoch().Add(-7 * time.Hour)
	snap := clock.CurrentAndNext(at)
	assert.Equal(t, "solo", snap.Current.Map.Name)
	assert.Equal(t, "solo", snap.Next.Map.Name)

	occ, err := clock.NextOccurrences("solo", at, 2)
	require.NoError(t, err)
	assert.True(t, occ[0].IsCurrent)
	assert.Equal(t, interval, occ[1].Start.Sub(occ[0].Start))
}

func TestClock_EpochOffBoundaryForOtherTimezones(t *testing.T) {
	clock := newTestClock(t)
	at := clock.Epoch().Add(95 * time.Minute)

	assert.Equal(t, clock.MapAt(at), clock.MapAt(at.UTC()))
	assert.True(t, clock.CurrentWindowStart(at).Equal(clock.CurrentWindowStart(at.In(time.UTC))))
}

func TestMap_Label(t *testing.T) {
	assert.Equal(t, "A", Map{Name: "A"}.Label())
	assert.Equal(t, "🌋 B", Map{Name: "B", Emote: "🌋"}.Label())
}

func Test_floorMod(t *testing.T) {
	tests := []struct {
		a, m, want int64
	}{
		{a: 7, m: 3, want: 1},
		{a: 6, m: 3, want: 0},
		{a: -1, m: 3, want: 2},
		{a: -3, m: 3, want: 0},
		{a: -4, m: 3, want: 2},
		{a: 0, m: 3, want: 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, floorMod(tt.a, tt.m), "%d mod %d", tt.a, tt.m)
	}
}
