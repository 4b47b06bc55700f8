// Package rotation computes the map rotation as a pure function of time.
//
// A Clock is built once from the ordered map list, the slot interval and the
// epoch at which slot 0 began. It keeps no mutable state, so a single Clock
// can be shared by every command handler and background job.
package rotation

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ccradio/rotation-bot/internal/domain"
)

// Map is one entry of the rotation. Emote is an optional display glyph.
type Map struct {
	Name  string `json:"name"`
	Emote string `json:"emote,omitempty"`
}

// Label returns the map name prefixed by its emote when one is set.
func (m Map) Label() string {
	if m.Emote == "" {
		return m.Name
	}
	return m.Emote + " " + m.Name
}

// Window is the half-open range [Start, End) during which Map is active.
type Window struct {
	SlotIndex int
	Map       Map
	Start     time.Time
	End       time.Time
}

// Equal reports whether both windows start at the same instant. The interval
// is fixed, so equal starts imply equal ends.
func (w Window) Equal(other Window) bool {
	return w.Start.Equal(other.Start)
}

// Occurrence is one upcoming window of a specific map.
type Occurrence struct {
	Start     time.Time
	End       time.Time
	IsCurrent bool
}

// Current is the active window as seen at query time.
type Current struct {
	Map Map
	End time.Time
}

// Next is the window that follows Current.
type Next struct {
	Map   Map
	Start time.Time
}

// Snapshot is the answer to "what is on now and what comes next".
type Snapshot struct {
	Current Current
	Next    Next
}

// Clock answers rotation queries for a fixed map sequence.
type Clock struct {
	maps     []Map
	index    map[string]int
	interval time.Duration
	epoch    time.Time
}

// NewClock validates the configuration and returns an immutable Clock.
func NewClock(maps []Map, interval time.Duration, epoch time.Time) (*Clock, error) {
	if len(maps) == 0 {
		return nil, fmt.Errorf("%w: map sequence is empty", domain.ErrInvalidArgument)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("%w: interval must be positive, got %s", domain.ErrInvalidArgument, interval)
	}
	if epoch.IsZero() {
		return nil, fmt.Errorf("%w: epoch is not set", domain.ErrInvalidArgument)
	}

	index := make(map[string]int, len(maps))
	for i, m := range maps {
		if m.Name == "" {
			return nil, fmt.Errorf("%w: map at slot %d has no name", domain.ErrInvalidArgument, i)
		}
		if prev, ok := index[m.Name]; ok {
			return nil, fmt.Errorf("%w: map %q appears at slots %d and %d", domain.ErrInvalidArgument, m.Name, prev, i)
		}
		index[m.Name] = i
	}

	return &Clock{
		maps:     append([]Map(nil), maps...),
		index:    index,
		interval: interval,
		epoch:    epoch,
	}, nil
}

// Maps returns a copy of the sequence in rotation order.
func (c *Clock) Maps() []Map {
	return append([]Map(nil), c.maps...)
}

// Len is the number of slots in one cycle.
func (c *Clock) Len() int {
	return len(c.maps)
}

// Interval is the length of a single window.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Epoch is the start of slot 0's first window.
func (c *Clock) Epoch() time.Time {
	return c.epoch
}

// CycleDuration is the time it takes for the whole sequence to repeat.
func (c *Clock) CycleDuration() time.Duration {
	return time.Duration(len(c.maps)) * c.interval
}

// Lookup returns the map and its slot index by exact name.
func (c *Clock) Lookup(name string) (Map, int, error) {
	i, ok := c.index[name]
	if !ok {
		return Map{}, -1, fmt.Errorf("%w: map %q is not in the rotation", domain.ErrNotFound, name)
	}
	return c.maps[i], i, nil
}

var nanosPerSecond = big.NewInt(int64(time.Second))

// sinceEpoch is t - epoch in nanoseconds. It is kept exact because
// time.Duration saturates about 292 years away from the epoch.
func (c *Clock) sinceEpoch(t time.Time) *big.Int {
	secs := new(big.Int).Sub(big.NewInt(t.Unix()), big.NewInt(c.epoch.Unix()))
	ns := secs.Mul(secs, nanosPerSecond)
	return ns.Add(ns, big.NewInt(int64(t.Nanosecond()-c.epoch.Nanosecond())))
}

// rotationCount is the number of whole intervals between epoch and t,
// rounded toward negative infinity. big.Int.Div is Euclidean, which is
// floor division for a positive divisor.
func (c *Clock) rotationCount(t time.Time) *big.Int {
	return new(big.Int).Div(c.sinceEpoch(t), big.NewInt(int64(c.interval)))
}

// advance returns t moved by n steps, carrying seconds and nanoseconds
// separately so the offset never passes through a time.Duration.
func advance(t time.Time, n *big.Int, step time.Duration) time.Time {
	offset := new(big.Int).Mul(n, big.NewInt(int64(step)))
	secs, nanos := new(big.Int).DivMod(offset, nanosPerSecond, new(big.Int))
	return time.Unix(t.Unix()+secs.Int64(), int64(t.Nanosecond())+nanos.Int64()).In(t.Location())
}

// SlotIndexAt returns the slot active at t, always in [0, Len()).
func (c *Clock) SlotIndexAt(t time.Time) int {
	return int(new(big.Int).Mod(c.rotationCount(t), big.NewInt(int64(len(c.maps)))).Int64())
}

// MapAt returns the map active at t.
func (c *Clock) MapAt(t time.Time) Map {
	return c.maps[c.SlotIndexAt(t)]
}

// CurrentWindowStart returns the start of the window containing t.
func (c *Clock) CurrentWindowStart(t time.Time) time.Time {
	return advance(c.epoch, c.rotationCount(t), c.interval)
}

// CurrentAndNext reports the active map with its end and the following map
// with its start. An instant equal to a window start belongs to that window.
func (c *Clock) CurrentAndNext(t time.Time) Snapshot {
	end := c.CurrentWindowStart(t).Add(c.interval)
	return Snapshot{
		Current: Current{Map: c.MapAt(t), End: end},
		Next:    Next{Map: c.MapAt(end), Start: end},
	}
}

// EnumerateFrom lists count consecutive windows beginning with the one that
// contains t.
func (c *Clock) EnumerateFrom(t time.Time, count int) ([]Window, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: count must not be negative, got %d", domain.ErrInvalidArgument, count)
	}

	start := c.CurrentWindowStart(t)
	windows := make([]Window, 0, count)
	for i := 0; i < count; i++ {
		s := advance(start, big.NewInt(int64(i)), c.interval)
		slot := c.SlotIndexAt(s)
		windows = append(windows, Window{
			SlotIndex: slot,
			Map:       c.maps[slot],
			Start:     s,
			End:       s.Add(c.interval),
		})
	}
	return windows, nil
}

// NextOccurrences lists the next count windows of the named map. When the map
// is active at t the first entry is the current window, flagged IsCurrent.
func (c *Clock) NextOccurrences(name string, t time.Time, count int) ([]Occurrence, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: count must be at least 1, got %d", domain.ErrInvalidArgument, count)
	}

	_, target, err := c.Lookup(name)
	if err != nil {
		return nil, err
	}

	length := int64(len(c.maps))
	turns := floorMod(int64(target-c.SlotIndexAt(t)), length)
	first := advance(c.CurrentWindowStart(t), big.NewInt(turns), c.interval)

	occurrences := make([]Occurrence, 0, count)
	for i := 0; i < count; i++ {
		start := advance(first, big.NewInt(int64(i)*length), c.interval)
		end := start.Add(c.interval)
		occurrences = append(occurrences, Occurrence{
			Start:     start,
			End:       end,
			IsCurrent: !t.Before(start) && t.Before(end),
		})
	}
	return occurrences, nil
}

// floorMod normalises a into [0, m) for m > 0.
func floorMod(a, m int64) int64 {
	return ((a % m) + m) % m
}
