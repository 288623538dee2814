package app

import (
	"fmt"
	"runtime"
	"time"

	"spincube/hal"
)

// Stats counts rendered frames and logs frame rate and heap usage once per
// interval.
type Stats struct {
	log      hal.Logger
	now      func() time.Time
	interval time.Duration

	frames    int
	last      time.Time
	lastFPS   float64
	lastAlloc uint64
	mem       runtime.MemStats
}

// NewStats returns a Stats reporting every second.
func NewStats(log hal.Logger) *Stats {
	return newStatsWithClock(log, time.Second, time.Now)
}

func newStatsWithClock(log hal.Logger, interval time.Duration, now func() time.Time) *Stats {
	s := &Stats{log: log, now: now, interval: interval, last: now()}
	runtime.ReadMemStats(&s.mem)
	s.lastAlloc = s.mem.TotalAlloc
	return s
}

// FPS is the rate measured over the last completed interval.
func (s *Stats) FPS() float64 { return s.lastFPS }

// Tick records one frame and reports whether a line was logged.
func (s *Stats) Tick() bool {
	s.frames++
	t := s.now()
	elapsed := t.Sub(s.last)
	if elapsed < s.interval {
		return false
	}

	s.lastFPS = float64(s.frames) / elapsed.Seconds()
	runtime.ReadMemStats(&s.mem)
	heapMB := float64(s.mem.Alloc) / 1024 / 1024
	rateMB := float64(s.mem.TotalAlloc-s.lastAlloc) / 1024 / 1024 / elapsed.Seconds()

	s.log.WriteLineString(fmt.Sprintf("stats: fps=%.2f heap=%.2fMB alloc=%.2fMB/s gc=%d",
		s.lastFPS, heapMB, rateMB, s.mem.NumGC))

	s.frames = 0
	s.last = t
	s.lastAlloc = s.mem.TotalAlloc
	return true
}
