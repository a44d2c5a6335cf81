package stage

import (
	"sync"
	"time"
)

// Scheduler is the host frame-scheduling primitive: the stage requests one
// frame callback at a time and re-requests from within the callback to
// keep the loop running. Cancelling only affects the next scheduled frame;
// a callback already executing runs to completion.
type Scheduler interface {
	// RequestFrame schedules cb to run at the next frame and returns a
	// handle for cancellation. The callback receives the frame timestamp.
	RequestFrame(cb func(now time.Time)) uint64

	// CancelFrame cancels the pending request with the given handle.
	// Unknown handles are ignored.
	CancelFrame(handle uint64)
}

// TimerScheduler schedules frames off a wall-clock interval. It is the
// default host primitive for headless use; the terminal platform drives
// the stage through its own tick-message bridge instead.
type TimerScheduler struct {
	interval time.Duration

	mu     sync.Mutex
	next   uint64
	timers map[uint64]*time.Timer
}

// NewTimerScheduler creates a scheduler firing at the given tick rate.
// A rate of zero or below defaults to 60.
func NewTimerScheduler(tickRate int) *TimerScheduler {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &TimerScheduler{
		interval: time.Second / time.Duration(tickRate),
		timers:   make(map[uint64]*time.Timer),
	}
}

// RequestFrame schedules cb to run one interval from now.
func (s *TimerScheduler) RequestFrame(cb func(now time.Time)) uint64 {
	s.mu.Lock()
	s.next++
	handle := s.next
	s.mu.Unlock()

	timer := time.AfterFunc(s.interval, func() {
		s.mu.Lock()
		delete(s.timers, handle)
		s.mu.Unlock()
		cb(time.Now())
	})

	s.mu.Lock()
	s.timers[handle] = timer
	s.mu.Unlock()
	return handle
}

// CancelFrame stops the pending timer for the given handle.
func (s *TimerScheduler) CancelFrame(handle uint64) {
	s.mu.Lock()
	timer, ok := s.timers[handle]
	if ok {
		delete(s.timers, handle)
	}
	s.mu.Unlock()
	if ok {
		timer.Stop()
	}
}

// ManualScheduler is a deterministic scheduler driven by explicit Fire
// calls. It holds at most one pending request, matching how the stage
// schedules frames, and is intended for tests and single-stepped hosts.
type ManualScheduler struct {
	next    uint64
	pending uint64
	cb      func(now time.Time)
}

// NewManualScheduler creates an empty manual scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// RequestFrame stores cb as the pending frame callback.
func (s *ManualScheduler) RequestFrame(cb func(now time.Time)) uint64 {
	s.next++
	s.pending = s.next
	s.cb = cb
	return s.pending
}

// CancelFrame clears the pending callback if the handle matches.
func (s *ManualScheduler) CancelFrame(handle uint64) {
	if handle == s.pending {
		s.pending = 0
		s.cb = nil
	}
}

// Pending reports whether a frame callback is currently scheduled.
func (s *ManualScheduler) Pending() bool {
	return s.cb != nil
}

// Fire runs the pending callback with the given timestamp. It is a no-op
// when nothing is scheduled. The callback is cleared before running so it
// can re-request the next frame.
func (s *ManualScheduler) Fire(now time.Time) {
	cb := s.cb
	s.cb = nil
	s.pending = 0
	if cb != nil {
		cb(now)
	}
}
