package config

import (
	"sync"
	"time"
)

// LoopSettings holds frame loop configuration
type LoopSettings struct {
	mu            sync.RWMutex
	fixedDelta    float64
	fixedTime     float64
	fpsLimit      int
	slowFrame     time.Duration
	profilingTopN int
}

var globalLoopSettings = &LoopSettings{
	fixedDelta:    0.1,
	fixedTime:     0,
	fpsLimit:      0, // unlimited
	slowFrame:     16 * time.Millisecond,
	profilingTopN: 5,
}

// GetFixedTick returns the delta/time pair used for out-of-loop ticks
func GetFixedTick() (delta, elapsed float64) {
	globalLoopSettings.mu.RLock()
	defer globalLoopSettings.mu.RUnlock()
	return globalLoopSettings.fixedDelta, globalLoopSettings.fixedTime
}

// SetFixedTick sets the delta/time pair used for out-of-loop ticks
func SetFixedTick(delta, elapsed float64) {
	if delta < 0 || elapsed < 0 {
		return
	}
	globalLoopSettings.mu.Lock()
	defer globalLoopSettings.mu.Unlock()
	globalLoopSettings.fixedDelta = delta
	globalLoopSettings.fixedTime = elapsed
}

// GetFPSLimit returns the frame cap, 0 for unlimited
func GetFPSLimit() int {
	globalLoopSettings.mu.RLock()
	defer globalLoopSettings.mu.RUnlock()
	return globalLoopSettings.fpsLimit
}

// SetFPSLimit sets the frame cap, 0 for unlimited
func SetFPSLimit(limit int) {
	globalLoopSettings.mu.Lock()
	defer globalLoopSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalLoopSettings.fpsLimit = limit
}

// GetSlowFrameThreshold returns the frame duration above which a frame is logged
func GetSlowFrameThreshold() time.Duration {
	globalLoopSettings.mu.RLock()
	defer globalLoopSettings.mu.RUnlock()
	return globalLoopSettings.slowFrame
}

// SetSlowFrameThreshold sets the slow-frame logging threshold
func SetSlowFrameThreshold(d time.Duration) {
	if d <= 0 {
		return
	}
	globalLoopSettings.mu.Lock()
	defer globalLoopSettings.mu.Unlock()
	globalLoopSettings.slowFrame = d
}

// GetProfilingTopN returns how many profiling buckets a slow-frame log includes
func GetProfilingTopN() int {
	globalLoopSettings.mu.RLock()
	defer globalLoopSettings.mu.RUnlock()
	return globalLoopSettings.profilingTopN
}

// SetProfilingTopN sets how many profiling buckets a slow-frame log includes
func SetProfilingTopN(n int) {
	globalLoopSettings.mu.Lock()
	defer globalLoopSettings.mu.Unlock()
	if n < 1 {
		n = 1
	}
	globalLoopSettings.profilingTopN = n
}
