package logger

import (
	"strconv"
	"strings"
	"sync"
)

// ratioSampler lets the first pass events of every window-sized run of
// debug records through and drops the rest. Session advances are by far
// the chattiest records; sampling keeps them visible without flooding.
// An unset ratio passes everything.
type ratioSampler struct {
	mu     sync.Mutex
	pass   int
	window int
	seen   int
}

func newRatioSampler(pass, window int) *ratioSampler {
	s := &ratioSampler{}
	s.Set(pass, window)
	return s
}

// Set configures the sampling ratio as pass-out-of-window.
// Non-positive values disable sampling.
func (s *ratioSampler) Set(pass, window int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pass <= 0 || window <= 0 {
		s.pass, s.window, s.seen = 0, 0, 0
		return
	}
	if pass > window {
		pass = window
	}
	s.pass = pass
	s.window = window
	s.seen = 0
}

// Allow reports whether the current event should pass sampling.
func (s *ratioSampler) Allow() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.window <= 0 || s.pass <= 0 {
		return true
	}
	s.seen++
	if s.seen > s.window {
		s.seen = 1
	}
	return s.seen <= s.pass
}

// parseRatioSpec understands "N/M" (N out of M) and a bare "M" (1 out of M).
// Anything else disables sampling.
func parseRatioSpec(spec string) (int, int) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return 0, 0
	}
	if strings.Contains(spec, "/") {
		parts := strings.SplitN(spec, "/", 2)
		num, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		den, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err1 == nil && err2 == nil {
			return num, den
		}
	}
	if v, err := strconv.Atoi(spec); err == nil {
		if v <= 0 {
			return 0, 0
		}
		return 1, v
	}
	return 0, 0
}
