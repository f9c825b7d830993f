// Package metrics exposes process and system utilization behind a narrow
// capability interface, so callers can degrade gracefully when the real
// provider is not usable on the host.
package metrics

import "errors"

// ErrUnavailable is returned by every method of the unavailable provider.
var ErrUnavailable = errors.New("metrics provider unavailable")

// Process is one entry of a process listing.
type Process struct {
	PID        int32
	Name       string
	CPUPercent float64
	MemPercent float32
}

// MemoryStat is a point-in-time snapshot of system memory utilization.
type MemoryStat struct {
	Total       uint64
	Used        uint64
	UsedPercent float64
}

type Provider interface {
	// Available reports whether the provider can serve metrics at all.
	Available() bool
	Processes() ([]Process, error)
	CPUPercent() (float64, error)
	Memory() (MemoryStat, error)
}

// Unavailable is the no-op provider selected when system metrics cannot be
// collected. Handlers branch on Available and fall back or report a
// capability message instead of failing.
type Unavailable struct{}

func (Unavailable) Available() bool { return false }

func (Unavailable) Processes() ([]Process, error) { return nil, ErrUnavailable }

func (Unavailable) CPUPercent() (float64, error) { return 0, ErrUnavailable }

func (Unavailable) Memory() (MemoryStat, error) { return MemoryStat{}, ErrUnavailable }
