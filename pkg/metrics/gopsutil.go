package metrics

import (
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// cpuSampleInterval matches the short blocking sample the sys command takes.
const cpuSampleInterval = 300 * time.Millisecond

// Gopsutil is the real Provider, backed by gopsutil.
type Gopsutil struct{}

// NewProvider probes the host once and returns the gopsutil provider, or the
// Unavailable provider when even a basic memory read fails (restricted
// containers, unsupported platforms).
func NewProvider() Provider {
	if _, err := mem.VirtualMemory(); err != nil {
		return Unavailable{}
	}
	return Gopsutil{}
}

func (Gopsutil) Available() bool { return true }

func (Gopsutil) Processes() ([]Process, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	out := make([]Process, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			// Processes can exit mid-iteration; skip them like ps does.
			continue
		}
		cpuPct, _ := p.CPUPercent()
		memPct, _ := p.MemoryPercent()
		out = append(out, Process{
			PID:        p.Pid,
			Name:       name,
			CPUPercent: cpuPct,
			MemPercent: memPct,
		})
	}
	return out, nil
}

func (Gopsutil) CPUPercent() (float64, error) {
	percents, err := cpu.Percent(cpuSampleInterval, false)
	if err != nil {
		return 0, err
	}
	if len(percents) == 0 {
		return 0, ErrUnavailable
	}
	return percents[0], nil
}

func (Gopsutil) Memory() (MemoryStat, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return MemoryStat{}, err
	}
	return MemoryStat{
		Total:       vm.Total,
		Used:        vm.Used,
		UsedPercent: vm.UsedPercent,
	}, nil
}
