package shell

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/goterminal/goterm/pkg/metrics"
)

// RegisterSystemCommands adds ps and sys on top of the metrics provider.
// Both degrade gracefully when the provider reports unavailable.
func RegisterSystemCommands(reg *Registry, provider metrics.Provider) {
	reg.Register(&Command{
		Name: "ps",
		Help: "ps - list running processes",
		Run: func(args []string) Result {
			return psCommand(provider)
		},
	})
	reg.Register(&Command{
		Name: "sys",
		Help: "sys - show CPU and memory usage",
		Run: func(args []string) Result {
			return sysCommand(provider)
		},
	})
}

func psCommand(provider metrics.Provider) Result {
	if !provider.Available() {
		// No enumeration provider: delegate to the platform listing program.
		if runtime.GOOS == "windows" {
			return RunProgram("tasklist", nil)
		}
		return RunProgram("ps", []string{"aux"})
	}

	procs, err := provider.Processes()
	if err != nil {
		return Fail("ps: error: %v", err)
	}

	var out strings.Builder
	fmt.Fprintf(&out, "%6s  %-30s %6s %6s", "PID", "Name", "CPU%", "Mem%")
	for _, p := range procs {
		name := p.Name
		if len(name) > 30 {
			name = name[:30]
		}
		fmt.Fprintf(&out, "\n%6d  %-30s %6.1f %6.2f", p.PID, name, p.CPUPercent, p.MemPercent)
	}
	return Result{OK: true, Output: out.String()}
}

func sysCommand(provider metrics.Provider) Result {
	if !provider.Available() {
		return Fail("sys: system metrics are not available on this host")
	}

	cpuPct, err := provider.CPUPercent()
	if err != nil {
		return Fail("sys: error: %v", err)
	}
	memStat, err := provider.Memory()
	if err != nil {
		return Fail("sys: error: %v", err)
	}

	return Ok("CPU usage: %.1f%%\nMemory: %.1f%% used - %.1fMB used / %.1fMB total",
		cpuPct,
		memStat.UsedPercent,
		float64(memStat.Used)/1024/1024,
		float64(memStat.Total)/1024/1024,
	)
}
