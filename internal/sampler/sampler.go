package sampler

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/Dicklesworthstone/sysdash/internal/errors"
	"github.com/Dicklesworthstone/sysdash/internal/model"
)

// Operating systems gopsutil can report memory, host and CPU details for.
var supportedOS = map[string]bool{
	"linux":     true,
	"darwin":    true,
	"windows":   true,
	"freebsd":   true,
	"openbsd":   true,
	"netbsd":    true,
	"dragonfly": true,
	"solaris":   true,
	"aix":       true,
}

// sources are the gopsutil calls a refresh is built from.
type sources struct {
	virtualMemory func(context.Context) (*mem.VirtualMemoryStat, error)
	swapMemory    func(context.Context) (*mem.SwapMemoryStat, error)
	hostInfo      func(context.Context) (*host.InfoStat, error)
	cpuInfo       func(context.Context) ([]cpu.InfoStat, error)
	cpuCount      func(context.Context) (int, error)
	curFreq       func(cpu int) (mhz uint64, ok bool)
}

var gopsutil = sources{
	virtualMemory: mem.VirtualMemoryWithContext,
	swapMemory:    mem.SwapMemoryWithContext,
	hostInfo:      host.InfoWithContext,
	cpuInfo:       cpu.InfoWithContext,
	cpuCount:      logicalCounts,
	curFreq:       scalingCurFreq,
}

func logicalCounts(ctx context.Context) (int, error) {
	return cpu.CountsWithContext(ctx, true)
}

// scalingCurFreq reads the kernel's current frequency for one logical CPU.
// gopsutil reports the rated maximum on linux; elsewhere the file is absent.
func scalingCurFreq(n int) (uint64, bool) {
	b, err := os.ReadFile(fmt.Sprintf("/sys/devices/system/cpu/cpu%d/cpufreq/scaling_cur_freq", n))
	if err != nil {
		return 0, false
	}
	khz, err := strconv.ParseUint(strings.TrimSpace(string(b)), 10, 64)
	if err != nil || khz == 0 {
		return 0, false
	}
	return khz / 1000, true
}

// Sampler holds the most recent host snapshot. Refresh replaces it wholesale.
type Sampler struct {
	goos   string
	src    sources
	latest model.Snapshot
}

func New() *Sampler {
	return &Sampler{
		goos:   runtime.GOOS,
		src:    gopsutil,
		latest: model.Zero(),
	}
}

// Supported reports whether host metrics can be queried on this OS.
func (s *Sampler) Supported() bool { return supportedOS[s.goos] }

// Refresh recomputes every field of the snapshot. On failure the previous
// snapshot is kept.
func (s *Sampler) Refresh(ctx context.Context) error {
	vm, err := s.src.virtualMemory(ctx)
	if err != nil {
		return errors.Wrap(err, errors.ErrMetrics, "read memory")
	}
	sw, err := s.src.swapMemory(ctx)
	if err != nil {
		return errors.Wrap(err, errors.ErrMetrics, "read swap")
	}
	hi, err := s.src.hostInfo(ctx)
	if err != nil {
		return errors.Wrap(err, errors.ErrMetrics, "read host info")
	}
	ci, err := s.src.cpuInfo(ctx)
	if err != nil {
		return errors.Wrap(err, errors.ErrMetrics, "read cpu info")
	}
	logical, err := s.src.cpuCount(ctx)
	if err != nil {
		return errors.Wrap(err, errors.ErrMetrics, "count cpus")
	}

	s.latest = model.Snapshot{
		Memory: model.Memory{
			TotalBytes: vm.Total,
			UsedBytes:  vm.Used,
			SwapTotal:  sw.Total,
			SwapUsed:   sw.Used,
		},
		Host: hostFrom(hi),
		CPUs: cpusFrom(ci, logical, s.src.curFreq),
	}
	return nil
}

// Snapshot returns the result of the last successful Refresh.
func (s *Sampler) Snapshot() model.Snapshot { return s.latest }

func hostFrom(hi *host.InfoStat) model.Host {
	name := hi.Platform
	if name == "" {
		name = hi.OS
	}
	return model.Host{
		OSName:        opt(name),
		KernelVersion: opt(hi.KernelVersion),
		OSVersion:     opt(hi.PlatformVersion),
		HostName:      opt(hi.Hostname),
	}
}

// cpusFrom returns one record per logical CPU in gopsutil's order, named by
// logical index. darwin reports a single package entry and windows one per
// socket; the extra logical CPUs reuse the last package's details.
func cpusFrom(infos []cpu.InfoStat, logical int, curFreq func(int) (uint64, bool)) []model.CPU {
	n := len(infos)
	if logical > n {
		n = logical
	}
	cpus := make([]model.CPU, 0, n)
	for i := 0; i < n; i++ {
		var c cpu.InfoStat
		if len(infos) > 0 {
			c = infos[min(i, len(infos)-1)]
		}
		freq := uint64(0)
		if c.Mhz > 0 {
			freq = uint64(c.Mhz)
		}
		if curFreq != nil {
			if mhz, ok := curFreq(i); ok {
				freq = mhz
			}
		}
		cpus = append(cpus, model.CPU{
			Name:      fmt.Sprintf("cpu%d", i),
			Frequency: freq,
			Brand:     c.ModelName,
			VendorID:  c.VendorID,
		})
	}
	return cpus
}

func opt(s string) model.OptString {
	if s == "" {
		return model.None()
	}
	return model.Some(s)
}
