package model

// Unknown is rendered in place of an absent host string.
const Unknown = "Unknown"

// OptString is a host string the platform may not report.
type OptString struct {
	Value string
	Valid bool
}

// Some wraps a present value.
func Some(v string) OptString { return OptString{Value: v, Valid: true} }

// None is the absent value.
func None() OptString { return OptString{} }

// Or returns the value, or fallback when absent.
func (o OptString) Or(fallback string) string {
	if !o.Valid {
		return fallback
	}
	return o.Value
}

// Memory captures RAM and swap usage in bytes.
type Memory struct {
	TotalBytes uint64
	UsedBytes  uint64
	SwapTotal  uint64
	SwapUsed   uint64
}

// Host identifies the operating system and machine.
type Host struct {
	OSName        OptString
	KernelVersion OptString
	OSVersion     OptString
	HostName      OptString
}

// CPU is one logical processor as reported by the provider.
type CPU struct {
	Name      string
	Frequency uint64 // MHz
	Brand     string
	VendorID  string
}

// Snapshot is the full set of host metrics from one refresh. It is replaced
// wholesale on the next refresh and never mutated in place.
type Snapshot struct {
	Memory Memory
	Host   Host
	CPUs   []CPU
}

// Zero returns an empty snapshot for initialization.
func Zero() Snapshot { return Snapshot{} }
