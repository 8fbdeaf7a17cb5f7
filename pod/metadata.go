// Package pod reads the metadata a pod exposes through its environment and
// turns it into the text shown on the dashboard's detail screens.
package pod

import (
	"os"
	"strconv"
	"strings"
)

// NotAvailable replaces any attribute the pod does not expose.
const NotAvailable = "N/A"

// Keys the dashboard interprets beyond plain display.
const (
	KeyPodID    = "RUNPOD_POD_ID"
	KeyGPUCount = "RUNPOD_GPU_COUNT"
	KeyPublicIP = "RUNPOD_PUBLIC_IP"
	KeySSHPort  = "RUNPOD_TCP_PORT_22"
	KeyHTTPPort = "RUNPOD_TCP_PORT_8080"
	KeyHostname = "RUNPOD_POD_HOSTNAME"
)

// Source looks up a single instance attribute.
type Source interface {
	Lookup(key string) (string, bool)
}

// EnvSource reads attributes from the process environment.
type EnvSource struct{}

func (EnvSource) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapSource is a fixed set of attributes.
type MapSource map[string]string

func (m MapSource) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Snapshot is a read-only copy of the attributes taken when a screen is
// entered. Later changes to the source do not affect it.
type Snapshot struct {
	values map[string]string
}

// Capture copies the given keys from src. Blank values count as missing.
func Capture(src Source, keys ...string) Snapshot {
	values := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := src.Lookup(k); ok {
			if v = strings.TrimSpace(v); v != "" {
				values[k] = v
			}
		}
	}
	return Snapshot{values: values}
}

// CaptureAll copies every key in the catalog from src.
func CaptureAll(src Source, c *Catalog) Snapshot {
	return Capture(src, c.Keys()...)
}

func (s Snapshot) Lookup(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Get returns the attribute or NotAvailable.
func (s Snapshot) Get(key string) string {
	if v, ok := s.values[key]; ok {
		return v
	}
	return NotAvailable
}

// GPUCount returns the number of GPUs when the pod reports a valid count.
func (s Snapshot) GPUCount() (int, bool) {
	v, ok := s.values[KeyGPUCount]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// ZeroGPU reports whether the pod explicitly runs without GPUs.
func (s Snapshot) ZeroGPU() bool {
	n, ok := s.GPUCount()
	return ok && n == 0
}
