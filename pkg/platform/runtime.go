package platform

import (
	"sync"

	"github.com/go-drift/accessbridge/pkg/errors"
)

// Runtime is the native accessibility runtime.
type Runtime interface {
	// Emit delivers a signal.
	Emit(s Signal) error

	// Version is the runtime's semantic version (e.g. "v2.38.0").
	Version() string
}

// NativeBridge defines the interface for calling native platform code.
type NativeBridge interface {
	// InvokeMethod calls a method on the native side.
	InvokeMethod(channel, method string, args []byte) ([]byte, error)
}

// DefaultChannel is the channel name used when ChannelRuntime.Channel is empty.
const DefaultChannel = "accessbridge/signals"

// ChannelRuntime is a Runtime that encodes signals with a MessageCodec and
// forwards them to a NativeBridge as "emit" calls.
type ChannelRuntime struct {
	// Channel is the native channel name.
	Channel string
	// Codec encodes signals. Nil uses DefaultCodec.
	Codec MessageCodec
	// RuntimeVersion is reported by Version.
	RuntimeVersion string

	mu     sync.RWMutex
	bridge NativeBridge
}

// NewChannelRuntime creates a runtime forwarding to bridge.
func NewChannelRuntime(bridge NativeBridge, version string) *ChannelRuntime {
	return &ChannelRuntime{bridge: bridge, RuntimeVersion: version}
}

// SetNativeBridge replaces the native bridge. Nil disconnects.
func (r *ChannelRuntime) SetNativeBridge(bridge NativeBridge) {
	r.mu.Lock()
	r.bridge = bridge
	r.mu.Unlock()
}

func (r *ChannelRuntime) channel() string {
	if r.Channel == "" {
		return DefaultChannel
	}
	return r.Channel
}

func (r *ChannelRuntime) codec() MessageCodec {
	if r.Codec == nil {
		return DefaultCodec
	}
	return r.Codec
}

// Version returns RuntimeVersion.
func (r *ChannelRuntime) Version() string {
	return r.RuntimeVersion
}

// Emit encodes s and forwards it to the native bridge. Failures are
// reported to the global error handler and returned.
func (r *ChannelRuntime) Emit(s Signal) error {
	r.mu.RLock()
	bridge := r.bridge
	r.mu.RUnlock()

	if bridge == nil {
		return r.report(s, ErrPlatformUnavailable)
	}
	data, err := r.codec().Encode(s)
	if err != nil {
		return r.report(s, err)
	}
	if _, err := bridge.InvokeMethod(r.channel(), "emit", data); err != nil {
		return r.report(s, err)
	}
	return nil
}

func (r *ChannelRuntime) report(s Signal, err error) error {
	be := &errors.BridgeError{
		Op:     "platform.ChannelRuntime.Emit",
		Kind:   errors.KindPlatform,
		Err:    err,
		Handle: s.Source,
	}
	errors.Report(be)
	return be
}
