package testing

import (
	"sync"

	"github.com/go-drift/accessbridge/pkg/errors"
	"github.com/go-drift/accessbridge/pkg/platform"
)

// Recorder is a platform.NativeBridge that decodes and records every
// emitted signal. Set Err to make the next calls fail.
type Recorder struct {
	mu      sync.Mutex
	signals []platform.Signal
	Err     error
}

// InvokeMethod decodes an "emit" call and records the signal.
func (r *Recorder) InvokeMethod(channel, method string, args []byte) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	if method != "emit" {
		return nil, platform.NewChannelError("unknown_method", method)
	}
	s, err := platform.DecodeSignal(platform.DefaultCodec, args)
	if err != nil {
		return nil, err
	}
	r.signals = append(r.signals, s)
	return nil, nil
}

// Signals returns the recorded signals in emission order.
func (r *Recorder) Signals() []platform.Signal {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]platform.Signal, len(r.signals))
	copy(out, r.signals)
	return out
}

// Names returns the full names of the recorded signals.
func (r *Recorder) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.signals))
	for i, s := range r.signals {
		out[i] = s.FullName()
	}
	return out
}

// Reset forgets every recorded signal.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.signals = nil
}

// ErrorRecorder is an errors.ErrorHandler that keeps what it receives.
type ErrorRecorder struct {
	mu     sync.Mutex
	errs   []*errors.BridgeError
	panics []*errors.PanicError
}

func (r *ErrorRecorder) HandleError(err *errors.BridgeError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func (r *ErrorRecorder) HandlePanic(err *errors.PanicError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.panics = append(r.panics, err)
}

// Errors returns the reported errors.
func (r *ErrorRecorder) Errors() []*errors.BridgeError {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*errors.BridgeError, len(r.errs))
	copy(out, r.errs)
	return out
}

// Panics returns the reported panics.
func (r *ErrorRecorder) Panics() []*errors.PanicError {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*errors.PanicError, len(r.panics))
	copy(out, r.panics)
	return out
}

// Reset forgets everything recorded.
func (r *ErrorRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = nil
	r.panics = nil
}
