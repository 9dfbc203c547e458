package platform

import (
	"testing"

	"github.com/go-drift/accessbridge/pkg/errors"
)

type captureBridge struct {
	channel string
	method  string
	payload []byte
	err     error
}

func (b *captureBridge) InvokeMethod(channel, method string, args []byte) ([]byte, error) {
	b.channel, b.method, b.payload = channel, method, args
	return nil, b.err
}

type captureHandler struct {
	errs []*errors.BridgeError
}

func (h *captureHandler) HandleError(err *errors.BridgeError) { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(*errors.PanicError)      {}

func captureErrors(t *testing.T) *captureHandler {
	h := &captureHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}

func TestChannelRuntimeEmit(t *testing.T) {
	bridge := &captureBridge{}
	rt := NewChannelRuntime(bridge, "v2.38.0")

	sig := Signal{Source: 0x100000001, Name: "text-changed", Detail: "insert", Args: []any{3, 5}}
	if err := rt.Emit(sig); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if bridge.channel != DefaultChannel || bridge.method != "emit" {
		t.Errorf("invoked %s/%s, want %s/emit", bridge.channel, bridge.method, DefaultChannel)
	}

	got, err := DecodeSignal(DefaultCodec, bridge.payload)
	if err != nil {
		t.Fatalf("DecodeSignal: %v", err)
	}
	if got.Source != sig.Source || got.FullName() != "text-changed::insert" {
		t.Errorf("decoded %v, want %v", got, sig)
	}
	if n, ok := got.IntArg(1); !ok || n != 5 {
		t.Errorf("IntArg(1) = (%d, %v), want (5, true)", n, ok)
	}
	if _, ok := got.IntArg(2); ok {
		t.Error("IntArg(2) should be absent")
	}
}

func TestChannelRuntimeWithoutBridge(t *testing.T) {
	h := captureErrors(t)
	rt := NewChannelRuntime(nil, "v2.38.0")

	err := rt.Emit(Signal{Source: 7, Name: "focus-event"})
	if !errors.Is(err, ErrPlatformUnavailable) {
		t.Fatalf("Emit err = %v, want ErrPlatformUnavailable", err)
	}
	if len(h.errs) != 1 || h.errs[0].Kind != errors.KindPlatform || h.errs[0].Handle != 7 {
		t.Errorf("reported %v, want one platform error for handle 7", h.errs)
	}
}

func TestChannelRuntimeBridgeError(t *testing.T) {
	captureErrors(t)
	rt := NewChannelRuntime(&captureBridge{err: NewChannelError("closed", "runtime gone")}, "v2.38.0")

	err := rt.Emit(Signal{Name: "state-change"})
	var ce *ChannelError
	if !errors.As(err, &ce) || ce.Code != "closed" {
		t.Errorf("Emit err = %v, want wrapped ChannelError", err)
	}
}

func TestDecodeSignalRejectsBadPayload(t *testing.T) {
	for _, payload := range []string{`[1,2]`, `{"source":1}`, `not json`, `{"name":"a"} {}`} {
		if _, err := DecodeSignal(JSONCodec{}, []byte(payload)); err == nil {
			t.Errorf("DecodeSignal(%s) succeeded, want error", payload)
		}
	}
}
