// Package platform defines the seams between the accessibility bridge and
// its external collaborators: the widget toolkit that owns the UI thread and
// native windows, and the native accessibility runtime that receives signals.
package platform

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// MessageCodec turns channel payloads into bytes and back.
type MessageCodec interface {
	Encode(value any) ([]byte, error)
	Decode(data []byte) (any, error)
}

// JSONCodec is the channel codec native runtimes speak. Numbers decode as
// json.Number so 64-bit handles survive the round trip.
type JSONCodec struct{}

func (JSONCodec) Encode(value any) ([]byte, error) {
	return json.Marshal(value)
}

// Decode returns nil for an empty payload. Trailing data after the first
// value is an error.
func (JSONCodec) Decode(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after payload")
	}
	return v, nil
}

// DefaultCodec is used when a ChannelRuntime has no codec of its own.
var DefaultCodec MessageCodec = JSONCodec{}

var (
	// ErrPlatformUnavailable means no native bridge is connected.
	ErrPlatformUnavailable = errors.New("native runtime not connected")
	// ErrInvalidSignal means a payload is not a signal object.
	ErrInvalidSignal = errors.New("invalid signal payload")
)

// ChannelError is a failure reported by the native side of a channel.
type ChannelError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ChannelError) Error() string {
	if e.Message == "" {
		return "native: " + e.Code
	}
	return fmt.Sprintf("native: %s (%s)", e.Message, e.Code)
}

// NewChannelError returns a ChannelError.
func NewChannelError(code, message string) *ChannelError {
	return &ChannelError{Code: code, Message: message}
}
