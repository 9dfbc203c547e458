package platform

import "fmt"

// Signal is an outbound notification to the native accessibility runtime.
type Signal struct {
	// Source is the native handle of the emitting proxy.
	Source uint64 `json:"source"`
	// Name is the signal name (e.g. "text-changed").
	Name string `json:"name"`
	// Detail qualifies the name (e.g. "insert"). Empty when unused.
	Detail string `json:"detail,omitempty"`
	// Args carries signal-specific arguments.
	Args []any `json:"args,omitempty"`
}

// FullName returns "name::detail", or name when there is no detail.
func (s Signal) FullName() string {
	if s.Detail == "" {
		return s.Name
	}
	return s.Name + "::" + s.Detail
}

func (s Signal) String() string {
	return fmt.Sprintf("%s@%#x%v", s.FullName(), s.Source, s.Args)
}

// IntArg returns argument i as an int.
func (s Signal) IntArg(i int) (int, bool) {
	if i < 0 || i >= len(s.Args) {
		return 0, false
	}
	return argInt(s.Args[i])
}

// StringArg returns argument i as a string, or "" if absent.
func (s Signal) StringArg(i int) string {
	if i < 0 || i >= len(s.Args) {
		return ""
	}
	return argString(s.Args[i])
}

// DecodeSignal decodes a signal encoded with codec.
func DecodeSignal(codec MessageCodec, data []byte) (Signal, error) {
	v, err := codec.Decode(data)
	if err != nil {
		return Signal{}, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return Signal{}, ErrInvalidSignal
	}
	name := argString(m["name"])
	if name == "" {
		return Signal{}, fmt.Errorf("%w: missing name", ErrInvalidSignal)
	}
	source, _ := argHandle(m["source"])
	sig := Signal{
		Source: source,
		Name:   name,
		Detail: argString(m["detail"]),
	}
	if args, ok := m["args"].([]any); ok {
		sig.Args = args
	}
	return sig, nil
}
