package accessibility

import "fmt"

// Handle is the stable identity the native runtime uses for a proxy.
// The low 32 bits hold the arena slot index plus one and the high 32 bits
// the slot generation, so a handle to a finalized proxy never resolves
// again even after its slot is reused.
type Handle uint64

// NoHandle is the zero handle. It never resolves.
const NoHandle Handle = 0

func makeHandle(index, gen uint32) Handle {
	return Handle(uint64(gen)<<32 | uint64(index+1))
}

func (h Handle) index() (uint32, bool) {
	low := uint32(h)
	if low == 0 {
		return 0, false
	}
	return low - 1, true
}

func (h Handle) generation() uint32 {
	return uint32(h >> 32)
}

func (h Handle) String() string {
	return fmt.Sprintf("%#x", uint64(h))
}

type slot struct {
	gen   uint32
	proxy *Proxy
}

// arena owns the handle to proxy mapping. It is the only way an inbound
// handle resolves to a proxy.
type arena struct {
	slots []slot
	free  []uint32
	live  int
}

func (a *arena) insert(p *Proxy) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot{})
	}
	a.slots[idx].proxy = p
	a.live++
	return makeHandle(idx, a.slots[idx].gen)
}

func (a *arena) get(h Handle) (*Proxy, bool) {
	idx, ok := h.index()
	if !ok || int(idx) >= len(a.slots) {
		return nil, false
	}
	s := a.slots[idx]
	if s.proxy == nil || s.gen != h.generation() {
		return nil, false
	}
	return s.proxy, true
}

// remove purges h and bumps the slot generation.
func (a *arena) remove(h Handle) {
	idx, ok := h.index()
	if !ok || int(idx) >= len(a.slots) {
		return
	}
	s := &a.slots[idx]
	if s.proxy == nil || s.gen != h.generation() {
		return
	}
	s.proxy = nil
	s.gen++
	a.free = append(a.free, idx)
	a.live--
}

func (a *arena) len() int {
	return a.live
}
