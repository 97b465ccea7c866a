package web

import "sync"

// history is a ring of the most recent serial output, replayed
// to clients when they connect.
type history struct {
	buf  []byte
	idx  int
	full bool
	sync.RWMutex
}

func newHistory(size int) *history {
	return &history{
		buf: make([]byte, size),
	}
}

func (h *history) add(data []byte) {
	h.Lock()
	defer h.Unlock()

	for _, b := range data {
		h.buf[h.idx] = b
		h.idx = (h.idx + 1) % len(h.buf)
		if h.idx == 0 {
			h.full = true
		}
	}
}

// bytes returns the history, oldest byte first.
func (h *history) bytes() []byte {
	h.RLock()
	defer h.RUnlock()

	if !h.full {
		return append([]byte(nil), h.buf[:h.idx]...)
	}
	return append(append([]byte(nil), h.buf[h.idx:]...), h.buf[:h.idx]...)
}
