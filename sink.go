package utf8scan

import "sync"

// Sink is an append-only receiver for the bytes Scan commits. It
// implements io.ByteWriter, so it can be handed directly to Scan. The
// zero value is usable; NewSink draws a pooled one to avoid allocating a
// backing array per scan.
type Sink struct {
	buf []byte
}

var sinkPool = sync.Pool{
	New: func() interface{} {
		return &Sink{buf: make([]byte, 0, 4)}
	},
}

// NewSink draws a Sink from the pool, already reset.
func NewSink() *Sink {
	s := sinkPool.Get().(*Sink)
	s.buf = s.buf[:0]
	return s
}

// Release returns s to the pool. Callers must not use s after Release.
func (s *Sink) Release() {
	if cap(s.buf) > 64 {
		// One scan commits at most four bytes, but a caller that never
		// resets the sink can accumulate many scans; don't let that
		// permanently inflate the pooled buffer.
		s.buf = make([]byte, 0, 4)
	}
	sinkPool.Put(s)
}

// WriteByte appends c to the sink. It satisfies io.ByteWriter.
func (s *Sink) WriteByte(c byte) error {
	s.buf = append(s.buf, c)
	return nil
}

// Bytes returns the bytes committed so far.
func (s *Sink) Bytes() []byte {
	return s.buf
}

// Reset clears the sink for reuse. The caller must call Reset before each
// scan that reuses the same Sink.
func (s *Sink) Reset() {
	s.buf = s.buf[:0]
}
