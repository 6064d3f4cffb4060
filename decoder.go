package utf8scan

import "io"

// Decoder scans successive characters from an io.Reader, one Scan per
// Next call — the stream-oriented counterpart to Validate/ValidateAll
// over a buffer. It carries no partial-character state between calls:
// each Next is an independent Scan over the same underlying
// StreamSource, so a caller that gets Incomplete2/3/4 back can simply
// call Next again to resynchronize on the byte that broke the
// continuation chain.
type Decoder struct {
	src  ByteSource
	sink *Sink
}

// NewDecoder wraps r for repeated scanning.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		src:  NewStreamSource(r),
		sink: NewSink(),
	}
}

// Next decodes the next character, or diagnoses the next ill-formed
// sequence. The returned byte slice is the window Scan committed for
// this call; it is only valid until the next call to Next or Close.
func (d *Decoder) Next() (Outcome, []byte) {
	d.sink.Reset()
	o := Scan(d.src, d.sink)
	return o, d.sink.Bytes()
}

// Close releases the Decoder's pooled Sink. The Decoder must not be used
// afterward.
func (d *Decoder) Close() {
	d.sink.Release()
	d.sink = nil
}
