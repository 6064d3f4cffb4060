package scanner

import "sync"

var scannerPool = sync.Pool{
	New: func() interface{} {
		return &Scanner{}
	},
}

// New draws a Scanner from the pool. The scanner holds no state across
// calls, so a freshly pooled instance is immediately usable.
func New() *Scanner {
	return scannerPool.Get().(*Scanner)
}

// Release returns s to the pool. Callers must not use s after Release.
func (s *Scanner) Release() {
	scannerPool.Put(s)
}
