package lossy

import (
	"golang.org/x/text/transform"

	"github.com/tidalgo/utf8scan/internal/classify"
	"github.com/tidalgo/utf8scan/internal/validator"
)

// repairTransformer is a transform.Transformer that replaces each invalid
// UTF-8 subsequence in the stream with U+FFFD. It is stateless between
// calls: safeLen refuses to consume a lead byte whose continuation bytes
// haven't arrived yet, and reports transform.ErrShortSrc so the
// transform package's own buffering carries the unconsumed tail into the
// next call — the streaming analogue of
// other_examples/ProtonMail-gopenpgp__utf8.go's manual overflow buffer,
// without needing to hand-roll one.
type repairTransformer struct{}

// Transformer returns a fresh streaming repair transform.
func Transformer() transform.Transformer {
	return repairTransformer{}
}

func (repairTransformer) Reset() {}

func (repairTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	limit := safeLen(src, atEOF)

	for nSrc < limit {
		cerr := validator.Validate(src[nSrc:limit])
		if cerr == nil {
			clean := src[nSrc:limit]
			if room := len(dst) - nDst; len(clean) > room {
				if room == 0 {
					return nDst, nSrc, transform.ErrShortDst
				}
				clean = clean[:room]
			}
			n := copy(dst[nDst:], clean)
			nDst += n
			nSrc += n
			continue
		}

		clean := src[nSrc : nSrc+cerr.Start]
		step := len(clean) + len(replacementChar)
		if step > len(dst)-nDst {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], clean)
		nDst += copy(dst[nDst:], replacementChar)
		nSrc += cerr.Start + cerr.Length
	}

	if limit < len(src) {
		return nDst, nSrc, transform.ErrShortSrc
	}
	return nDst, nSrc, nil
}

// safeLen returns the prefix of src that is safe to validate without risk
// of a multi-byte lead near the end turning out incomplete once more
// bytes arrive. At atEOF there is no more input coming, so the whole
// buffer is safe (an incomplete lead at EOF is simply ill-formed).
func safeLen(src []byte, atEOF bool) int {
	if atEOF || len(src) == 0 {
		return len(src)
	}

	start := len(src) - 3
	if start < 0 {
		start = 0
	}
	for i := start; i < len(src); i++ {
		n := classify.ExpectedLength(src[i])
		if n <= 1 {
			continue
		}
		if len(src)-i < n {
			return i
		}
	}
	return len(src)
}
