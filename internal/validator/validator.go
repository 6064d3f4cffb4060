// Package validator implements the buffer-specific fast path: walk a
// buffer by index, dispatching on the classifier's length table, and report
// the first ill-formed subsequence without ever materializing a
// codepoint. It is deliberately independent of internal/scanner — no
// ByteSource, no Sink, just index arithmetic over a slice — because a
// buffer validator that doesn't need to decode has no reason to pay for
// decoding.
package validator

import (
	"github.com/tidalgo/utf8scan/internal/classify"
	"github.com/tidalgo/utf8scan/internal/outcome"
)

// Validate returns the first ill-formed subsequence in buf, or nil if buf
// is entirely well-formed UTF-8.
func Validate(buf []byte) *outcome.CheckError {
	i := 0
	for i < len(buf) {
		start := i
		lead := buf[i]
		i++

		switch classify.ExpectedLength(lead) {
		case 0:
			return &outcome.CheckError{Kind: outcome.KindDisallowedStartByte, Start: start, Length: 1}

		case 1:
			// ASCII, already consumed.

		case 2:
			if err := check2(buf, start, &i); err != nil {
				return err
			}

		case 3:
			if err := check3(buf, start, lead, &i); err != nil {
				return err
			}

		case 4:
			if err := check4(buf, start, lead, &i); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValidateAll returns every ill-formed subsequence in buf, scanning the
// well-formed stretches in between without re-reporting them: it
// re-invokes Validate after skipping each diagnosed subsequence's
// consumed length.
func ValidateAll(buf []byte) []outcome.CheckError {
	var errs []outcome.CheckError
	pos := 0
	for pos < len(buf) {
		err := Validate(buf[pos:])
		if err == nil {
			break
		}
		abs := *err
		abs.Start += pos
		errs = append(errs, abs)
		pos += err.Start + err.Length
	}
	return errs
}

func check2(buf []byte, start int, i *int) *outcome.CheckError {
	if *i >= len(buf) {
		return &outcome.CheckError{Kind: outcome.KindIncomplete2, Start: start, Length: *i - start}
	}
	b1 := buf[*i]
	if !classify.IsContinuation(b1) {
		return &outcome.CheckError{Kind: outcome.KindNotSecondContinuation, Start: start, Length: *i - start}
	}
	*i++
	return nil
}

func check3(buf []byte, start int, lead byte, i *int) *outcome.CheckError {
	if *i >= len(buf) {
		return &outcome.CheckError{Kind: outcome.KindIncomplete3, Start: start, Length: *i - start}
	}
	b1 := buf[*i]

	if classify.Is3ByteOverlong(lead, b1) {
		*i++
		return &outcome.CheckError{Kind: outcome.KindOverlong3, Start: start, Length: *i - start}
	}
	if classify.IsUtf16Surrogate(lead, b1) {
		*i++
		return &outcome.CheckError{Kind: outcome.KindUtf16Surrogate, Start: start, Length: *i - start}
	}
	if !classify.IsContinuation(b1) {
		return &outcome.CheckError{Kind: outcome.KindNotSecondContinuation, Start: start, Length: *i - start}
	}
	*i++

	if *i >= len(buf) {
		return &outcome.CheckError{Kind: outcome.KindIncomplete3, Start: start, Length: *i - start}
	}
	b2 := buf[*i]
	if !classify.IsContinuation(b2) {
		return &outcome.CheckError{Kind: outcome.KindNotThirdContinuation, Start: start, Length: *i - start}
	}
	*i++
	return nil
}

func check4(buf []byte, start int, lead byte, i *int) *outcome.CheckError {
	if *i >= len(buf) {
		return &outcome.CheckError{Kind: outcome.KindIncomplete4, Start: start, Length: *i - start}
	}
	b1 := buf[*i]

	if classify.Is4ByteOverlong(lead, b1) {
		*i++
		return &outcome.CheckError{Kind: outcome.KindOverlong4, Start: start, Length: *i - start}
	}
	if classify.IsAboveRange(lead, b1) {
		*i++
		return &outcome.CheckError{Kind: outcome.KindAboveRange, Start: start, Length: *i - start}
	}
	if !classify.IsContinuation(b1) {
		return &outcome.CheckError{Kind: outcome.KindNotSecondContinuation, Start: start, Length: *i - start}
	}
	*i++

	if *i >= len(buf) {
		return &outcome.CheckError{Kind: outcome.KindIncomplete4, Start: start, Length: *i - start}
	}
	b2 := buf[*i]
	if !classify.IsContinuation(b2) {
		return &outcome.CheckError{Kind: outcome.KindNotThirdContinuation, Start: start, Length: *i - start}
	}
	*i++

	if *i >= len(buf) {
		return &outcome.CheckError{Kind: outcome.KindIncomplete4, Start: start, Length: *i - start}
	}
	b3 := buf[*i]
	if !classify.IsContinuation(b3) {
		return &outcome.CheckError{Kind: outcome.KindNotFourthContinuation, Start: start, Length: *i - start}
	}
	*i++
	return nil
}
