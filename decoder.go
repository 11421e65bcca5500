package vtty

import "unicode/utf8"

// utf8Decoder is a resumable UTF-8 decoder: it accepts bytes one at a
// time and emits decoded scalars once a full (or invalid) encoding has
// accumulated, preserving state across calls so a multi-byte sequence
// can span separate reads from the shell.
type utf8Decoder struct {
	pending []byte
}

// decodeByte feeds one byte through the decoder, returning every scalar
// it can resolve from the bytes accumulated so far. This is normally
// zero runes (a multi-byte sequence is still accumulating) or one; it
// can be more than one when this byte completes an invalid lead
// sequence whose error only accounts for part of the accumulated
// bytes, leaving a trailing byte (or bytes) that resolve immediately on
// their own rather than being discarded.
func (d *utf8Decoder) decodeByte(b byte) []rune {
	d.pending = append(d.pending, b)
	if !utf8.FullRune(d.pending) {
		return nil
	}
	return d.resolvePending()
}

// resolvePending decodes every complete (or conclusively invalid)
// encoding currently at the front of pending, looping in case draining
// an invalid lead sequence uncovers a further complete encoding right
// behind it. Whatever is left once nothing more can be resolved — the
// partial start of a still-incomplete multi-byte sequence — is kept for
// the next call.
func (d *utf8Decoder) resolvePending() []rune {
	var out []rune
	buf := d.pending
	for len(buf) > 0 && utf8.FullRune(buf) {
		r, size := utf8.DecodeRune(buf)
		if r == utf8.RuneError && size <= 1 {
			r = replacementChar
		}
		out = append(out, r)
		buf = buf[size:]
	}
	d.pending = append(d.pending[:0], buf...)
	return out
}
