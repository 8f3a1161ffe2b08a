/*
Package codec decodes byte buffers into sequences of UTF-8 units.

Unlike the decoders of the standard library, this decoder never fails:
malformed input degrades into single-byte units which clients may treat
as opaque. Every byte of the input is accounted for in exactly one unit,
and units carry the byte span they occupy. This makes the decoder suitable
for walking editor lines of unknown provenance, where byte positions have
to be preserved for cursor handling.

Typical Usage

Clients either decode a complete line

  units := codec.Decode(line)
  for _, u := range units {
      r, ok := u.Codepoint()
      …
  }

or walk a buffer unit by unit without materializing the sequence:

  for pos := 1; pos <= len(line); {
      u := codec.Next(line, pos)
      …
      pos = u.Stop + 1
  }

Byte positions are 1-based and inclusive, matching the column convention
of editor buffers.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.
*/
package codec

// Unit is one decoded item of a byte buffer: either a well-formed UTF-8
// sequence or a single malformed byte. A unit occupies the inclusive
// 1-based byte span [Start, Stop] of the buffer it was decoded from.
type Unit struct {
	Bytes []byte // the bytes of the unit, sub-slice of the input buffer
	Start int    // position of the first byte, 1-based
	Stop  int    // position of the last byte, 1-based
}

// Len returns the number of bytes the unit occupies.
func (u Unit) Len() int {
	return len(u.Bytes)
}

// seqLength returns the expected sequence length for a UTF-8 lead byte,
// or 0 if b cannot start a sequence (continuation byte, overlong 2-byte
// lead 0xC0/0xC1, or out-of-range lead byte).
func seqLength(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b >= 0xC2 && b <= 0xDF:
		return 2
	case b >= 0xE0 && b <= 0xEF:
		return 3
	case b >= 0xF0 && b <= 0xF4:
		return 4
	}
	return 0
}

// Next decodes the unit starting at the 1-based byte position pos of buf.
// A malformed lead byte yields a single-byte unit; a sequence running past
// the end of buf is truncated to the remaining bytes. Next never reads
// beyond buf and never returns an empty unit for pos within [1, len(buf)].
func Next(buf []byte, pos int) Unit {
	i := pos - 1
	length := seqLength(buf[i])
	if length == 0 {
		length = 1 // emit the offending byte as a unit of its own
	}
	if i+length > len(buf) {
		length = len(buf) - i
	}
	return Unit{
		Bytes: buf[i : i+length],
		Start: pos,
		Stop:  pos + length - 1,
	}
}

// Decode walks buf once, left to right, and returns the units it is
// composed of. Decoding never fails; see Next for the handling of
// malformed input.
func Decode(buf []byte) []Unit {
	units := make([]Unit, 0, len(buf))
	for pos := 1; pos <= len(buf); {
		u := Next(buf, pos)
		units = append(units, u)
		pos = u.Stop + 1
	}
	return units
}

// Codepoint reconstructs the Unicode scalar value of a unit using UTF-8
// bit-packing. It returns false for a zero-length or malformed unit, i.e.
// a unit whose length does not match its lead byte or whose trailing
// bytes are not continuation bytes. Callers must treat such units as
// neither RTL nor weak.
func (u Unit) Codepoint() (rune, bool) {
	if len(u.Bytes) == 0 {
		return 0, false
	}
	lead := u.Bytes[0]
	length := seqLength(lead)
	if length != len(u.Bytes) {
		return 0, false // malformed or truncated
	}
	var r rune
	switch length {
	case 1:
		return rune(lead), true
	case 2:
		r = rune(lead & 0x1F)
	case 3:
		r = rune(lead & 0x0F)
	case 4:
		r = rune(lead & 0x07)
	}
	for _, b := range u.Bytes[1:] {
		if b&0xC0 != 0x80 {
			return 0, false
		}
		r = r<<6 | rune(b&0x3F)
	}
	return r, true
}
