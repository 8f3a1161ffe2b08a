/*
Package classify maps Unicode code-points onto the three bidi buckets
this module distinguishes: right-to-left, weak, and other.

The bucketing is a coarse restriction of the Unicode Bidi_Class property
(UAX#9). Right-to-left covers the Hebrew and Arabic script blocks together
with the remaining RTL blocks of the BMP and the supplementary planes.
Weak covers characters without inherent directionality: punctuation,
spaces, digits (including the script-specific digit ranges), directional
controls and isolates, and currency symbols. Everything else is other.

Classification is a pure, total function of the code-point value; it never
depends on position or context. True UAX#9 resolution (embedding levels,
isolate runs) is deliberately out of scope — run segmentation built on top
of this package only needs the three buckets.

Typical Usage

  switch classify.ClassForRune(r) {
  case classify.RTL:
      …
  case classify.Weak:
      …
  }

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.
*/
package classify

import (
	"strconv"
	"unicode"
)

// Class is one of the three bidi buckets.
type Class int8

// The three buckets. Other is the zero value and the default for every
// code-point not listed in the range tables.
const (
	Other Class = iota
	RTL
	Weak
)

// String returns a class as a string.
func (c Class) String() string {
	switch c {
	case Other:
		return "Other"
	case RTL:
		return "RTL"
	case Weak:
		return "Weak"
	}
	return "Class(" + strconv.FormatInt(int64(c), 10) + ")"
}

// ClassForRune gets the bidi bucket for a Unicode code-point.
//
// The weak table is consulted before the RTL table: script-specific digits
// and punctuation marks live inside the Arabic and Hebrew blocks, and they
// classify as weak, not RTL.
func ClassForRune(r rune) Class {
	if unicode.Is(weakRanges, r) {
		return Weak
	}
	if unicode.Is(rtlRanges, r) {
		return RTL
	}
	return Other
}
