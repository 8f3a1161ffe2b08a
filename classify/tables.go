package classify

// This file has been generated -- you probably should NOT EDIT IT !
//
// Regenerate with classify/internal/generator.

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// --- RTL blocks ------------------------------------------------------------

var _Hebrew = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0590, Hi: 0x05ff, Stride: 1}},
}

var _Arabic = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0600, Hi: 0x06ff, Stride: 1}},
}

var _Syriac = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0700, Hi: 0x074f, Stride: 1}},
}

var _ArabicSupplement = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0750, Hi: 0x077f, Stride: 1}},
}

var _Thaana = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0780, Hi: 0x07bf, Stride: 1}},
}

var _NKo = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x07c0, Hi: 0x07ff, Stride: 1}},
}

var _Samaritan = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0800, Hi: 0x083f, Stride: 1}},
}

var _Mandaic = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0840, Hi: 0x085f, Stride: 1}},
}

var _SyriacSupplement = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0860, Hi: 0x086f, Stride: 1}},
}

var _ArabicExtendedB = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0870, Hi: 0x089f, Stride: 1}},
}

var _ArabicExtendedA = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x08a0, Hi: 0x08ff, Stride: 1}},
}

var _RightToLeftMark = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x200f, Hi: 0x200f, Stride: 1}},
}

var _HebrewPresentationForms = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0xfb1d, Hi: 0xfb4f, Stride: 1}},
}

var _ArabicPresentationFormsA = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0xfb50, Hi: 0xfdff, Stride: 1}},
}

var _ArabicPresentationFormsB = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0xfe70, Hi: 0xfefc, Stride: 1}},
}

// Supplementary-plane RTL blocks: Phoenician through Old Sogdian and
// Hanifi Rohingya (plane 1), Mende Kikakui, Adlam and the Arabic
// Mathematical Symbols (plane 1E).
var _RTLSupplementary = &unicode.RangeTable{
	R32: []unicode.Range32{
		{Lo: 0x10800, Hi: 0x10fff, Stride: 1},
		{Lo: 0x1e800, Hi: 0x1efff, Stride: 1},
	},
}

// --- Weak ranges -----------------------------------------------------------

var _LatinPunctuation = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0009, Hi: 0x0009, Stride: 1}, // tab
		{Lo: 0x0020, Hi: 0x0040, Stride: 1}, // space, ASCII punctuation, digits
		{Lo: 0x005b, Hi: 0x0060, Stride: 1},
		{Lo: 0x007b, Hi: 0x007e, Stride: 1},
		{Lo: 0x00a0, Hi: 0x00bf, Stride: 1}, // Latin-1 punctuation and symbols
		{Lo: 0x00d7, Hi: 0x00d7, Stride: 1},
		{Lo: 0x00f7, Hi: 0x00f7, Stride: 1},
	},
	LatinOffset: 7,
}

var _HebrewPunctuation = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x05be, Hi: 0x05be, Stride: 1}, // maqaf
		{Lo: 0x05c0, Hi: 0x05c0, Stride: 1}, // paseq
		{Lo: 0x05c3, Hi: 0x05c3, Stride: 1}, // sof pasuq
		{Lo: 0x05c6, Hi: 0x05c6, Stride: 1}, // nun hafukha
		{Lo: 0x05f3, Hi: 0x05f4, Stride: 1}, // geresh, gershayim
	},
}

var _ArabicPunctuation = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x060c, Hi: 0x060d, Stride: 1}, // comma, date separator
		{Lo: 0x061b, Hi: 0x061b, Stride: 1}, // semicolon
		{Lo: 0x061e, Hi: 0x061f, Stride: 1}, // triple dot, question mark
		{Lo: 0x066a, Hi: 0x066d, Stride: 1}, // percent, decimal, thousands, star
		{Lo: 0x06d4, Hi: 0x06d4, Stride: 1}, // full stop
	},
}

var _ArabicIndicDigits = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0660, Hi: 0x0669, Stride: 1}},
}

var _ExtendedArabicIndicDigits = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x06f0, Hi: 0x06f9, Stride: 1}},
}

// General punctuation block minus the right-to-left mark. Includes the
// zero-width (non-)joiners and the directional control and isolate
// characters, all of which are weak for run segmentation.
var _GeneralPunctuation = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2000, Hi: 0x200e, Stride: 1},
		{Lo: 0x2010, Hi: 0x206f, Stride: 1},
	},
}

var _CurrencySymbols = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x20a0, Hi: 0x20cf, Stride: 1}},
}

var _ByteOrderMark = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0xfeff, Hi: 0xfeff, Stride: 1}},
}

// --- Consulted tables ------------------------------------------------------

// rtlRanges and weakRanges are the two tables ClassForRune consults. They
// carry no mutable state and are safe to share across goroutines.
var rtlRanges = rangetable.Merge(
	_Hebrew, _Arabic, _Syriac, _ArabicSupplement, _Thaana, _NKo,
	_Samaritan, _Mandaic, _SyriacSupplement, _ArabicExtendedB,
	_ArabicExtendedA, _RightToLeftMark, _HebrewPresentationForms,
	_ArabicPresentationFormsA, _ArabicPresentationFormsB,
	_RTLSupplementary,
)

var weakRanges = rangetable.Merge(
	_LatinPunctuation, _HebrewPunctuation, _ArabicPunctuation,
	_ArabicIndicDigits, _ExtendedArabicIndicDigits,
	_GeneralPunctuation, _CurrencySymbols, _ByteOrderMark,
)
