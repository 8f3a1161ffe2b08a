package bidiscope

import (
	"bufio"
	"io"

	"github.com/dlyongemallo/bidiscope/classify"
	"github.com/dlyongemallo/bidiscope/codec"
)

// DefaultScanLimit bounds the number of lines HasRTLText inspects when
// the caller does not supply its own ceiling. Presence detection is a
// per-buffer switch, not a correctness requirement, so scanning a fixed
// prefix of the document is enough.
const DefaultScanLimit = 100

// HasRTLText reports whether any of the first maxLines lines of input
// contains an RTL-classified codepoint. A maxLines of zero or less falls
// back to DefaultScanLimit. The scan walks the byte stream unit by unit
// and returns at the first RTL codepoint; ASCII bytes are skipped
// without decoding.
//
// Hosts use this to decide whether to enable RTL display (and word-motion
// remapping) for a buffer at all.
func HasRTLText(input io.Reader, maxLines int) bool {
	if maxLines <= 0 {
		maxLines = DefaultScanLimit
	}
	scanner := bufio.NewScanner(input)
	for n := 0; n < maxLines && scanner.Scan(); n++ {
		line := scanner.Bytes()
		for pos := 1; pos <= len(line); {
			if line[pos-1] < 0x80 {
				pos++
				continue
			}
			u := codec.Next(line, pos)
			if cp, ok := u.Codepoint(); ok && classify.ClassForRune(cp) == classify.RTL {
				tracer().Debugf("RTL codepoint %+q on line %d", cp, n+1)
				return true
			}
			pos = u.Stop + 1
		}
	}
	return false
}
