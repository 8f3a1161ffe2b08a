package bidiscope

import (
	"strings"
	"testing"

	"github.com/dlyongemallo/bidiscope/internal/tracing"
)

func TestHasRTLText(t *testing.T) {
	tracing.SetTestingLog(t)
	input := strings.NewReader("first line\nsecond with שלום\nthird\n")
	if !HasRTLText(input, 0) {
		t.Error("expected RTL text to be found")
	}
}

func TestHasRTLTextNone(t *testing.T) {
	tracing.SetTestingLog(t)
	inputs := []string{
		"",
		"plain ascii\nand more ascii\n",
		"wide 中文 text\n",       // non-ASCII, but not RTL
		"digits ١٢٣ only\n",    // weak without a strong RTL letter
		"broken \xd7 byte\n",   // truncated lead byte decodes to no codepoint
		"stray \x80\x80 tail\n",
	}
	for _, in := range inputs {
		if HasRTLText(strings.NewReader(in), 0) {
			t.Errorf("expected no RTL text in %q", in)
		}
	}
}

func TestHasRTLTextRespectsLimit(t *testing.T) {
	tracing.SetTestingLog(t)
	input := "ascii one\nascii two\nascii three\nשלום on line four\n"
	if HasRTLText(strings.NewReader(input), 3) {
		t.Error("line four is past the limit and should not be scanned")
	}
	if !HasRTLText(strings.NewReader(input), 4) {
		t.Error("line four is within the limit and should be found")
	}
}

func TestHasRTLTextDefaultLimit(t *testing.T) {
	tracing.SetTestingLog(t)
	var sb strings.Builder
	for i := 0; i < DefaultScanLimit; i++ {
		sb.WriteString("filler line\n")
	}
	sb.WriteString("שלום past the default window\n")
	if HasRTLText(strings.NewReader(sb.String()), 0) {
		t.Error("RTL text past the default scan limit should be ignored")
	}
}
