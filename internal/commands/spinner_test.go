package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func TestSpinner(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(&buf, "Typing")
	s.start()

	time.Sleep(200 * time.Millisecond)
	s.stopWithSuccess("Done")

	out := ansi.Strip(buf.String())
	if !strings.Contains(out, "Typing") {
		t.Errorf("expected spinner message in output, got %q", out)
	}
	if !strings.HasSuffix(out, "✓ Done\n") {
		t.Errorf("expected success line at the end, got %q", out)
	}
}

func TestSpinnerStopTwice(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(&buf, "Typing")
	s.start()

	s.stopWithError()
	s.stopWithError()
}

func TestRenderReplyWidthBounds(t *testing.T) {
	md := testMarkdown()
	for _, width := range []int{10, 80, 300} {
		out := ansi.Strip(renderReply("Hello there", width, md))
		if !strings.Contains(out, "Hello there") {
			t.Errorf("width %d: reply missing from %q", width, out)
		}
		for _, line := range strings.Split(out, "\n") {
			if w := ansi.StringWidth(line); w > 122 {
				t.Errorf("width %d: line wider than the bubble (%d)", width, w)
			}
		}
	}
}
