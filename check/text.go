package check

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/agentuity/translator-check/translator"
	"github.com/agentuity/translator-check/tui"
	str2duration "github.com/xhit/go-str2duration/v2"
)

// Header is the first line of the text report.
const Header = "Checking installed translator packages..."

var separator = strings.Repeat("-", 30)

// textWriter keeps the first write error so callers can check once at the end.
type textWriter struct {
	w       io.Writer
	painter *tui.Painter
	err     error
}

func (t *textWriter) line(s string) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintln(t.w, s)
}

func (t *textWriter) header() {
	t.line(Header)
	t.line("")
}

func (t *textWriter) outcome(o Outcome) {
	if o.Loaded {
		t.line(t.painter.Success("✅ [SUCCESS] Imported " + o.Module))
		if o.HasInfo {
			t.line("   Info: " + o.Info)
		}
	}
	switch o.Status {
	case StatusMissing:
		t.line(t.painter.Missing("❌ [MISSING] Could not import " + o.Module))
		t.line("   Hint: " + translator.InstallHint(o.ID))
	case StatusError:
		t.line(t.painter.Error(fmt.Sprintf("⚠️ [ERROR] Error importing %s: %s", o.Module, o.Err)))
	}
	t.line(t.painter.Muted(separator))
}

func (t *textWriter) summary(outcomes []Outcome) {
	if t.err != nil {
		return
	}
	rows := make([][]string, 0, len(outcomes))
	for _, o := range outcomes {
		rows = append(rows, []string{o.Module, o.Status.String(), formatElapsed(o)})
	}
	t.err = tui.Table(t.w, []string{"Package", "Status", "Took"}, rows)
}

func formatElapsed(o Outcome) string {
	if s := str2duration.String(o.Elapsed.Round(time.Microsecond)); s != "" {
		return s
	}
	return "0s"
}
