// Package check reports which translator subpackages are available.
//
// Every identifier from translator.Packages is resolved through a Resolver,
// classified as success, missing or error, and reported in order. A failed
// check is information, not a failure of the run: Run only returns an error
// when the output itself cannot be written.
package check

import (
	"io"

	"github.com/agentuity/translator-check/logger"
	"github.com/agentuity/translator-check/translator"
	"github.com/agentuity/translator-check/tui"
	"github.com/cockroachdb/errors"
)

// Format selects how Run writes the report.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists every supported Format name.
var Formats = []string{string(FormatText), string(FormatJSON), string(FormatYAML)}

// Options controls Run. The zero value writes the plain text report.
type Options struct {
	Format  Format
	Color   bool
	Summary bool
	Logger  logger.Logger
}

// Run checks every translator subpackage against reg and writes the report to w.
func Run(w io.Writer, reg Resolver, opts Options) (*Report, error) {
	log := opts.Logger
	if log == nil {
		log = logger.NewWriterLogger(io.Discard, logger.LevelNone, false)
	}
	format := opts.Format
	switch format {
	case "":
		format = FormatText
	case FormatText, FormatJSON, FormatYAML:
	default:
		return nil, errors.Newf("unsupported format %q", format)
	}

	report := NewReport()
	log = log.With(map[string]interface{}{"run_id": report.RunID})
	log.Debug("checking %d packages under %s", len(translator.Packages()), report.Namespace)

	var text *textWriter
	if format == FormatText {
		text = &textWriter{w: w, painter: tui.NewPainter(w, opts.Color)}
		text.header()
	}

	for _, id := range translator.Packages() {
		o := Resolve(reg, id)
		report.Add(o)
		switch o.Status {
		case StatusSuccess:
			log.Debug("%s resolved in %s", o.Module, o.Elapsed)
		case StatusMissing:
			log.Info("%s is not installed", o.Module)
		default:
			log.Warn("%s failed: %s", o.Module, o.Err)
		}
		if text != nil {
			text.outcome(o)
		}
	}

	switch format {
	case FormatText:
		if opts.Summary {
			text.summary(report.Outcomes)
		}
		if text.err != nil {
			return report, errors.Wrap(text.err, "writing report")
		}
	default:
		if h, err := lookupHost(); err != nil {
			log.Debug("host lookup failed: %s", err)
		} else {
			report.Host = h
		}
		write := report.WriteJSON
		if format == FormatYAML {
			write = report.WriteYAML
		}
		if err := write(w); err != nil {
			return report, errors.Wrapf(err, "writing %s report", format)
		}
	}

	log.Debug("done: %d success, %d missing, %d error",
		report.Count(StatusSuccess), report.Count(StatusMissing), report.Count(StatusError))
	return report, nil
}
