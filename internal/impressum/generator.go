// Package impressum renders the legal notice page from a template and the
// operator's contact details.
//
// Contact details are read from files, reversed where the template asks for
// it, and substituted into a fixed set of placeholder tokens. The result is
// written atomically and made world-readable so a web server running as a
// different user can serve it.
package impressum

import (
	"log/slog"
	"os"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/penshort/impressum/internal/logging"
)

// OutputMode is the permission set of the generated document.
const OutputMode os.FileMode = 0o644

// Options holds the resolved file locations for one run.
type Options struct {
	Contact      ContactFiles
	TemplateFile string
	OutputFile   string
}

// Result summarizes a completed run.
type Result struct {
	OutputFile string
	Bytes      int
	Missing    []string // placeholders absent from the template
}

// Generator produces the impressum document.
type Generator struct {
	opts   Options
	logger *slog.Logger
}

// New creates a Generator. A nil logger discards diagnostics.
func New(opts Options, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Generator{opts: opts, logger: logger}
}

// Render loads the inputs and returns the substituted document without
// touching the output file. It also returns the placeholders the template
// lacks; each one is logged as a warning.
func (g *Generator) Render() (string, []string, error) {
	contact, err := LoadContact(g.opts.Contact)
	if err != nil {
		return "", nil, err
	}

	reps, err := contact.Replacements()
	if err != nil {
		return "", nil, err
	}

	tmpl, err := readText("read template", g.opts.TemplateFile)
	if err != nil {
		return "", nil, err
	}

	missing := MissingTokens(tmpl)
	for _, token := range missing {
		g.logger.Warn("template missing placeholder",
			slog.String("placeholder", token),
			slog.String("template", g.opts.TemplateFile),
		)
	}

	return Render(tmpl, reps), missing, nil
}

// Generate renders the document and writes it to the output file with
// OutputMode permissions. Nothing is written unless every input is valid.
func (g *Generator) Generate() (*Result, error) {
	content, missing, err := g.Render()
	if err != nil {
		return nil, err
	}

	if err := writeOutput(g.opts.OutputFile, content); err != nil {
		return nil, err
	}

	g.logger.Debug("wrote impressum",
		slog.String("path", g.opts.OutputFile),
		slog.Int("bytes", len(content)),
	)

	return &Result{
		OutputFile: g.opts.OutputFile,
		Bytes:      len(content),
		Missing:    missing,
	}, nil
}

// writeOutput replaces path with content and sets OutputMode.
// The rename is atomic, so a failed write leaves the previous file intact.
func writeOutput(path, content string) error {
	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return Wrap(KindOutput, "write output", path, err)
	}
	// Chmod is not subject to the umask.
	if err := os.Chmod(path, OutputMode); err != nil {
		return Wrap(KindOutput, "set permissions", path, err)
	}
	return nil
}
