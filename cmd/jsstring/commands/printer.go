package commands

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"
	"github.com/muesli/termenv"
	"go.trai.ch/jsstring/internal/app"
	"go.trai.ch/jsstring/internal/core/domain"
	"go.trai.ch/jsstring/internal/ui/output"
	"go.trai.ch/jsstring/internal/ui/style"
)

// printer writes command results as aligned text or as JSON.
type printer struct {
	w    io.Writer
	out  *termenv.Output
	json bool
}

func newPrinter(w io.Writer, asJSON bool) *printer {
	return &printer{
		w:    w,
		out:  output.New(w),
		json: asJSON,
	}
}

func (p *printer) encode(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *printer) field(name, value string) {
	_, _ = fmt.Fprintf(p.w, "%s %s\n", style.Label(name), value)
}

func (p *printer) color(c lipgloss.Color, s string) string {
	return output.Colorize(p.out, p.out.Color(string(c)), s)
}

func (p *printer) inspection(in *app.Inspection) error {
	if p.json {
		return p.encode(in)
	}

	p.field("length", strconv.Itoa(in.Length))
	p.field("ascii", yesNo(in.ASCII))
	p.field("static", yesNo(in.Static))
	p.field("hash", in.Hash)
	p.field("code points", strconv.Itoa(in.CodePoints))
	p.field("unpaired", strconv.Itoa(in.Unpaired))
	p.field("number", in.Number)
	p.field("trimmed", quote(in.Trimmed))
	p.field("escaped", quote(in.Escaped))
	p.field("points", strings.Join(in.Points, " "))
	return nil
}

func (p *printer) text(key, value string) error {
	if p.json {
		return p.encode(map[string]string{key: value})
	}
	_, _ = fmt.Fprintln(p.w, value)
	return nil
}

type indexResult struct {
	Found    bool `json:"found"`
	Position int  `json:"position"`
}

func (p *printer) index(pos int, found bool) error {
	if !found {
		pos = -1
	}
	if p.json {
		return p.encode(indexResult{Found: found, Position: pos})
	}
	_, _ = fmt.Fprintln(p.w, pos)
	return nil
}

func (p *printer) wellKnown(entries []app.WellKnownEntry) error {
	if p.json {
		return p.encode(entries)
	}
	for _, e := range entries {
		_, _ = fmt.Fprintf(p.w, "%4d %s\n", e.Index, quote(e.Text))
	}
	return nil
}

func (p *printer) batch(result *app.BatchResult) error {
	if p.json {
		return p.encode(result)
	}

	lines := make(map[string]int, len(result.Files))
	for _, f := range result.Files {
		lines[f.Path] = len(f.Lines)
	}

	paths := make([]string, 0, len(result.Statuses))
	for path := range result.Statuses {
		paths = append(paths, path)
	}
	slices.Sort(paths)

	counts := make(map[domain.FileStatus]int)
	for _, path := range paths {
		status := result.Statuses[path]
		counts[status]++

		switch status {
		case domain.FileStatusAnalyzed:
			_, _ = fmt.Fprintf(p.w, "%s %s %s\n", p.color(style.Green, style.Check), path, plural(lines[path], "line"))
		case domain.FileStatusCached:
			_, _ = fmt.Fprintf(p.w, "%s %s %s (cached)\n", p.color(style.Iris, style.Tilde), path, plural(lines[path], "line"))
		case domain.FileStatusFailed:
			_, _ = fmt.Fprintf(p.w, "%s %s\n", p.color(style.Red, style.Cross), path)
		default:
			_, _ = fmt.Fprintf(p.w, "%s %s %s\n", p.color(style.Slate, style.Dot), path, status)
		}
	}

	_, _ = fmt.Fprintf(p.w, "\n%d files: %d analyzed, %d cached, %d failed\n",
		len(paths),
		counts[domain.FileStatusAnalyzed],
		counts[domain.FileStatusCached],
		counts[domain.FileStatusFailed],
	)

	if len(result.Spans) > 0 {
		_, _ = fmt.Fprintln(p.w)
		for _, s := range result.Spans {
			_, _ = fmt.Fprintf(p.w, "%10s %s\n", s.Duration.Round(time.Microsecond), s.Name)
		}
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}

func quote(s string) string {
	return `"` + s + `"`
}
