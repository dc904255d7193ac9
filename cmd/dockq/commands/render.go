package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/dockq/internal/core/domain"
	"go.trai.ch/dockq/internal/ui/output"
	"go.trai.ch/dockq/internal/ui/style"
)

type printer struct {
	w      io.Writer
	asJSON bool

	title lipgloss.Style
	muted lipgloss.Style
	warn  lipgloss.Style
	r     *lipgloss.Renderer
}

func newPrinter(w io.Writer, asJSON bool) *printer {
	r := lipgloss.NewRenderer(w)
	r.SetOutput(output.New(w))
	return &printer{
		w:      w,
		asJSON: asJSON,
		title:  r.NewStyle().Bold(true).Foreground(style.Iris),
		muted:  r.NewStyle().Foreground(style.Slate),
		warn:   r.NewStyle().Foreground(style.Yellow),
		r:      r,
	}
}

func (p *printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *printer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) source(r domain.ScoreRecord) string {
	tag := string(r.Source)
	if r.Origin != "" {
		tag += " (" + string(r.Origin) + ")"
	}
	s := p.r.NewStyle().Foreground(style.SourceColor(string(r.Source)))
	return s.Render(style.SourceIcon(string(r.Source)) + " " + tag)
}

func (p *printer) ranking(r domain.Ranking) error {
	if p.asJSON {
		return p.json(r)
	}

	p.printf("%s\n", p.title.Render(fmt.Sprintf("Ranking against %s (%d molecules)", r.Target, len(r.Records))))
	width := 0
	for _, rec := range r.Records {
		width = max(width, len(rec.Molecule))
	}
	for i, rec := range r.Records {
		p.printf("%3d  %-*s  %6.1f  %s\n", i+1, width, rec.Molecule, rec.Score, p.source(rec))
	}
	p.warnings(r.Warnings)
	return nil
}

func (p *printer) warnings(warnings []string) {
	for _, w := range warnings {
		p.printf("%s\n", p.warn.Render(style.Warning+" "+w))
	}
}

func (p *printer) explanation(e domain.Explanation) error {
	if p.asJSON {
		return p.json(e)
	}
	p.printf("%s %s\n", p.title.Render(e.Title), p.muted.Render("["+string(e.Kind)+"]"))
	p.printf("%s\n", e.Text)
	return nil
}

func (p *printer) interpretation(i domain.Interpretation) error {
	if p.asJSON {
		return p.json(i)
	}
	p.printf("%s %s\n", p.title.Render(fmt.Sprintf("%.1f kcal/mol: %s binding", i.Score, i.Bucket)), p.muted.Render("("+i.Range+")"))
	if i.Description != "" {
		p.printf("%s\n", i.Description)
	}
	if i.Recommendation != "" {
		p.printf("%s %s\n", p.muted.Render("Recommendation:"), i.Recommendation)
	}
	return nil
}

func (p *printer) targets(profiles []domain.TargetProfile) error {
	if p.asJSON {
		return p.json(profiles)
	}
	width := 0
	for _, t := range profiles {
		width = max(width, len(t.ID))
	}
	for _, t := range profiles {
		p.printf("%-*s  %s\n", width, t.ID, p.muted.Render(t.Name))
	}
	return nil
}

func (p *printer) target(d domain.TargetDetails) error {
	if p.asJSON {
		return p.json(d)
	}
	p.printf("%s %s\n", p.title.Render(d.ID), d.Name)
	if d.Description != "" {
		p.printf("%s\n", d.Description)
	}
	p.field("Binding site", d.BindingSite)
	p.field("Therapeutic area", d.TherapeuticArea)
	if d.HasKnownDrugs {
		p.field("Known drugs", strings.Join(d.DrugExamples, ", "))
	} else {
		p.field("Known drugs", "none")
	}
	return nil
}

func (p *printer) field(name, value string) {
	if value == "" {
		return
	}
	p.printf("%s %s\n", p.muted.Render(name+":"), value)
}

func (p *printer) stats(s domain.CacheStats) error {
	if p.asJSON {
		return p.json(s)
	}
	p.printf("%s\n", p.title.Render(fmt.Sprintf("%d cached scores", s.Total)))
	p.field("Backend", s.Backend)
	p.field("Path", s.Path)
	for _, target := range slices.Sorted(maps.Keys(s.PerTarget)) {
		p.printf("  %-10s %d\n", target, s.PerTarget[target])
	}
	if s.Degraded {
		p.warnings([]string{"score cache is running in memory-only mode; results are not durable"})
	}
	return nil
}

func (p *printer) hitRate(h domain.HitRate) error {
	if p.asJSON {
		return p.json(h)
	}
	p.printf("%d of %d molecules cached for %s (%.0f%%)\n", h.Cached, h.Requested, h.Target, h.Rate*100)
	return nil
}
