// Package visualize renders the repository charts on two backends: static
// image files via gonum/plot and interactive HTML via go-echarts.
package visualize

import (
	"fmt"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/streamgit/streamgit/internal/domain"
	"github.com/streamgit/streamgit/internal/usecase"
)

// Chart kinds.
const (
	LanguageDistribution = "language_distribution"
	StarsVsForks         = "stars_vs_forks"
	CreationTimeline     = "creation_timeline"
)

// Kinds lists the supported chart kinds.
var Kinds = []string{LanguageDistribution, StarsVsForks, CreationTimeline}

// ImageFormats lists the supported static image formats.
var ImageFormats = []string{"png", "jpg", "svg", "pdf"}

// RenderStatic draws the requested chart to an image file and returns the
// path written. The image format's extension is appended when the output
// path does not already carry it. The static backend draws the language
// distribution as a bar chart; the pie rendering lives on the HTML backend.
func RenderStatic(kind string, records []domain.RepoRecord, path, imgFormat string) (string, error) {
	if !contains(ImageFormats, imgFormat) {
		return "", fmt.Errorf("unsupported image format: %s", imgFormat)
	}
	if !strings.HasSuffix(strings.ToLower(path), "."+imgFormat) {
		path = path + "." + imgFormat
	}

	p := plot.New()
	var err error
	switch kind {
	case LanguageDistribution:
		err = drawLanguages(p, usecase.LanguageCounts(records))
	case StarsVsForks:
		err = drawStarsForks(p, records)
	case CreationTimeline:
		err = drawTimeline(p, records)
	default:
		return "", fmt.Errorf("unknown visualization type: %s", kind)
	}
	if err != nil {
		return "", err
	}
	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return "", fmt.Errorf("failed to save chart: %w", err)
	}
	return path, nil
}

func drawLanguages(p *plot.Plot, counts []usecase.LanguageCount) error {
	p.Title.Text = "Language Distribution"
	p.Y.Label.Text = "Repositories"

	values := make(plotter.Values, len(counts))
	names := make([]string, len(counts))
	for i, c := range counts {
		values[i] = float64(c.Count)
		names[i] = c.Language
	}
	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return fmt.Errorf("failed to build language chart: %w", err)
	}
	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = 0.9
	p.X.Tick.Label.XAlign = -0.8
	return nil
}

func drawStarsForks(p *plot.Plot, records []domain.RepoRecord) error {
	p.Title.Text = "Stars vs. Forks"
	p.X.Label.Text = "Stars"
	p.Y.Label.Text = "Forks"

	xys := make(plotter.XYs, len(records))
	for i, r := range records {
		xys[i].X = float64(r.Stars)
		xys[i].Y = float64(r.Forks)
	}
	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("failed to build scatter chart: %w", err)
	}
	p.Add(scatter, plotter.NewGrid())
	return nil
}

func drawTimeline(p *plot.Plot, records []domain.RepoRecord) error {
	p.Title.Text = "Repository Creation Timeline"
	p.Y.Label.Text = "Number of Repositories"
	p.X.Label.Text = "Creation Date"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01"}

	values := make(plotter.Values, len(records))
	for i, r := range records {
		values[i] = float64(r.CreatedAt.Unix())
	}
	hist, err := plotter.NewHist(values, 16)
	if err != nil {
		return fmt.Errorf("failed to build timeline chart: %w", err)
	}
	p.Add(hist)
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
