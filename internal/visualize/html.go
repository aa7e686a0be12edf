package visualize

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/streamgit/streamgit/internal/domain"
	"github.com/streamgit/streamgit/internal/usecase"
)

// RenderHTML writes the requested chart as a standalone interactive HTML
// document. The rendering library's assets are loaded from its CDN.
func RenderHTML(kind string, records []domain.RepoRecord, w io.Writer) error {
	switch kind {
	case LanguageDistribution:
		return LanguagePie(usecase.LanguageCounts(records)).Render(w)
	case StarsVsForks:
		return StarsForksScatter(records).Render(w)
	case CreationTimeline:
		return CreationTimelineBar(usecase.CreationByMonth(records)).Render(w)
	}
	return fmt.Errorf("unknown visualization type: %s", kind)
}

// LanguagePie builds the language distribution pie chart.
func LanguagePie(counts []usecase.LanguageCount) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Language Distribution"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
	)
	data := make([]opts.PieData, 0, len(counts))
	for _, c := range counts {
		data = append(data, opts.PieData{Name: c.Language, Value: c.Count})
	}
	pie.AddSeries("languages", data).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c}"}),
	)
	return pie
}

// StarsForksScatter builds the stars vs. forks scatter chart.
func StarsForksScatter(records []domain.RepoRecord) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Stars vs. Forks"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Stars", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Forks", Type: "value"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Formatter: "{b}"}),
	)
	data := make([]opts.ScatterData, 0, len(records))
	for _, r := range records {
		data = append(data, opts.ScatterData{
			Name:  r.Name,
			Value: []interface{}{r.Stars, r.Forks},
		})
	}
	scatter.AddSeries("repositories", data)
	return scatter
}

// CreationTimelineBar builds the per-month creation timeline.
func CreationTimelineBar(months []usecase.MonthCount) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Repository Creation Timeline"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Creation Date"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Number of Repositories"}),
	)
	labels := make([]string, 0, len(months))
	data := make([]opts.BarData, 0, len(months))
	for _, m := range months {
		labels = append(labels, m.Month.Format("2006-01"))
		data = append(data, opts.BarData{Value: m.Count})
	}
	bar.SetXAxis(labels).AddSeries("repositories created", data)
	return bar
}

// TopStarredBar builds the most-starred-repositories bar chart used on the
// dashboard's stars page.
func TopStarredBar(top []domain.StarredRepo) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Top %d Most Starred Repositories", len(top))}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Repository"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Stars"}),
	)
	labels := make([]string, 0, len(top))
	data := make([]opts.BarData, 0, len(top))
	for _, s := range top {
		labels = append(labels, s.Name)
		data = append(data, opts.BarData{Value: s.Stars})
	}
	bar.SetXAxis(labels).AddSeries("stars", data)
	return bar
}

// StarredLanguagePie builds the language breakdown of starred repositories.
func StarredLanguagePie(counts []usecase.LanguageCount) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Language Distribution of Starred Repositories"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
	)
	data := make([]opts.PieData, 0, len(counts))
	for _, c := range counts {
		data = append(data, opts.PieData{Name: c.Language, Value: c.Count})
	}
	pie.AddSeries("languages", data).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c}"}),
	)
	return pie
}
