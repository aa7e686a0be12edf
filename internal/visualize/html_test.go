package visualize

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamgit/streamgit/internal/domain"
)

func sampleRecords() []domain.RepoRecord {
	return []domain.RepoRecord{
		{Name: "proj", Language: "Go", Stars: 5, Forks: 1,
			CreatedAt: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "lib", Language: "Python", Stars: 2, Forks: 0,
			CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func TestRenderHTML(t *testing.T) {
	testCases := []struct {
		kind  string
		title string
	}{
		{LanguageDistribution, "Language Distribution"},
		{StarsVsForks, "Stars vs. Forks"},
		{CreationTimeline, "Repository Creation Timeline"},
	}
	for _, tc := range testCases {
		t.Run(tc.kind, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RenderHTML(tc.kind, sampleRecords(), &buf))
			html := buf.String()
			assert.Contains(t, html, tc.title)
			assert.Contains(t, html, "echarts")
		})
	}
}

func TestRenderHTML_UnknownKind(t *testing.T) {
	var buf bytes.Buffer
	err := RenderHTML("bogus", sampleRecords(), &buf)
	assert.ErrorContains(t, err, "unknown visualization type")
}

func TestTopStarredBar(t *testing.T) {
	var buf bytes.Buffer
	bar := TopStarredBar([]domain.StarredRepo{
		{Name: "famous", Stars: 1000},
		{Name: "known", Stars: 10},
	})
	require.NoError(t, bar.Render(&buf))
	assert.Contains(t, buf.String(), "famous")
}
