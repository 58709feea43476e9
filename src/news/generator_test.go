package news

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------

var timestampPattern = regexp.MustCompile(`^\d+ hours? ago$`)

// -----------------------------------------------------------------------------

func TestGenerateCount(t *testing.T) {
	g := NewGenerator(42)

	assert.Len(t, g.Generate(3), 3)
	assert.Len(t, g.Generate(8), 8)
	assert.Len(t, g.Generate(12), 12)
	assert.Empty(t, g.Generate(0))
	assert.Empty(t, g.Generate(-1))
}

// -----------------------------------------------------------------------------

func TestGenerateDistinctCategoriesFirst(t *testing.T) {
	g := NewGenerator(42)

	items := g.Generate(5)
	require.Len(t, items, 5)

	seen := make(map[string]bool)
	for _, item := range items {
		assert.False(t, seen[item.Category], "category %s repeated within first 5 items", item.Category)
		seen[item.Category] = true
	}
}

// -----------------------------------------------------------------------------

func TestGenerateFillsAllPlaceholders(t *testing.T) {
	g := NewGenerator(7)

	for _, item := range g.Generate(30) {
		assert.NotContains(t, item.Headline, "{", "unfilled placeholder in %q", item.Headline)
		assert.NotContains(t, item.Headline, "}", "unfilled placeholder in %q", item.Headline)
	}
}

// -----------------------------------------------------------------------------

func TestGenerateItemShape(t *testing.T) {
	g := NewGenerator(1)

	for _, item := range g.Generate(10) {
		assert.NotEmpty(t, item.Source)
		assert.NotEmpty(t, item.Headline)
		assert.NotEmpty(t, item.Excerpt)
		assert.NotEmpty(t, item.Category)
		assert.True(t, timestampPattern.MatchString(item.Timestamp), "bad timestamp %q", item.Timestamp)

		require.NotEmpty(t, item.AffectedStocks)
		for _, stock := range item.AffectedStocks {
			assert.NotEmpty(t, stock.Symbol)
			assert.Contains(t, []string{"positive", "negative", "neutral"}, stock.Sentiment)
		}
	}
}

// -----------------------------------------------------------------------------

func TestGenerateExcerptMatchesCategory(t *testing.T) {
	g := NewGenerator(3)

	for _, item := range g.Generate(10) {
		expected, ok := categoryExcerpts[item.Category]
		require.True(t, ok, "unknown category %q", item.Category)
		assert.Equal(t, expected, item.Excerpt)
	}
}

// -----------------------------------------------------------------------------

func TestGenerateSingularHourGrammar(t *testing.T) {
	g := NewGenerator(9)

	// Across many items both forms appear; none may mix them up
	for _, item := range g.Generate(40) {
		if strings.HasPrefix(item.Timestamp, "1 ") {
			assert.Equal(t, "1 hour ago", item.Timestamp)
		}
	}
}

// -----------------------------------------------------------------------------

func TestGenerateIsSeeded(t *testing.T) {
	a := NewGenerator(99)
	b := NewGenerator(99)

	assert.Equal(t, a.Generate(8), b.Generate(8))
}
