package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deepunit.dev/pkg/deepunit/internal/domain"
	m "deepunit.dev/pkg/deepunit/internal/model"
)

func disableColor(t *testing.T) {
	t.Helper()

	original := color.NoColor
	color.NoColor = true

	t.Cleanup(func() { color.NoColor = original })
}

func TestSummaryReporter_RecordIsIdempotent(t *testing.T) {
	summary := domain.NewSummaryReporter()

	summary.Record(m.Outcome{Source: "a.ts", Bucket: m.BucketPassing})
	summary.Record(m.Outcome{Source: "a.ts", Bucket: m.BucketPassing})
	summary.Record(m.Outcome{Source: "b.ts", Bucket: m.BucketAPIError})

	assert.Len(t, summary.Outcomes(), 2)
	assert.Equal(t, map[m.Bucket]int{m.BucketPassing: 1, m.BucketAPIError: 1}, summary.Counts())
}

func TestSummaryReporter_Render(t *testing.T) {
	disableColor(t)

	summary := domain.NewSummaryReporter()
	summary.Record(m.Outcome{Source: "src/pass.ts", Bucket: m.BucketPassing})
	summary.Record(m.Outcome{Source: "src/api.ts", Bucket: m.BucketAPIError, Err: errors.New("status 503")})
	summary.Record(m.Outcome{Source: "src/fixed.ts", Bucket: m.BucketPassing, Fixes: 2})
	summary.Record(m.Outcome{Source: "src/broken.ts", Bucket: m.BucketStillHasErrors, Reverted: true})
	summary.Record(m.Outcome{Source: "src/old.ts", Bucket: m.BucketPreExistingFailure})

	rendered := summary.Render()

	headings := []string{
		"Files with failing tests before generation (1):",
		"Files whose tests still have errors (1):",
		"Files with passing tests (2):",
		"Files skipped due to API errors (1):",
	}

	last := -1
	for _, heading := range headings {
		index := strings.Index(rendered, heading)
		require.GreaterOrEqual(t, index, 0, "missing heading %q", heading)
		assert.Greater(t, index, last, "heading %q out of order", heading)
		last = index
	}

	assert.Contains(t, rendered, "  src/fixed.ts (fixed after 2 attempts)\n")
	assert.Contains(t, rendered, "  src/pass.ts\n")
	assert.Contains(t, rendered, "  src/broken.ts (reverted)\n")
	assert.Contains(t, rendered, "  src/api.ts: status 503\n")
}

func TestSummaryReporter_RenderOmitsEmptySections(t *testing.T) {
	disableColor(t)

	summary := domain.NewSummaryReporter()
	assert.Empty(t, summary.Render())

	summary.Record(m.Outcome{Source: "src/one.ts", Bucket: m.BucketPassing, Fixes: 1})

	rendered := summary.Render()
	assert.Equal(t, "Files with passing tests (1):\n  src/one.ts (fixed after 1 attempt)\n", rendered)
}
