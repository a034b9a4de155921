package cli

import (
	"errors"
	"testing"
	"time"

	"github.com/Veraticus/marksman/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestFormatters(t *testing.T) {
	assert.Contains(t, FormatSuccess("done"), SuccessIcon+" done")
	assert.Contains(t, FormatError("broken"), ErrorIcon+" broken")
	assert.Contains(t, FormatWarning("careful"), "careful")
	assert.Contains(t, FormatInfo("note"), "note")
	assert.Contains(t, FormatTitle("marksman"), "marksman")
}

func TestRenderRunSummary(t *testing.T) {
	summary := &service.RunSummary{
		RunID:        "run-1",
		Transactions: 42,
		Duration:     1500 * time.Millisecond,
		Steps: []service.StepResult{
			{Kind: service.DuplicateMark, Found: 3, Err: errors.New("quota exceeded")},
			{Kind: service.CategoryMark, Found: 7, Written: 7},
		},
	}

	out := RenderRunSummary(summary)
	assert.Contains(t, out, "Run complete")
	assert.Contains(t, out, "run run-1")
	assert.Contains(t, out, "Fetched 42 transactions")
	assert.Contains(t, out, "Duplicates: found 3, write failed: quota exceeded")
	assert.Contains(t, out, "Categories: found 7, marked 7")

	summary.DryRun = true
	summary.Steps = []service.StepResult{
		{Kind: service.DuplicateMark, Found: 3},
		{Kind: service.CategoryMark, Skipped: true},
	}
	out = RenderRunSummary(summary)
	assert.Contains(t, out, "Dry run complete")
	assert.Contains(t, out, "Duplicates: found 3, nothing written")
	assert.Contains(t, out, "Categories skipped")
}
