package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/marksman/internal/service"
)

// RenderRunSummary renders the outcome of a run as a boxed, colored block.
func RenderRunSummary(s *service.RunSummary) string {
	lines := []string{
		SubtleStyle.Render(fmt.Sprintf("run %s", s.RunID)),
		FormatInfo(fmt.Sprintf("Fetched %d transactions", s.Transactions)),
	}

	for _, step := range s.Steps {
		lines = append(lines, stepLine(step, s.DryRun))
	}

	title := "Run complete"
	if s.DryRun {
		title = "Dry run complete"
	}
	if s.Duration > 0 {
		title += SubtleStyle.Render(fmt.Sprintf(" (%s)", s.Duration.Round(10*time.Millisecond)))
	}

	return RenderBox(title, strings.Join(lines, "\n"))
}

func stepLine(step service.StepResult, dryRun bool) string {
	name := "Duplicates"
	if step.Kind == service.CategoryMark {
		name = "Categories"
	}

	switch {
	case step.Skipped && step.Err != nil:
		return FormatWarning(fmt.Sprintf("%s skipped: %v", name, step.Err))
	case step.Skipped:
		return SubtleStyle.Render(name + " skipped")
	case step.Err != nil:
		return FormatError(fmt.Sprintf("%s: found %d, write failed: %v", name, step.Found, step.Err))
	case dryRun:
		return FormatInfo(fmt.Sprintf("%s: found %d, nothing written", name, step.Found))
	default:
		return FormatSuccess(fmt.Sprintf("%s: found %d, marked %d", name, step.Found, step.Written))
	}
}
