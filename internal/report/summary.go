package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/marksman/internal/service"
)

// Summary renders a run summary as plain text suitable for a chat message.
func Summary(s *service.RunSummary) string {
	var b strings.Builder

	header := fmt.Sprintf("marksman run %s", shortID(s.RunID))
	if s.DryRun {
		header += " (dry run)"
	}
	b.WriteString(header + "\n")
	fmt.Fprintf(&b, "Fetched %d transactions\n", s.Transactions)

	for _, step := range s.Steps {
		b.WriteString(stepLine(step, s.DryRun) + "\n")
	}

	if s.Duration > 0 {
		fmt.Fprintf(&b, "Finished in %s", s.Duration.Round(10*time.Millisecond))
	}

	return strings.TrimRight(b.String(), "\n")
}

func stepLine(step service.StepResult, dryRun bool) string {
	label := stepLabel(step.Kind)

	switch {
	case step.Skipped && step.Err != nil:
		return fmt.Sprintf("%s: skipped (%v)", label, step.Err)
	case step.Skipped:
		return fmt.Sprintf("%s: skipped", label)
	}

	found := fmt.Sprintf("%s: found %d", label, step.Found)
	switch {
	case step.Err != nil:
		return fmt.Sprintf("%s, write failed: %v", found, step.Err)
	case dryRun:
		return found + ", nothing written"
	default:
		return fmt.Sprintf("%s, marked %d", found, step.Written)
	}
}

func stepLabel(kind service.AnnotationKind) string {
	switch kind {
	case service.DuplicateMark:
		return "Possible duplicates"
	case service.CategoryMark:
		return "Category matches"
	default:
		return string(kind)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
