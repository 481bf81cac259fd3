package cmd

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/showcase/internal/core"
	"github.com/inovacc/showcase/internal/model"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	trainingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	projectStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	countStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// hostFromAPIURL returns the host gh CLI stores credentials under
func hostFromAPIURL(apiURL string) string {
	if apiURL == "" {
		return core.DefaultHost
	}

	u, err := url.Parse(apiURL)
	if err != nil || u.Host == "" {
		return core.DefaultHost
	}

	return u.Host
}

func classificationStyle(c model.Classification) lipgloss.Style {
	if c == model.ClassificationTraining {
		return trainingStyle
	}

	return projectStyle
}

func printSummary(w io.Writer, res *core.GenerateResult) {
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "%s %s\n", headerStyle.Render("Config:"), res.ConfigFile)
	_, _ = fmt.Fprintf(w, "  Total:    %s\n", countStyle.Render(fmt.Sprintf("%d", len(res.Projects))))
	_, _ = fmt.Fprintf(w, "  Projects: %s\n", projectStyle.Render(fmt.Sprintf("%d", res.Counts[model.ClassificationProject])))
	_, _ = fmt.Fprintf(w, "  Training: %s\n", trainingStyle.Render(fmt.Sprintf("%d", res.Counts[model.ClassificationTraining])))

	if res.Rendered {
		_, _ = fmt.Fprintf(w, "%s %s\n", headerStyle.Render("Page:"), res.OutputFile)
	}

	for _, warning := range res.Warnings {
		msg := warning.Step.String()
		if warning.Project != "" {
			msg += " (" + warning.Project + ")"
		}

		if warning.Err != nil {
			msg += ": " + warning.Err.Error()
		}

		_, _ = fmt.Fprintf(w, "%s %s\n", warnStyle.Render("Warning:"), msg)
	}
}

func printProjectsTable(w io.Writer, projects []model.Project) {
	maxName := 10
	for _, p := range projects {
		if w := lipgloss.Width(p.Name); w > maxName {
			maxName = w
		}
	}

	if maxName > 40 {
		maxName = 40
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "%s  %s  %s  %s  %s\n",
		headerStyle.Render(padRight("NAME", maxName)),
		headerStyle.Render(padRight("CLASS", 10)),
		headerStyle.Render(padRight("LANGUAGE", 12)),
		headerStyle.Render(padRight("STARS", 6)),
		headerStyle.Render("UPDATED"),
	)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", maxName+50))

	for _, p := range projects {
		updated := p.UpdatedAt
		if len(updated) > 10 {
			updated = updated[:10]
		}

		_, _ = fmt.Fprintf(w, "%s  %s  %s  %s  %s\n",
			padRight(truncateString(p.Name, maxName), maxName),
			classificationStyle(p.Classification).Render(padRight(string(p.Classification), 10)),
			padRight(truncateString(p.Language, 12), 12),
			countStyle.Render(padRight(fmt.Sprintf("%d", p.Stars), 6)),
			updated,
		)
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "Total: %d projects\n", len(projects))
}

// padRight pads s with spaces to the given display width
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}

	return s + strings.Repeat(" ", width-w)
}

// truncateString cuts s to maxLen display columns, ending in an ellipsis
// when there is room for one. Runes are never split.
func truncateString(s string, maxLen int) string {
	if lipgloss.Width(s) <= maxLen {
		return s
	}

	suffix := "..."
	if maxLen <= len(suffix) {
		suffix = ""
	}

	limit := maxLen - len(suffix)

	var b strings.Builder
	width := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if width+rw > limit {
			break
		}

		b.WriteRune(r)
		width += rw
	}

	return b.String() + suffix
}
