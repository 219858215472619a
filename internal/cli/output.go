package cli

import (
	"fmt"
	"io"
	"time"

	"todo/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6D7383"))
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E6EAF2")).Bold(true)

	statusStyles = map[domain.Status]lipgloss.Style{
		domain.StatusTodo:  lipgloss.NewStyle().Foreground(lipgloss.Color("#B1B8C7")),
		domain.StatusDoing: lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
		domain.StatusDone:  lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")),
	}
)

// FormatError renders err the way every command reports a failure.
func FormatError(err error) string {
	return errorStyle.Render("✗ Error:") + " " + err.Error()
}

func success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, successStyle.Render("✓")+" "+fmt.Sprintf(format, args...))
}

func info(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, infoStyle.Render("ℹ")+" "+fmt.Sprintf(format, args...))
}

func printProject(w io.Writer, p *domain.Project) {
	line := titleStyle.Render(p.Name())
	if p.Description() != "" {
		line += "  " + mutedStyle.Render(p.Description())
	}
	fmt.Fprintln(w, line)
}

func printTask(w io.Writer, t *domain.Task, now time.Time) {
	status := fmt.Sprintf("%-5s", t.Status())
	line := fmt.Sprintf("%s  %s  %s", mutedStyle.Render(t.ID()), statusStyles[t.Status()].Render(status), t.Title())
	if d := t.Deadline(); d != nil {
		line += mutedStyle.Render("  due " + d.Format(time.RFC3339))
		if t.Overdue(now) {
			line += " " + errorStyle.Render("overdue")
		}
	}
	fmt.Fprintln(w, line)
}

func printTaskDetail(w io.Writer, t *domain.Task, now time.Time) {
	printTask(w, t, now)
	if t.Description() != "" {
		fmt.Fprintln(w, "  "+t.Description())
	}
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("  created %s, updated %s",
		t.CreatedAt().Format(time.RFC3339), t.UpdatedAt().Format(time.RFC3339))))
}
