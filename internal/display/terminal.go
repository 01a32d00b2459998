// Package display provides terminal output formatting for curaplan.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gauthierbraillon/curaplan/internal/planner"
)

const separator = " • "

var (
	upper = cases.Upper(language.Turkish)

	headingStyle = lipgloss.NewStyle().Bold(true)
	kindStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

// TerminalFormatter formats schedules for terminal display.
type TerminalFormatter struct{}

// NewTerminalFormatter creates a new terminal formatter.
func NewTerminalFormatter() *TerminalFormatter {
	return &TerminalFormatter{}
}

// KindLabel returns the display name of a post kind.
func KindLabel(kind planner.PostKind) string {
	if kind == planner.KindShortVideo {
		return "Reels"
	}
	return "Karusel / Statik"
}

// FormatSchedule formats a whole calendar, one card per day.
func (f *TerminalFormatter) FormatSchedule(days []planner.DailyPlan) string {
	if len(days) == 0 {
		return "Gösterilecek plan yok.\n"
	}

	header := fmt.Sprintf("%d gün%sgünde 3 içerik: 2 Reels, 1 karusel\n\n", len(days), separator)

	var formatted []string
	for _, day := range days {
		formatted = append(formatted, f.FormatDay(day))
	}

	return header + strings.Join(formatted, "\n---\n\n")
}

// FormatDay formats a single day card.
func (f *TerminalFormatter) FormatDay(day planner.DailyPlan) string {
	lines := []string{
		headingStyle.Render(day.Date),
		"  " + day.Summary,
		fmt.Sprintf("  Başat filozof: %s", day.MainPhilosopher),
		fmt.Sprintf("  Tematik odak: %s", day.FocusTheme),
		fmt.Sprintf("  Küratoryal açı: %s", day.CuratorialAngle),
		"",
	}

	for _, post := range day.Posts {
		lines = append(lines, f.FormatPost(post))
	}

	return strings.Join(lines, "\n")
}

// FormatPost formats one post, dispatching on its kind.
func (f *TerminalFormatter) FormatPost(post planner.Post) string {
	var lines []string

	// Header: [KIND] Title
	lines = append(lines, fmt.Sprintf("%s %s", kindStyle.Render("["+upper.String(KindLabel(post.Kind))+"]"), post.Title))
	lines = append(lines, "  "+post.Hook)

	switch post.Kind {
	case planner.KindShortVideo:
		if post.Video != nil {
			lines = append(lines, bullets("Akış", post.Video.Structure)...)
			lines = append(lines, bullets("Konuşma noktaları", post.TalkingPoints)...)
			lines = append(lines,
				"  Açılış sorusu: "+post.Video.OpeningQuestion,
				"  Görsel öneri: "+post.Video.Visual,
				"  Ses önerisi: "+post.Video.Audio,
			)
		}
	case planner.KindCarousel:
		if post.Carousel != nil {
			lines = append(lines, bullets("Slaytlar", post.Carousel.Format)...)
			lines = append(lines, bullets("Konuşma noktaları", post.TalkingPoints)...)
			lines = append(lines, "  Merkez içgörü: "+post.Carousel.Insight)
		}
	}

	lines = append(lines, "  → "+post.CallToAction)
	if len(post.Hashtags) > 0 {
		lines = append(lines, "  "+mutedStyle.Render(strings.Join(post.Hashtags, " ")))
	}

	return strings.Join(lines, "\n") + "\n"
}

// FormatOverview formats one line per day, truncating summaries to maxLen.
func (f *TerminalFormatter) FormatOverview(days []planner.DailyPlan, maxLen int) string {
	if len(days) == 0 {
		return "Gösterilecek plan yok.\n"
	}

	var b strings.Builder
	for _, day := range days {
		fmt.Fprintf(&b, "%s%s%s%s%s\n", day.Date, separator, day.MainPhilosopher, separator, f.TruncateText(day.Summary, maxLen))
	}
	return b.String()
}

// FormatTones lists the available tones, marking the active one.
func (f *TerminalFormatter) FormatTones(active planner.Tone) string {
	var b strings.Builder
	for _, tone := range planner.Tones() {
		state := "seç"
		if tone == active {
			state = "aktif"
		}
		fmt.Fprintf(&b, "%-14s %-14s %s\n", tone, tone.Label(), state)
	}
	return b.String()
}

// TruncateText truncates text to maxLen runes, adding "..." if truncated.
func (f *TerminalFormatter) TruncateText(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	if maxLen <= 3 {
		return "..."
	}
	return string(runes[:maxLen-3]) + "..."
}

func bullets(title string, items []string) []string {
	if len(items) == 0 {
		return nil
	}
	lines := []string{"  " + title + ":"}
	for _, item := range items {
		lines = append(lines, "    - "+item)
	}
	return lines
}
