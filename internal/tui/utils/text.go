package utils

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

// WrapText wraps text at word boundaries to fit within maxWidth display
// columns. A single word wider than maxWidth gets a line of its own.
func WrapText(text string, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if maxWidth < 1 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	var line strings.Builder
	width := 0

	for _, word := range words {
		w := runewidth.StringWidth(word)
		switch {
		case width == 0:
			line.WriteString(word)
			width = w
		case width+1+w <= maxWidth:
			line.WriteByte(' ')
			line.WriteString(word)
			width += 1 + w
		default:
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(word)
			width = w
		}
	}
	return append(lines, line.String())
}

// TruncateToLines wraps text and keeps at most maxLines lines, ending the
// last kept line with an ellipsis when something was cut.
func TruncateToLines(text string, maxLines, maxWidth int) string {
	lines := WrapText(text, maxWidth)
	if maxLines < 1 {
		return ""
	}
	if len(lines) <= maxLines {
		return strings.Join(lines, "\n")
	}

	lines = lines[:maxLines]
	last := lines[maxLines-1]
	if runewidth.StringWidth(last)+3 > maxWidth {
		last = runewidth.Truncate(last, maxWidth-3, "")
	}
	lines[maxLines-1] = last + "..."
	return strings.Join(lines, "\n")
}

// TruncateWithWidth cuts text to maxWidth display columns with a "..." tail.
func TruncateWithWidth(text string, maxWidth int) string {
	return runewidth.Truncate(text, maxWidth, "...")
}

// FormatRating renders a vote average rounded to one decimal.
func FormatRating(avg float64) string {
	return fmt.Sprintf("★ %.1f", avg)
}

// FormatRatingWithVotes adds a humanized vote count: "★ 7.3 (1,234 votes)".
func FormatRatingWithVotes(avg float64, votes int) string {
	return fmt.Sprintf("%s (%s votes)", FormatRating(avg), humanize.Comma(int64(votes)))
}

// FormatRuntime renders minutes or N/A when unknown.
func FormatRuntime(minutes *int) string {
	if minutes == nil || *minutes <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%d min", *minutes)
}

// JoinOrNA joins names with ", " or returns N/A for none.
func JoinOrNA(names []string) string {
	if len(names) == 0 {
		return "N/A"
	}
	return strings.Join(names, ", ")
}

// OrNA returns s, or N/A when blank.
func OrNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
