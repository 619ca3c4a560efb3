package cards

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DefaultWidth is the width Format uses when given zero.
const DefaultWidth = 60

var tagPattern = regexp.MustCompile(`<[^<]+?>`)

// stripTags removes the markup embedded in card text.
func stripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

type column struct {
	key   string
	value any
}

// columns lays out key/value pairs across width: the first left aligned, the
// last right aligned and any between centred.
func columns(width int, cols ...column) string {
	w := width / len(cols)
	var b strings.Builder
	for i, c := range cols {
		pos := lipgloss.Center
		switch i {
		case 0:
			pos = lipgloss.Left
		case len(cols) - 1:
			pos = lipgloss.Right
		}
		b.WriteString(lipgloss.PlaceHorizontal(w, pos, fmt.Sprintf("%s: %v", c.key, c.value)))
	}
	return b.String()
}

// Format renders a card as a fixed width text block for terminals.
func Format(c Card, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	rule := lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.ToUpper(c.Colour), lipgloss.WithWhitespaceChars("-"))
	lines := []string{rule, columns(width, column{"Name", c.Name}, column{"Type", c.Type})}

	if c.ManaCost != 0 || c.GoldCost != 0 {
		cost := column{"Mana", c.ManaCost}
		if c.ManaCost == 0 {
			cost = column{"Gold", c.GoldCost}
		}
		cols := []column{cost}
		if c.SubType != "" {
			cols = append(cols, column{"Sub Type", c.SubType})
		}
		lines = append(lines, columns(width, cols...))
	}

	if text := strings.TrimSpace(stripTags(c.Text)); text != "" {
		for _, line := range strings.Split(ansi.Wordwrap(text, width-2, ""), "\n") {
			lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.TrimSpace(line)))
		}
	}

	if c.Attack != nil && c.HitPoints != 0 {
		cols := []column{{"Attack", *c.Attack}}
		if c.Armor != 0 {
			cols = append(cols, column{"Armor", c.Armor})
		}
		cols = append(cols, column{"HP", c.HitPoints})
		lines = append(lines, columns(width, cols...))
	}

	lines = append(lines, rule)
	return strings.Join(lines, "\n")
}
