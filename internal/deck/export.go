package deck

import (
	"fmt"
	"sort"
	"strings"

	"github.com/youruser/deckcode/internal/cards"
)

// ExportText lists d as plain text: the name, the heroes with their turns,
// then the main deck and items as "Nx Name" lines sorted by name.
func ExportText(d Deck) string {
	lines := []string{}
	if d.Name != "" {
		lines = append(lines, "# "+d.Name)
	}
	lines = append(lines, "## Heroes")
	for i, h := range d.Heroes {
		lines = append(lines, fmt.Sprintf("Turn %d: %s", turnFor(i), h.Name))
	}
	lines = append(lines, section("Main Deck", d.MainDeck)...)
	lines = append(lines, section("Items", d.Items)...)
	return strings.Join(lines, "\n")
}

func section(title string, cs []cards.Card) []string {
	if len(cs) == 0 {
		return nil
	}
	counts := map[string]int{}
	for _, c := range cs {
		counts[c.Name]++
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	lines := []string{fmt.Sprintf("## %s (%d)", title, len(cs))}
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%dx %s", counts[name], name))
	}
	return lines
}
