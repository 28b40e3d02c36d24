// Package render formats readings and catalog reference text as Markdown.
package render

import (
	"fmt"
	"jyotish-service/internal/catalog"
	"jyotish-service/internal/domain"
	"strings"
)

// Snapshot renders a reading as the Markdown chart summary.
func Snapshot(r domain.Reading) string {
	var b strings.Builder

	b.WriteString("🌟 **Your Vedic Astrology Snapshot:** 🌟\n\n")
	fmt.Fprintf(&b, "- **Sun Sign:** %s (Element: %s) - %s\n", r.Sun.Sign, r.Sun.Element, r.Sun.Description)
	fmt.Fprintf(&b, "- **Moon Sign:** %s (Element: %s) - %s\n", r.Moon.Sign, r.Moon.Element, r.Moon.Description)
	fmt.Fprintf(&b, "- **Ascendant Sign:** %s (Element: %s) - %s\n", r.Ascendant.Sign, r.Ascendant.Element, r.Ascendant.Description)
	fmt.Fprintf(&b, "- **Nakshatra:** %s, Pada %d\n", r.Chart.Nakshatra, r.Chart.Pada)
	fmt.Fprintf(&b, "- **Paksha:** %s\n", r.Chart.Paksha)
	fmt.Fprintf(&b, "- **Ruling Bird (Panchabhuta):** %s (%s) (%s)\n", r.Bird.Name, r.Bird.Sanskrit, r.Bird.Element)
	fmt.Fprintf(&b, "- **Linked String Type:** %s - %s\n\n", r.StringType, r.StringDescription)
	fmt.Fprintf(&b, "**Dynamic Fun Description:** %s\n\n", r.Summary)
	fmt.Fprintf(&b, "**Bird Meaning in Context:** %s\n", r.Bird.Description)

	return b.String()
}

// Reference renders the explanatory sections: the three signs, all birds
// and all string types.
func Reference(cat *catalog.Catalog) string {
	var b strings.Builder

	b.WriteString("## Significance of Sun, Moon, and Ascendant Signs\n\n")
	b.WriteString(strings.TrimSpace(cat.Significance()))
	b.WriteString("\n\n## Meanings of All Birds in Pancha Pakshi Shastra\n\n")
	for _, bird := range cat.Birds() {
		fmt.Fprintf(&b, "- **%s:** %s\n", bird.Name, bird.Description)
	}

	b.WriteString("\n## Scientific Context of All String Types\n\n")
	for _, st := range cat.StringTypes() {
		fmt.Fprintf(&b, "- **%s:** %s\n", st.Name, st.Description)
	}

	return b.String()
}
