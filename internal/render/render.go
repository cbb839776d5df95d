// Package render turns the fixed profile data into terminal output: the
// plain five-line summary, a lipgloss-styled card, a markdown document, and
// glob-filtered skill listings.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/srcheesedev/devcard/profile"
)

// Summary writes the five-line profile summary. This is the default output
// of the binary; its shape is a compatibility contract, so keep it plain.
func Summary(w io.Writer, p profile.Profile) {
	fmt.Fprintf(w, "👋 %s - %s\n", p.Name, p.Role)
	fmt.Fprintf(w, "📍 %s\n", p.Location)
	fmt.Fprintf(w, "💭 %s\n", p.Motto)
	fmt.Fprintf(w, "🎓 %s\n", p.Education)
	fmt.Fprintf(w, "☁️ %s\n", p.Certification)
}

// Card renders the full profile as a styled, bordered terminal card.
func Card(p profile.Profile, width int) string {
	var b strings.Builder

	b.WriteString(nameStyle.Render(p.Name) + " " + roleStyle.Render("· "+p.Role) + "\n\n")
	b.WriteString(fieldStyle.Render("📍 "+p.Location) + "\n")
	b.WriteString(fieldStyle.Render("💭 "+p.Motto) + "\n")
	b.WriteString(fieldStyle.Render("🎓 "+p.Education) + "\n")
	b.WriteString(fieldStyle.Render("☁️ "+p.Certification) + "\n")

	b.WriteString("\n" + sectionStyle.Render("Skills") + "\n")
	for _, cat := range profile.SkillCategories() {
		items, ok := p.Skills[cat]
		if !ok {
			continue
		}
		b.WriteString("  " + categoryStyle.Render(DisplayCategory(cat)) + "  ")
		b.WriteString(itemStyle.Render(strings.Join(items, " · ")) + "\n")
	}

	b.WriteString("\n" + sectionStyle.Render("Interests") + "\n")
	for _, cat := range profile.InterestCategories() {
		b.WriteString("  " + categoryStyle.Render(DisplayCategory(cat)) + "  ")
		b.WriteString(itemStyle.Render(strings.Join(p.Interests[cat], " · ")) + "\n")
	}

	b.WriteString("\n" + sectionStyle.Render("Contact") + "\n")
	for _, pl := range profile.ContactPlatforms() {
		b.WriteString("  " + categoryStyle.Render(DisplayCategory(pl)) + "  ")
		b.WriteString(handleStyle.Render(p.Contact[pl]) + "\n")
	}

	card := cardStyle
	if width > 0 {
		inner := width - 6 // border + padding
		if inner > 20 {
			card = card.Width(inner)
		}
	}
	return card.Render(strings.TrimRight(b.String(), "\n"))
}

// Section writes a single plain-text section of the profile: "about",
// "skills", "interests", or "contact".
func Section(w io.Writer, p profile.Profile, name string) error {
	switch name {
	case "about":
		Summary(w, p)
	case "skills":
		writeGrouped(w, p.Skills, profile.SkillCategories())
	case "interests":
		writeGrouped(w, p.Interests, profile.InterestCategories())
	case "contact":
		for _, pl := range profile.ContactPlatforms() {
			fmt.Fprintf(w, "%s: %s\n", pl, p.Contact[pl])
		}
	default:
		return fmt.Errorf("unknown section %q (want about, skills, interests, or contact)", name)
	}
	return nil
}

// writeGrouped prints category-grouped string lists in canonical order.
// Categories filtered down to nothing are skipped entirely.
func writeGrouped(w io.Writer, groups map[string][]string, order []string) {
	for _, cat := range order {
		items, ok := groups[cat]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", cat, strings.Join(items, ", "))
	}
}

// DisplayCategory maps internal category keys to display labels.
func DisplayCategory(key string) string {
	switch key {
	case "ci_cd":
		return "CI/CD"
	case "tech":
		return "Tech"
	case "personal":
		return "Personal"
	case "github":
		return "GitHub"
	case "linkedin":
		return "LinkedIn"
	case "instagram":
		return "Instagram"
	default:
		if key == "" {
			return key
		}
		return strings.ToUpper(key[:1]) + key[1:]
	}
}

// TabBar renders a simple highlighted tab bar; shared by the interactive
// browser. The active tab is emphasised, the rest dimmed.
func TabBar(names []string, active int) string {
	parts := make([]string, len(names))
	for i, name := range names {
		if i == active {
			parts[i] = sectionStyle.Render("[" + name + "]")
		} else {
			parts[i] = itemStyle.Render(" " + name + " ")
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
