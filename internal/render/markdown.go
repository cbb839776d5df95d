package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/srcheesedev/devcard/profile"
)

// Markdown builds a markdown document for the whole profile. The raw text
// is what non-TTY consumers (e.g. a portfolio-site generator) receive.
func Markdown(p profile.Profile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", p.Name)
	fmt.Fprintf(&b, "**%s** — %s\n\n", p.Role, p.Location)
	fmt.Fprintf(&b, "> %s\n\n", p.Motto)
	fmt.Fprintf(&b, "- 🎓 %s\n", p.Education)
	fmt.Fprintf(&b, "- ☁️ %s\n\n", p.Certification)

	b.WriteString("## Skills\n\n")
	for _, cat := range profile.SkillCategories() {
		items, ok := p.Skills[cat]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "### %s\n\n", DisplayCategory(cat))
		for _, item := range items {
			fmt.Fprintf(&b, "- %s\n", item)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Interests\n\n")
	for _, cat := range profile.InterestCategories() {
		fmt.Fprintf(&b, "- **%s**: %s\n", DisplayCategory(cat), strings.Join(p.Interests[cat], ", "))
	}
	b.WriteString("\n")

	b.WriteString("## Contact\n\n")
	for _, pl := range profile.ContactPlatforms() {
		fmt.Fprintf(&b, "- %s: `%s`\n", DisplayCategory(pl), p.Contact[pl])
	}

	return b.String()
}

// ANSIRenderer renders markdown text to styled ANSI output.
type ANSIRenderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// NewANSIRenderer creates a renderer with the given terminal width.
func NewANSIRenderer(width int) *ANSIRenderer {
	if width < 40 {
		width = 80
	}
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-4), // small margin for safety
	)
	return &ANSIRenderer{renderer: r, width: width}
}

// Render converts markdown text to styled ANSI output. On renderer failure
// the raw markdown is returned unchanged.
func (r *ANSIRenderer) Render(md string) string {
	if r.renderer == nil {
		return md
	}
	out, err := r.renderer.Render(md)
	if err != nil {
		return md
	}
	// glamour often adds trailing newlines; trim for tighter display.
	return strings.TrimRight(out, "\n")
}
