package tui

import (
	"fmt"
	"strings"

	"github.com/srcheesedev/devcard/internal/render"
	"github.com/srcheesedev/devcard/profile"
)

// View implements tea.Model.
func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("devcard %s — %s", m.version, m.profile.Name)) + "\n\n")
	b.WriteString(render.TabBar(tabNames[:], m.tab) + "\n\n")

	switch m.tab {
	case tabAbout:
		b.WriteString(m.viewAbout())
	case tabSkills:
		b.WriteString(m.viewSkills())
	case tabInterests:
		b.WriteString(m.viewInterests())
	case tabContact:
		b.WriteString(m.viewContact())
	}

	b.WriteString("\n" + hintStyle.Render(m.hint()))
	return b.String()
}

func (m model) hint() string {
	if m.filtering {
		return "enter: apply filter · esc: clear"
	}
	if m.tab == tabSkills {
		return "tab/←→: switch · /: filter · q: quit"
	}
	return "tab/←→: switch · 1-4: jump · q: quit"
}

func (m model) viewAbout() string {
	p := m.profile
	lines := []string{
		"👋 " + p.Name + " - " + p.Role,
		"📍 " + p.Location,
		"💭 " + p.Motto,
		"🎓 " + p.Education,
		"☁️ " + p.Certification,
	}
	return bodyStyle.Render(strings.Join(lines, "\n")) + "\n"
}

func (m model) viewSkills() string {
	var b strings.Builder

	b.WriteString(m.filter.View() + "\n\n")

	skills := render.FilterSkills(m.profile.Skills, profile.SkillCategories(), m.filter.Value())
	if len(skills) == 0 {
		b.WriteString(hintStyle.Render("no skills match "+m.filter.Value()) + "\n")
		return b.String()
	}

	for _, cat := range profile.SkillCategories() {
		items, ok := skills[cat]
		if !ok {
			continue
		}
		b.WriteString(labelStyle.Render(render.DisplayCategory(cat)) + "\n")
		for _, item := range items {
			b.WriteString(bodyStyle.Render("  • "+item) + "\n")
		}
	}
	return b.String()
}

func (m model) viewInterests() string {
	var b strings.Builder
	for _, cat := range profile.InterestCategories() {
		b.WriteString(labelStyle.Render(render.DisplayCategory(cat)) + "\n")
		for _, item := range m.profile.Interests[cat] {
			b.WriteString(bodyStyle.Render("  • "+item) + "\n")
		}
	}
	return b.String()
}

func (m model) viewContact() string {
	var b strings.Builder
	for _, pl := range profile.ContactPlatforms() {
		b.WriteString(labelStyle.Render(render.DisplayCategory(pl)) + "  ")
		b.WriteString(bodyStyle.Render(m.profile.Contact[pl]) + "\n")
	}
	return b.String()
}
