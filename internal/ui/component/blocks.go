package component

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"
	"github.com/sulayman/folio/internal/content"
	"github.com/sulayman/folio/internal/section"
	"github.com/sulayman/folio/internal/ui/model"
	"github.com/sulayman/folio/internal/ui/styles"
)

type sectionBuilder func(m *DocumentModel, contentWidth int, viewportRows int) []Block

var sectionBuilders = map[section.ID]sectionBuilder{
	section.Home:       homeBlocks,
	section.About:      aboutBlocks,
	section.Skills:     skillsBlocks,
	section.Education:  educationBlocks,
	section.Experience: experienceBlocks,
	section.Services:   servicesBlocks,
	section.Projects:   projectsBlocks,
	section.Contact:    contactBlocks,
}

// ElementID builds the id of an animatable element, eg: "skills-card-2".
func ElementID(sect section.ID, kind string, idx int) string {
	if idx < 0 {
		return fmt.Sprintf("%s-%s", sect, kind)
	}

	return fmt.Sprintf("%s-%s-%d", sect, kind, idx)
}

func wrap(width int, text string) string {
	return strings.TrimRight(wordwrap.String(text, max(1, width)), "\n")
}

func heading(sect section.ID, contentWidth int, plain string, accent string) Block {
	return Block{
		ID: ElementID(sect, "heading", -1),
		render: centered(contentWidth, func(width int) string {
			title := styles.Heading.Render(plain+" ") + styles.HeadingAccent.Render(accent)

			return lipgloss.PlaceHorizontal(width, lipgloss.Center, title)
		}),
	}
}

func paragraph(id string, contentWidth int, style lipgloss.Style, text string, align lipgloss.Position) Block {
	return Block{
		ID: id,
		render: centered(contentWidth, func(width int) string {
			return lipgloss.NewStyle().Width(width).Align(align).Render(style.Render(wrap(width, text)))
		}),
	}
}

func card(id string, contentWidth int, title string, body func(inner int) string) Block {
	return Block{
		ID: id,
		render: centered(contentWidth, func(width int) string {
			inner := width - styles.Card.GetHorizontalFrameSize()

			return model.Card(title, width, body(inner))
		}),
	}
}

func bullets(width int, items []string) string {
	rows := make([]string, 0, len(items))
	for _, item := range items {
		marker := styles.Bullet.Render("• ")
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, marker,
			styles.Paragraph.Render(wrap(width-lipgloss.Width(marker), item))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func links(items []content.Link) string {
	labels := make([]string, 0, len(items))
	for _, item := range items {
		labels = append(labels, styles.Link.Render(item.Label))
	}

	return strings.Join(labels, "   ")
}

func chips(width int, items []string) string {
	var (
		lines []string
		line  []string
		used  int
	)

	for _, item := range items {
		chip := styles.Chip.Render(item)
		chipWidth := lipgloss.Width(chip) + 1
		if used+chipWidth > width && len(line) > 0 {
			lines = append(lines, strings.Join(line, " "))
			line, used = nil, 0
		}

		line = append(line, chip)
		used += chipWidth
	}

	if len(line) > 0 {
		lines = append(lines, strings.Join(line, " "))
	}

	return strings.Join(lines, "\n")
}

func homeBlocks(m *DocumentModel, contentWidth int, viewportRows int) []Block {
	hero := m.portfolio

	return []Block{{
		render: centered(contentWidth, func(width int) string {
			body := lipgloss.JoinVertical(lipgloss.Center,
				styles.HeroName.Render(hero.Name),
				"",
				styles.HeroTagline.Render(wrap(width, hero.Tagline)),
				"",
				lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(styles.HeroSummary.Render(wrap(width-8, hero.Summary))),
				"",
				links(hero.Social),
				"",
				zone.Mark(m.heroZoneID, styles.HeroArrow.Render(styles.IconDown)),
			)

			return lipgloss.PlaceVertical(max(viewportRows, lipgloss.Height(body)), lipgloss.Center, body)
		}),
	}}
}

func aboutBlocks(m *DocumentModel, contentWidth int, _ int) []Block {
	return []Block{
		spacer(1),
		heading(section.About, contentWidth, "About", "Me"),
		spacer(1),
		paragraph(ElementID(section.About, "bio", -1), contentWidth, styles.Paragraph,
			strings.Join(m.portfolio.About, "\n\n"), lipgloss.Left),
		spacer(1),
		{
			ID: ElementID(section.About, "stats", -1),
			render: centered(contentWidth, func(width int) string {
				return lipgloss.PlaceHorizontal(width, lipgloss.Center, m.stats.Render(width))
			}),
		},
		spacer(1),
	}
}

func skillsBlocks(m *DocumentModel, contentWidth int, _ int) []Block {
	blocks := []Block{spacer(1), heading(section.Skills, contentWidth, "My", "Skills"), spacer(1)}
	for idx, category := range m.portfolio.Skills {
		blocks = append(blocks, card(ElementID(section.Skills, "card", idx), contentWidth,
			styles.IconCode+" "+category.Title, func(inner int) string {
				return chips(inner, category.Skills)
			}))
	}

	return append(blocks, spacer(1))
}

func educationBlocks(m *DocumentModel, contentWidth int, _ int) []Block {
	blocks := []Block{spacer(1), heading(section.Education, contentWidth, "My", "Education"), spacer(1)}
	for idx, edu := range m.portfolio.Education {
		blocks = append(blocks, card(ElementID(section.Education, "card", idx), contentWidth,
			styles.IconGrad+" "+edu.Degree, func(inner int) string {
				return lipgloss.JoinVertical(lipgloss.Left,
					styles.CardSub.Render(fmt.Sprintf("%s (%s)", edu.Institution, edu.Year)),
					"",
					styles.Paragraph.Render(wrap(inner, edu.Description)))
			}))
	}

	return append(blocks, spacer(1))
}

func experienceBlocks(m *DocumentModel, contentWidth int, _ int) []Block {
	blocks := []Block{spacer(1), heading(section.Experience, contentWidth, "Work", "Experience"), spacer(1)}
	for idx, exp := range m.portfolio.Experience {
		blocks = append(blocks, card(ElementID(section.Experience, "card", idx), contentWidth,
			styles.IconWork+" "+exp.Title, func(inner int) string {
				return lipgloss.JoinVertical(lipgloss.Left,
					styles.CardSub.Render(fmt.Sprintf("%s (%s)", exp.Company, exp.Duration)),
					"",
					styles.Paragraph.Render(wrap(inner, exp.Description)),
					"",
					bullets(inner, exp.Responsibilities))
			}))
	}

	return append(blocks, spacer(1))
}

func servicesBlocks(m *DocumentModel, contentWidth int, _ int) []Block {
	blocks := []Block{spacer(1), heading(section.Services, contentWidth, "My", "Services"), spacer(1)}
	for idx, service := range m.portfolio.Services {
		blocks = append(blocks, card(ElementID(section.Services, "card", idx), contentWidth,
			styles.IconService+" "+service.Title, func(inner int) string {
				return styles.Paragraph.Render(wrap(inner, service.Description))
			}))
	}

	return append(blocks, spacer(1))
}

func projectStatus(status string) string {
	switch status {
	case "Live":
		return styles.StatusLive.Render(status)
	case "In Progress":
		return styles.StatusInProgress.Render(status)
	default:
		return styles.StatusCompleted.Render(status)
	}
}

func projectBody(project content.Project) func(inner int) string {
	return func(inner int) string {
		rows := []string{
			projectStatus(project.Status),
			"",
			styles.Paragraph.Render(wrap(inner, project.Description)),
			"",
			chips(inner, project.Tech),
		}

		if project.Note != "" {
			rows = append(rows, "", styles.Muted.Render(project.Note))
		}

		if len(project.Links) > 0 {
			rows = append(rows, "", links(project.Links))
		}

		return lipgloss.JoinVertical(lipgloss.Left, rows...)
	}
}

func projectsBlocks(m *DocumentModel, contentWidth int, _ int) []Block {
	blocks := []Block{
		spacer(1),
		heading(section.Projects, contentWidth, "Featured", "Projects"),
		spacer(1),
		paragraph(ElementID(section.Projects, "intro", -1), contentWidth, styles.Muted,
			m.portfolio.ProjectsIntro, lipgloss.Center),
		spacer(1),
		card(ElementID(section.Projects, "featured", -1), contentWidth,
			styles.IconProject+" "+m.portfolio.Featured.Title, projectBody(m.portfolio.Featured)),
	}

	for idx, project := range m.portfolio.Projects {
		blocks = append(blocks, card(ElementID(section.Projects, "card", idx), contentWidth,
			project.Title, projectBody(project)))
	}

	blocks = append(blocks,
		spacer(1),
		paragraph(ElementID(section.Projects, "more", -1), contentWidth, styles.HeadingAccent,
			"[ View All Projects ]", lipgloss.Center),
		spacer(1))

	return blocks
}

func contactBlocks(m *DocumentModel, contentWidth int, _ int) []Block {
	return []Block{
		spacer(1),
		heading(section.Contact, contentWidth, m.portfolio.ContactTitle, ""),
		spacer(1),
		paragraph(ElementID(section.Contact, "blurb", -1), contentWidth, styles.Paragraph,
			m.portfolio.ContactBlurb, lipgloss.Center),
		spacer(1),
		{
			ID: ElementID(section.Contact, "links", -1),
			render: centered(contentWidth, func(width int) string {
				return lipgloss.PlaceHorizontal(width, lipgloss.Center, links(m.portfolio.Contacts))
			}),
		},
		spacer(1),
		{
			render: centered(contentWidth, func(width int) string {
				return styles.Footer.Width(width).Align(lipgloss.Center).Render(m.portfolio.Footer)
			}),
		},
	}
}
