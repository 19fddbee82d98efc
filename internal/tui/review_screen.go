package tui

import (
	"strings"
)

func (m appModel) viewReview() string {
	if m.form.summary == nil {
		return renderPage("REVIEW YOUR ANSWERS", "", "e: edit")
	}

	var b strings.Builder
	for _, section := range m.form.summary.Sections {
		verdict := "ok"
		if !section.Valid {
			verdict = errorStyle.Render("needs attention")
		}
		b.WriteString(sectionStyle.Render(string(section.Section)) + "  " + verdict + "\n")

		for _, item := range section.Items {
			mark := " "
			if !item.Valid {
				mark = errorStyle.Render("!")
			}
			value := item.Value
			if value == "" {
				value = "-"
			}
			b.WriteString("  " + mark + " " + padLabel(item.Label) + " " + fitText(value, 40) + "\n")
		}
		b.WriteString("\n")
	}

	if m.form.summary.Valid {
		b.WriteString("All sections look good.")
	} else {
		b.WriteString(errorStyle.Render("Some answers are invalid; press e to go back and fix them."))
	}

	body := scrollLines(b.String(), m.reviewScroll)

	hotKeys := "c: confirm  e/esc: edit  y: copy  i: about  ↑/↓: scroll"
	if m.submitting {
		hotKeys = "submitting..."
	}
	if m.status != "" {
		hotKeys += "  " + m.status
	}

	return renderPage("REVIEW YOUR ANSWERS", body, hotKeys)
}

func padLabel(label string) string {
	const width = 24
	if len(label) >= width {
		return label + ":"
	}
	return label + ":" + strings.Repeat(" ", width-len(label))
}

// scrollLines drops the first offset lines so long summaries can be walked
// with the arrow keys.
func scrollLines(s string, offset int) string {
	if offset <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if offset >= len(lines) {
		offset = len(lines) - 1
	}
	return strings.Join(lines[offset:], "\n")
}
