package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-intake-form/internal/validators"
	"github.com/MKhiriev/go-intake-form/models"
)

const labelWidth = 24

func (m appModel) viewForm() string {
	var b strings.Builder

	b.WriteString(viewTitle("PATIENT INTAKE FORM"))
	b.WriteString("\n")

	for _, section := range models.Sections() {
		b.WriteString(sectionStyle.Render(string(section)))
		b.WriteString("\n")

		for _, rule := range validators.Rules() {
			if rule.Section != section {
				continue
			}
			b.WriteString(m.viewFieldLine(rule))
		}
		for _, g := range validators.GroupRules() {
			if g.Section != section {
				continue
			}
			b.WriteString(m.viewGroupLine(g, controlRadio))
		}
		for _, g := range validators.CheckboxGroups() {
			if g.Section != section {
				continue
			}
			b.WriteString(m.viewGroupLine(g, controlCheckbox))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.viewSubmitState())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/shift+tab field  ←/→ option  space select  enter review  ctrl+c quit"))

	return b.String()
}

func (m appModel) viewFieldLine(rule validators.FieldRule) string {
	i := m.form.inputIdx[rule.FieldID]

	label := rule.Label
	if rule.Required {
		label += " *"
	}

	marker := "  "
	if current, ok := m.currentControl(); ok && current.kind == controlField && current.field == rule.FieldID {
		marker = "> "
	}

	line := fmt.Sprintf("%s%-*s [%s]", marker, labelWidth, label, m.form.inputs[i].View())

	if msg, failing := m.form.fieldErrors[rule.FieldID]; failing {
		line += "\n" + strings.Repeat(" ", labelWidth+2) + errorStyle.Render("! "+msg)
	} else if m.form.fieldOK[rule.FieldID] {
		line += "  " + okStyle.Render("ok")
	}

	return line + "\n"
}

func (m appModel) viewGroupLine(g validators.GroupRule, kind controlKind) string {
	options := radioOptions[g.Group]
	if kind == controlCheckbox {
		options = checkboxOptions[g.Group]
	}

	focused := false
	if current, ok := m.currentControl(); ok && current.kind == kind && current.group == g.Group {
		focused = true
	}

	marker := "  "
	if focused {
		marker = "> "
	}

	var opts []string
	for i, opt := range options {
		var box string
		switch kind {
		case controlRadio:
			box = "( )"
			if m.form.radios[g.Group] == opt.value {
				box = "(•)"
			}
		case controlCheckbox:
			box = "[ ]"
			if m.form.checks[g.Group][opt.value] {
				box = "[x]"
			}
		}

		entry := box + " " + opt.label
		if focused && m.optCursor[g.Group] == i {
			entry = titleStyle.Render(entry)
		}
		opts = append(opts, entry)
	}

	label := g.Label
	if _, required := validators.GroupRuleFor(g.Group); required && kind == controlRadio {
		label += " *"
	}

	line := fmt.Sprintf("%s%-*s %s", marker, labelWidth, label, strings.Join(opts, "  "))

	if msg, failing := m.form.fieldErrors[models.FieldID(g.Group)]; failing {
		line += "\n" + strings.Repeat(" ", labelWidth+2) + errorStyle.Render("! "+msg)
	}

	return line + "\n"
}

func (m appModel) viewSubmitState() string {
	if m.form.submitEnabled {
		return "Submit: enabled. Press enter to review your answers."
	}
	return helpStyle.Render("Submit: disabled until every required field is valid.")
}
