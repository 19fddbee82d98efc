package tui

import (
	"strings"
	"time"
)

func (m appModel) viewSubmitted() string {
	var b strings.Builder

	if m.result == nil {
		b.WriteString("Submission accepted.")
	} else {
		b.WriteString("Submission accepted.\n\n")
		b.WriteString("Submission ID: " + m.result.SubmissionID + "\n")
		b.WriteString("Submitted at:  " + m.result.SubmittedAt.Format(time.RFC3339))
	}

	hotKeys := "y: copy submission ID  enter: exit"
	if m.status != "" {
		hotKeys += "  " + m.status
	}

	return renderPage("THANK YOU", b.String(), hotKeys)
}
