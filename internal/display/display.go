// Package display renders derived guidance for terminal output.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/rmoran/noticeguide/internal/guidance"
	"github.com/rmoran/noticeguide/internal/timeline"
)

// RenderInstruction writes a formatted action instruction. When colorOutput
// is false all styling is suppressed, which also makes output stable for
// tests and pipes.
func RenderInstruction(w io.Writer, inst guidance.ActionInstruction, colorOutput bool) {
	title := inst.Title
	if colorOutput {
		title = color.New(color.Bold).Sprint(inst.Title)
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", len(inst.Title)))
	fmt.Fprintln(w, inst.Explanation)
	fmt.Fprintln(w)

	if inst.DeadlineLabel != "" {
		label := inst.DeadlineLabel
		if colorOutput {
			label = color.New(color.FgRed, color.Bold).Sprint(inst.DeadlineLabel)
		}
		fmt.Fprintln(w, label)
		fmt.Fprintln(w)
	}

	for i, step := range inst.Steps {
		fmt.Fprintf(w, "  %d. %s\n", i+1, step)
	}

	if len(inst.Channels) > 0 {
		fmt.Fprintf(w, "\nChannels: %s\n", strings.Join(inst.Channels, ", "))
	}

	if inst.Contact != nil {
		fmt.Fprintln(w, "\nContact:")
		printPair(w, "Name", inst.Contact.Name)
		printPair(w, "Email", inst.Contact.Email)
		printPair(w, "Phone", inst.Contact.Phone)
		printPair(w, "Address", inst.Contact.Address)
		printPair(w, "Website", inst.Contact.Website)
	}

	if inst.Court != nil {
		fmt.Fprintln(w, "\nCourt:")
		printPair(w, "Name", inst.Court.Name)
		printPair(w, "Address", inst.Court.Address)
		printPair(w, "Website", inst.Court.Website)
		printPair(w, "Case number", inst.Court.CaseNumber)
	}

	for _, consequence := range inst.Consequences {
		line := "! " + consequence
		if colorOutput {
			line = color.New(color.FgYellow).Sprint(line)
		}
		fmt.Fprintf(w, "\n%s\n", line)
	}

	if len(inst.MissingInfo) > 0 {
		fmt.Fprintln(w, "\nMissing information:")
		for _, item := range inst.MissingInfo {
			fmt.Fprintf(w, "  - %s\n", item)
		}
	}

	fmt.Fprintf(w, "\nConfidence: %d%%\n", inst.Confidence)
}

// RenderTimeline writes the sorted timeline rows as a table. Undated rows
// print a dash in the date column.
func RenderTimeline(w io.Writer, rows []timeline.Row, colorOutput bool) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No deadline signals found")
		return
	}

	for _, row := range rows {
		date := "-"
		days := ""
		if row.DateISO != nil {
			date = *row.DateISO
		}
		if row.DaysRemaining != nil {
			switch d := *row.DaysRemaining; {
			case d < 0:
				days = fmt.Sprintf("(%d days overdue)", -d)
				if colorOutput {
					days = color.New(color.FgRed).Sprint(days)
				}
			case d == 0:
				days = "(today)"
				if colorOutput {
					days = color.New(color.FgRed).Sprint(days)
				}
			default:
				days = fmt.Sprintf("(in %d days)", d)
			}
		}
		line := fmt.Sprintf("%-12s %s", date, row.Label)
		if days != "" {
			line += " " + days
		}
		fmt.Fprintln(w, line)
	}
}

// RenderOutline writes a response-letter outline with numbered sections.
func RenderOutline(w io.Writer, outline guidance.ResponseOutline, colorOutput bool) {
	if outline.Subject != "" {
		subject := outline.Subject
		if colorOutput {
			subject = color.New(color.Bold).Sprint(outline.Subject)
		}
		fmt.Fprintln(w, subject)
		fmt.Fprintln(w)
	}
	for i, section := range outline.Sections {
		fmt.Fprintf(w, "  %d. %s\n", i+1, section)
	}
}

// RenderReminders writes the reminder list.
func RenderReminders(w io.Writer, reminders []timeline.Reminder) {
	if len(reminders) == 0 {
		fmt.Fprintln(w, "No reminders scheduled")
		return
	}
	for _, reminder := range reminders {
		fmt.Fprintf(w, "%-12s %s\n", reminder.ReminderDateISO, reminder.Label)
	}
}

func printPair(w io.Writer, key, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(w, "  %-12s %s\n", key+":", value)
}
