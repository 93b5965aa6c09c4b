// Package timeline extracts deadline signals and reminders from an analysis
// record for chronological display.
package timeline

import (
	"math"
	"sort"
	"time"

	"github.com/rmoran/noticeguide/internal/classify"
	"github.com/rmoran/noticeguide/internal/record"
)

// Row is one candidate deadline signal. DateISO is nil when the extractor's
// date did not parse; the row is still shown, just undated.
type Row struct {
	Kind          string   `json:"kind"`
	Label         string   `json:"label"`
	DateISO       *string  `json:"dateIso"`
	DaysRemaining *int     `json:"daysRemaining"`
	Confidence    *float64 `json:"confidence"`
	SourceText    string   `json:"sourceText"`
}

// Reminder is one scheduled reminder. Entries without a valid date never
// become Reminders, so ReminderDateISO is always non-empty.
type Reminder struct {
	Label           string `json:"label"`
	ReminderDateISO string `json:"reminderDateIso"`
}

// Derive reads deadline signals out of an analysis record, validates their
// dates, sanitizes their confidence values, and returns them sorted: dated
// rows ascending by date, undated rows last.
//
// A row with an unparseable date is kept with a nil date rather than
// dropped; the signal's label text is still useful on a timeline even when
// its date is not.
func Derive(rec record.AnalysisRecord, now time.Time) []Row {
	deadlines := record.AsMap(rec["deadlines"])
	signals := record.AsSlice(deadlines["signals"])
	if len(signals) == 0 {
		return nil
	}

	rows := make([]Row, 0, len(signals))
	for _, raw := range signals {
		entry := record.AsMap(raw)
		if entry == nil {
			continue
		}

		row := Row{
			Kind:       record.AsString(entry["kind"]),
			Label:      resolveLabel(entry),
			SourceText: record.AsString(entry["sourceText"]),
		}
		if row.Kind == "" {
			row.Kind = "deadline"
		}

		if dateISO := record.AsString(entry["dateIso"]); dateISO != "" {
			if days, ok := classify.DaysUntil(dateISO, now); ok {
				row.DateISO = &dateISO
				row.DaysRemaining = &days
			}
		}

		if c, ok := record.AsFloat(entry["confidence"]); ok {
			if !math.IsNaN(c) && !math.IsInf(c, 0) {
				row.Confidence = &c
			}
		}

		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].DateISO, rows[j].DateISO
		switch {
		case a != nil && b != nil:
			return *a < *b
		case a != nil:
			return true
		default:
			return false
		}
	})

	return rows
}

// resolveLabel picks the most specific label text the extractor provided.
func resolveLabel(entry map[string]interface{}) string {
	for _, key := range []string{"label", "sourceText", "title"} {
		if s := record.AsString(entry[key]); s != "" {
			return s
		}
	}
	return "Deadline"
}

// Reminders reads the scheduled reminders out of an analysis record.
// Unlike timeline rows, reminder entries without a valid date string are
// dropped entirely: a reminder that cannot fire has no use.
func Reminders(rec record.AnalysisRecord) []Reminder {
	guard := record.AsMap(rec["deadlineGuard"])
	entries := record.AsSlice(guard["reminders"])
	if len(entries) == 0 {
		return nil
	}

	var reminders []Reminder
	for _, raw := range entries {
		entry := record.AsMap(raw)
		if entry == nil {
			continue
		}
		dateISO := record.AsString(entry["reminderDateIso"])
		if dateISO == "" {
			continue
		}
		label := record.AsString(entry["label"])
		if label == "" {
			label = "Reminder"
		}
		reminders = append(reminders, Reminder{Label: label, ReminderDateISO: dateISO})
	}
	return reminders
}
