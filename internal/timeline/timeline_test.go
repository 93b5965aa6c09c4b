package timeline

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/rmoran/noticeguide/internal/record"
)

var testNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func signalRecord(signals ...interface{}) record.AnalysisRecord {
	return record.AnalysisRecord{
		"deadlines": map[string]interface{}{
			"signals": signals,
		},
	}
}

func TestDeriveSorting(t *testing.T) {
	rec := signalRecord(
		map[string]interface{}{"label": "Far deadline", "dateIso": "2026-03-20"},
		map[string]interface{}{"label": "Near deadline", "dateIso": "2026-03-12"},
		map[string]interface{}{"label": "Undated signal"},
	)

	rows := Derive(rec, testNow)

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0].Label != "Near deadline" {
		t.Errorf("First row = %q, want the 2-day entry", rows[0].Label)
	}
	if rows[1].Label != "Far deadline" {
		t.Errorf("Second row = %q", rows[1].Label)
	}
	if rows[2].Label != "Undated signal" || rows[2].DateISO != nil {
		t.Errorf("Last row should be the undated entry, got %+v", rows[2])
	}
}

func TestDeriveInvalidDateKeptAsNull(t *testing.T) {
	rec := signalRecord(
		map[string]interface{}{"label": "Bad date", "dateIso": "not-a-date"},
	)

	rows := Derive(rec, testNow)

	if len(rows) != 1 {
		t.Fatalf("Row with invalid date must be kept, got %d rows", len(rows))
	}
	if rows[0].DateISO != nil {
		t.Errorf("Expected nil DateISO, got %v", *rows[0].DateISO)
	}
	if rows[0].DaysRemaining != nil {
		t.Errorf("Expected nil DaysRemaining, got %v", *rows[0].DaysRemaining)
	}
}

func TestDeriveDaysRemaining(t *testing.T) {
	rec := signalRecord(
		map[string]interface{}{"label": "Soon", "dateIso": "2026-03-12"},
		map[string]interface{}{"label": "Past", "dateIso": "2026-03-07"},
	)

	rows := Derive(rec, testNow)

	if rows[0].Label != "Past" || *rows[0].DaysRemaining != -3 {
		t.Errorf("Expected overdue row first with -3 days, got %+v", rows[0])
	}
	if *rows[1].DaysRemaining != 2 {
		t.Errorf("DaysRemaining = %d, want 2", *rows[1].DaysRemaining)
	}
}

func TestDeriveConfidenceSanitization(t *testing.T) {
	rec := signalRecord(
		map[string]interface{}{"label": "NaN conf", "confidence": math.NaN()},
		map[string]interface{}{"label": "Inf conf", "confidence": math.Inf(1)},
		map[string]interface{}{"label": "Neg inf conf", "confidence": math.Inf(-1)},
		map[string]interface{}{"label": "Good conf", "confidence": 0.85},
		map[string]interface{}{"label": "String conf", "confidence": "high"},
	)

	rows := Derive(rec, testNow)

	for _, row := range rows {
		switch row.Label {
		case "Good conf":
			if row.Confidence == nil || *row.Confidence != 0.85 {
				t.Errorf("%s: expected 0.85, got %v", row.Label, row.Confidence)
			}
		default:
			if row.Confidence != nil {
				t.Errorf("%s: expected nil confidence, got %v", row.Label, *row.Confidence)
			}
		}
	}
}

func TestDeriveLabelPriority(t *testing.T) {
	rec := signalRecord(
		map[string]interface{}{"label": "From label", "sourceText": "From source", "title": "From title"},
		map[string]interface{}{"sourceText": "From source", "title": "From title"},
		map[string]interface{}{"title": "From title"},
		map[string]interface{}{},
	)

	rows := Derive(rec, testNow)

	expected := []string{"From label", "From source", "From title", "Deadline"}
	for i, want := range expected {
		if rows[i].Label != want {
			t.Errorf("Row %d label = %q, want %q", i, rows[i].Label, want)
		}
	}
}

func TestDeriveDefaultKind(t *testing.T) {
	rec := signalRecord(
		map[string]interface{}{"label": "No kind"},
		map[string]interface{}{"label": "Hearing", "kind": "hearing"},
	)

	rows := Derive(rec, testNow)

	if rows[0].Kind != "deadline" {
		t.Errorf("Expected missing kind to default to \"deadline\", got %q", rows[0].Kind)
	}
	if rows[1].Kind != "hearing" {
		t.Errorf("Expected explicit kind to be kept, got %q", rows[1].Kind)
	}
}

func TestDeriveMissingSection(t *testing.T) {
	if rows := Derive(record.AnalysisRecord{}, testNow); rows != nil {
		t.Errorf("Expected no rows for a record without deadlines, got %v", rows)
	}
	if rows := Derive(nil, testNow); rows != nil {
		t.Errorf("Expected no rows for a nil record, got %v", rows)
	}
}

func TestDeriveSkipsNonMapEntries(t *testing.T) {
	rec := signalRecord("just a string", 42.0, map[string]interface{}{"label": "Real"})

	rows := Derive(rec, testNow)

	if len(rows) != 1 || rows[0].Label != "Real" {
		t.Errorf("Expected only the map entry, got %v", rows)
	}
}

func TestDeriveIdempotent(t *testing.T) {
	rec := signalRecord(
		map[string]interface{}{"label": "A", "dateIso": "2026-03-12", "confidence": 0.5},
		map[string]interface{}{"label": "B"},
	)

	first := Derive(rec, testNow)
	second := Derive(rec, testNow)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Derive not idempotent")
	}
}

func TestRemindersDropInvalid(t *testing.T) {
	rec := record.AnalysisRecord{
		"deadlineGuard": map[string]interface{}{
			"reminders": []interface{}{
				map[string]interface{}{"label": "Valid", "reminderDateIso": "2026-03-15"},
				map[string]interface{}{"label": "No date"},
				map[string]interface{}{"label": "Blank date", "reminderDateIso": "   "},
				map[string]interface{}{"label": "Wrong type", "reminderDateIso": 42.0},
			},
		},
	}

	reminders := Reminders(rec)

	// Unlike timeline rows, invalid-dated reminders are dropped entirely
	if len(reminders) != 1 {
		t.Fatalf("Expected 1 reminder, got %d", len(reminders))
	}
	if reminders[0].Label != "Valid" || reminders[0].ReminderDateISO != "2026-03-15" {
		t.Errorf("Unexpected reminder %+v", reminders[0])
	}
}

func TestRemindersDefaultLabel(t *testing.T) {
	rec := record.AnalysisRecord{
		"deadlineGuard": map[string]interface{}{
			"reminders": []interface{}{
				map[string]interface{}{"reminderDateIso": "2026-03-15"},
			},
		},
	}

	reminders := Reminders(rec)

	if len(reminders) != 1 || reminders[0].Label != "Reminder" {
		t.Errorf("Expected default label \"Reminder\", got %+v", reminders)
	}
}

func TestRemindersMissingSection(t *testing.T) {
	if reminders := Reminders(record.AnalysisRecord{}); reminders != nil {
		t.Errorf("Expected no reminders, got %v", reminders)
	}
	if reminders := Reminders(nil); reminders != nil {
		t.Errorf("Expected no reminders for nil record, got %v", reminders)
	}
}
