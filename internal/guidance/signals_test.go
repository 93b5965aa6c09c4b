package guidance

import (
	"reflect"
	"testing"
	"time"

	"github.com/rmoran/noticeguide/internal/classify"
	"github.com/rmoran/noticeguide/internal/record"
)

var signalsNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func TestComputeSignalsDestinationPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		family   classify.DocumentFamily
		fields   record.ExtractedFields
		expected ResponseDestination
	}{
		{
			"court outranks sender contact",
			classify.FamilySummons,
			record.ExtractedFields{CourtName: "Circuit Court", SenderEmail: "a@b.test"},
			DestinationCourt,
		},
		{
			"sender contact without court",
			classify.FamilyDemandLetter,
			record.ExtractedFields{SenderPhone: "555-0100"},
			DestinationSender,
		},
		{
			"agency notice with no contact",
			classify.FamilyAgencyNotice,
			record.ExtractedFields{},
			DestinationAgency,
		},
		{
			"nothing known",
			classify.FamilyOther,
			record.ExtractedFields{},
			DestinationUnknown,
		},
		{
			"sender name alone is not contact",
			classify.FamilyDemandLetter,
			record.ExtractedFields{SenderName: "Acme"},
			DestinationUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signals := ComputeSignals(tt.family, tt.fields, "", signalsNow)
			if signals.Destination != tt.expected {
				t.Errorf("Destination = %s, want %s", signals.Destination, tt.expected)
			}
		})
	}
}

func TestComputeSignalsChannelOrder(t *testing.T) {
	fields := record.ExtractedFields{
		SenderEmail:   "a@b.test",
		SenderPhone:   "555-0100",
		SenderAddress: "1 Main St",
		CourtWebsite:  "https://court.test",
	}

	signals := ComputeSignals(classify.FamilySummons, fields, "", signalsNow)

	expected := []ResponseChannel{ChannelEmail, ChannelPhone, ChannelMail, ChannelPortal}
	if !reflect.DeepEqual(signals.Channels, expected) {
		t.Errorf("Channels = %v, want %v", signals.Channels, expected)
	}
}

func TestComputeSignalsNeverInPerson(t *testing.T) {
	fields := record.ExtractedFields{
		SenderEmail:   "a@b.test",
		SenderPhone:   "555-0100",
		SenderAddress: "1 Main St",
		CourtWebsite:  "https://court.test",
		CourtName:     "Circuit Court",
	}

	signals := ComputeSignals(classify.FamilySummons, fields, "2026-03-20", signalsNow)

	for _, ch := range signals.Channels {
		if ch == ChannelInPerson {
			t.Error("in_person must never be derived from extracted facts")
		}
	}
}

func TestComputeSignalsJurisdiction(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		expected string
	}{
		{"standard address", "200 S 9th St, Springfield, IL 62701", "IL"},
		{"first match wins", "PO Box 1, Austin, TX 78701, formerly Reno, NV 89501", "TX"},
		{"no state pattern", "200 S 9th St, Springfield", ""},
		{"empty address", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := record.ExtractedFields{CourtAddress: tt.address}
			signals := ComputeSignals(classify.FamilySummons, fields, "", signalsNow)
			if signals.JurisdictionState != tt.expected {
				t.Errorf("JurisdictionState = %q, want %q", signals.JurisdictionState, tt.expected)
			}
		})
	}
}

func TestComputeSignalsMissingFlags(t *testing.T) {
	signals := ComputeSignals(classify.FamilyOther, record.ExtractedFields{}, "", signalsNow)

	if !signals.Missing.Deadline || !signals.Missing.Sender || !signals.Missing.Court || !signals.Missing.Channel {
		t.Errorf("Expected all missing flags set, got %+v", signals.Missing)
	}

	fields := record.ExtractedFields{
		SenderName:  "Acme",
		SenderEmail: "a@b.test",
		CourtName:   "Circuit Court",
	}
	signals = ComputeSignals(classify.FamilySummons, fields, "2026-03-20", signalsNow)

	if signals.Missing.Deadline || signals.Missing.Sender || signals.Missing.Court || signals.Missing.Channel {
		t.Errorf("Expected no missing flags, got %+v", signals.Missing)
	}
}

func TestComputeSignalsSensitivityAndDeadline(t *testing.T) {
	deadline := signalsNow.AddDate(0, 0, 5).Format("2006-01-02")

	signals := ComputeSignals(classify.FamilySummons, record.ExtractedFields{}, deadline, signalsNow)

	if signals.TimeSensitivity != classify.SensitivityUrgent {
		t.Errorf("TimeSensitivity = %s, want urgent", signals.TimeSensitivity)
	}
	if signals.ResponseDeadlineISO != deadline {
		t.Errorf("ResponseDeadlineISO = %q, want %q", signals.ResponseDeadlineISO, deadline)
	}
}

func TestComputeSignalsIdempotent(t *testing.T) {
	fields := record.ExtractedFields{SenderEmail: "a@b.test", CourtAddress: "1 Court Sq, Boston, MA 02108"}

	first := ComputeSignals(classify.FamilySummons, fields, "2026-03-20", signalsNow)
	second := ComputeSignals(classify.FamilySummons, fields, "2026-03-20", signalsNow)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("ComputeSignals not idempotent: %+v vs %+v", first, second)
	}
}
