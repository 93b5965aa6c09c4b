package guidance

import (
	"regexp"
	"time"

	"github.com/rmoran/noticeguide/internal/classify"
	"github.com/rmoran/noticeguide/internal/record"
)

// ResponseDestination identifies who the response should be directed to.
type ResponseDestination string

// Response destinations.
const (
	DestinationCourt   ResponseDestination = "court"
	DestinationSender  ResponseDestination = "sender"
	DestinationAgency  ResponseDestination = "agency"
	DestinationUnknown ResponseDestination = "unknown"
)

// ResponseChannel is a concrete route for delivering a response.
type ResponseChannel string

// Response channels.
const (
	ChannelEmail    ResponseChannel = "email"
	ChannelPhone    ResponseChannel = "phone"
	ChannelMail     ResponseChannel = "mail"
	ChannelPortal   ResponseChannel = "portal"
	ChannelInPerson ResponseChannel = "in_person"
)

// MissingFlags marks facts the extractor could not establish. The
// presentation layer turns these into "we could not find X" caveats.
type MissingFlags struct {
	Deadline bool `json:"deadline"`
	Sender   bool `json:"sender"`
	Court    bool `json:"court"`
	Channel  bool `json:"channel"`
}

// ResponseSignals is the routing profile derived from a document's facts:
// where the response goes, over which channels, and how urgent it is.
type ResponseSignals struct {
	Destination         ResponseDestination      `json:"responseDestination"`
	Channels            []ResponseChannel        `json:"responseChannels"`
	TimeSensitivity     classify.TimeSensitivity `json:"timeSensitivity"`
	JurisdictionState   string                   `json:"jurisdictionState,omitempty"`
	ResponseDeadlineISO string                   `json:"responseDeadlineIso,omitempty"`
	Missing             MissingFlags             `json:"missing"`
}

// Matches the state + ZIP tail of a US mailing address, e.g. ", CA 94103".
var stateZipPattern = regexp.MustCompile(`,\s*([A-Z]{2})\s+\d{5}`)

// ComputeSignals derives the response-routing profile for a document.
// Channels are appended in fixed evaluation order (email, phone, mail,
// portal) so the first channel is always the preferred one; in-person
// routing is never inferred at this stage.
func ComputeSignals(family classify.DocumentFamily, fields record.ExtractedFields, deadlineISO string, now time.Time) ResponseSignals {
	hasContact := fields.HasSenderContact()

	destination := DestinationUnknown
	switch {
	case fields.CourtName != "":
		destination = DestinationCourt
	case hasContact:
		destination = DestinationSender
	case family == classify.FamilyAgencyNotice:
		destination = DestinationAgency
	}

	var channels []ResponseChannel
	if fields.SenderEmail != "" {
		channels = append(channels, ChannelEmail)
	}
	if fields.SenderPhone != "" {
		channels = append(channels, ChannelPhone)
	}
	if fields.SenderAddress != "" {
		channels = append(channels, ChannelMail)
	}
	if fields.CourtWebsite != "" {
		channels = append(channels, ChannelPortal)
	}

	jurisdiction := ""
	if m := stateZipPattern.FindStringSubmatch(fields.CourtAddress); m != nil {
		jurisdiction = m[1]
	}

	return ResponseSignals{
		Destination:         destination,
		Channels:            channels,
		TimeSensitivity:     classify.ClassifySensitivity(deadlineISO, now),
		JurisdictionState:   jurisdiction,
		ResponseDeadlineISO: deadlineISO,
		Missing: MissingFlags{
			Deadline: deadlineISO == "",
			Sender:   !hasContact && fields.SenderName == "",
			Court:    fields.CourtName == "",
			Channel:  len(channels) == 0,
		},
	}
}
