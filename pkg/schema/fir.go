package schema

import "strings"

// Placeholder is rendered for every absent field so no item of the IF1
// form is ever silently omitted from an exported document.
const Placeholder = "—"

// Record is the canonical structured form of a First Information Report.
// It is produced wholesale by the extraction client, handed to exporters
// by value, and replaced (never patched) when the user files again.
type Record struct {
	FIRNumber  string `json:"firNumber"`
	FilingDate string `json:"filingDate"`
	FilingTime string `json:"filingTime"`

	District      string `json:"district"`
	PoliceStation string `json:"policeStation"`
	Year          string `json:"year"`

	Act1      string `json:"act1"`
	Sections1 string `json:"sections1"`
	Act2      string `json:"act2"`
	Sections2 string `json:"sections2"`
	Act3      string `json:"act3"`
	Sections3 string `json:"sections3"`

	OtherActsAndSections string `json:"otherActsAndSections"`

	OccurrenceDay    string `json:"occurrenceDay"`
	OccurrenceDate   string `json:"occurrenceDate"`
	OccurrenceTime   string `json:"occurrenceTime"`
	InfoReceivedDate string `json:"infoReceivedDate"`
	InfoReceivedTime string `json:"infoReceivedTime"`
	GDEntryNumber    string `json:"gdEntryNumber"`
	GDEntryTime      string `json:"gdEntryTime"`

	InformationType string `json:"informationType"`

	DirectionAndDistanceFromPS string `json:"directionAndDistanceFromPS"`
	BeatNumber                 string `json:"beatNumber"`
	PlaceOfOccurrence          string `json:"placeOfOccurrence"`
	OutsidePSName              string `json:"outsidePSName,omitempty"`
	OutsideDistrict            string `json:"outsideDistrict,omitempty"`

	ComplainantName     string `json:"complainantName"`
	FatherOrHusbandName string `json:"fatherOrHusbandName"`
	DateOfBirth         string `json:"dateOfBirth"`
	Nationality         string `json:"nationality"`
	PassportNumber      string `json:"passportNumber,omitempty"`
	PassportIssueDate   string `json:"passportIssueDate,omitempty"`
	PassportIssuePlace  string `json:"passportIssuePlace,omitempty"`
	Occupation          string `json:"occupation"`
	ComplainantAddress  string `json:"complainantAddress"`
	ComplainantPhone    string `json:"complainantPhone"`

	AccusedDetails        string `json:"accusedDetails"`
	DelayReason           string `json:"delayReason"`
	PropertiesStolen      string `json:"propertiesStolen"`
	TotalPropertyValue    string `json:"totalPropertyValue"`
	InquestReportOrUDCase string `json:"inquestReportOrUDCase"`
	FIRContents           string `json:"firContents"`
}

// Or is the single "present or default" accessor shared by every
// exporter: blank values render as the placeholder.
func Or(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}

// Sanitize strips non-printable control characters from field text so
// they cannot corrupt text-wrapping measurement. Newlines survive as
// explicit paragraph breaks; carriage returns are folded into them.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n':
			b.WriteRune(r)
		case r == '\t':
			b.WriteRune(' ')
		case r < 0x20 || r == 0x7F:
			// dropped
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
