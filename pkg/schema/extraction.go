package schema

// Envelope is the wire shape of one extraction response. The payload
// lives under the single top-level "fir" key; a response without it is
// unusable and must never populate a Record.
type Envelope struct {
	SchemaVersion string      `json:"schema_version,omitempty" jsonschema_description:"Version tag of this payload shape, e.g. 'v1'"`
	FIR           *Extraction `json:"fir" jsonschema_description:"Structured FIR fields extracted from the narration"`
}

// Extraction mirrors the remote contract field for field. Every member
// is optional: the narration rarely states them all, and the mapper
// substitutes placeholders rather than trusting the model to.
type Extraction struct {
	FIRNumber string `json:"fir_number,omitempty" jsonschema_description:"FIR number only if explicitly stated in the narration; never invented"`
	FIRDate   string `json:"fir_date,omitempty" jsonschema_description:"Date of filing if stated (DD/MM/YYYY)"`

	District        string `json:"district,omitempty" jsonschema_description:"District of the police station with jurisdiction"`
	PoliceStation   string `json:"police_station,omitempty" jsonschema_description:"Police station name if stated"`
	Year            string `json:"year,omitempty" jsonschema_description:"Year of filing if stated"`
	InformationType string `json:"information_type,omitempty" jsonschema_description:"How the information was given: Oral or Written"`

	ActsAndSections []ActSection `json:"acts_and_sections" jsonschema_description:"Applicable acts with their section numbers, most specific first"`

	OtherActsAndSections string `json:"other_acts_and_sections,omitempty" jsonschema_description:"Free-text statutes that do not fit the act/section list"`

	DayOfOccurrence         string `json:"day_of_occurrence,omitempty" jsonschema_description:"Weekday of the occurrence if stated or derivable"`
	DateOfOccurrence        string `json:"date_of_occurrence,omitempty" jsonschema_description:"Date of the occurrence (YYYY-MM-DD when derivable)"`
	TimeOfOccurrence        string `json:"time_of_occurrence,omitempty" jsonschema_description:"Time of the occurrence if stated"`
	InformationReceivedDate string `json:"information_received_date,omitempty" jsonschema_description:"Date the information reached the police station"`
	InformationReceivedTime string `json:"information_received_time,omitempty" jsonschema_description:"Time the information reached the police station"`
	GeneralDiaryEntryNumber string `json:"general_diary_entry_number,omitempty" jsonschema_description:"General Diary entry number only if explicitly stated"`
	GeneralDiaryEntryTime   string `json:"general_diary_entry_time,omitempty" jsonschema_description:"General Diary entry time only if explicitly stated"`

	DistanceAndDirectionFromPS string `json:"distance_and_direction_from_ps,omitempty" jsonschema_description:"Direction and distance of the place of occurrence from the police station"`
	BeatNumber                 string `json:"beat_number,omitempty" jsonschema_description:"Beat number if stated"`
	PlaceOfOccurrence          string `json:"place_of_occurrence,omitempty" jsonschema_description:"Address or description of the place of occurrence"`
	OutsidePSName              string `json:"outside_ps_name,omitempty" jsonschema_description:"Police station name when the place lies outside the filing station's limits"`
	OutsideDistrict            string `json:"outside_district,omitempty" jsonschema_description:"District when the place lies outside the filing district"`

	ComplainantName     string `json:"complainant_name,omitempty" jsonschema_description:"Complainant or informant name"`
	FatherOrHusbandName string `json:"father_or_husband_name,omitempty" jsonschema_description:"Complainant's father's or husband's name if stated"`
	ComplainantDOB      string `json:"complainant_dob,omitempty" jsonschema_description:"Complainant date or year of birth if stated"`
	Nationality         string `json:"nationality,omitempty" jsonschema_description:"Complainant nationality if stated"`
	PassportNumber      string `json:"passport_number,omitempty" jsonschema_description:"Passport number if stated"`
	PassportIssueDate   string `json:"passport_issue_date,omitempty" jsonschema_description:"Passport date of issue if stated"`
	PassportIssuePlace  string `json:"passport_issue_place,omitempty" jsonschema_description:"Passport place of issue if stated"`
	Occupation          string `json:"occupation,omitempty" jsonschema_description:"Complainant occupation if stated"`
	ComplainantAddress  string `json:"complainant_address,omitempty" jsonschema_description:"Complainant address if stated"`
	ComplainantPhone    string `json:"complainant_phone,omitempty" jsonschema_description:"Complainant phone number if stated"`

	AccusedList []Accused `json:"accused_list" jsonschema_description:"One entry per known, suspected or unknown accused person"`

	DelayInReportingReason string `json:"delay_in_reporting_reason,omitempty" jsonschema_description:"Reason for any delay between occurrence and reporting"`

	PropertyDetails []Property `json:"property_details" jsonschema_description:"Properties stolen or involved, one entry per item"`

	TotalPropertyValue          string `json:"total_property_value,omitempty" jsonschema_description:"Total value of the properties involved"`
	InquestReportOrUDCaseNumber string `json:"inquest_report_or_ud_case_number,omitempty" jsonschema_description:"Inquest report or U.D. case number only if explicitly stated"`

	FIRContents string `json:"fir_contents,omitempty" jsonschema_description:"Full narrative of the incident rewritten as formal FIR contents"`
}

type ActSection struct {
	ActName  string   `json:"act_name" jsonschema_description:"Full name of the act, e.g. 'Bharatiya Nyaya Sanhita, 2023'"`
	Sections []string `json:"sections" jsonschema_description:"Section numbers of this act supported by the facts"`
}

type Accused struct {
	Name        string `json:"name,omitempty" jsonschema_description:"Name of the accused, or empty if unknown"`
	KnownStatus string `json:"known_status,omitempty" jsonschema:"enum=known,enum=suspected,enum=unknown" jsonschema_description:"Whether the accused is known, suspected or unknown"`
	Description string `json:"description,omitempty" jsonschema_description:"Identifying description if the accused is not named"`
}

type Property struct {
	Description string `json:"description,omitempty" jsonschema_description:"What the item is"`
	Quantity    string `json:"quantity,omitempty" jsonschema_description:"How many, as stated"`
	Value       string `json:"value,omitempty" jsonschema_description:"Stated value of the item"`
}
