package analysis

// Report is the JSON envelope the outcome-analysis service returns for
// an uploaded FIR PDF. Every field is optional; the service's schema is
// an external contract and missing keys simply decode to zero values.
type Report struct {
	ExtractedFields ExtractedFields `json:"extracted_fields"`
	LegalAnalysis   LegalAnalysis   `json:"legal_analysis"`
	Disclaimer      string          `json:"disclaimer"`
}

type ExtractedFields struct {
	FIRNumber     string `json:"fir_number,omitempty"`
	PoliceStation string `json:"police_station,omitempty"`
	District      string `json:"district,omitempty"`
	DateOfFiling  string `json:"date_of_filing,omitempty"`

	DateOfIncident string `json:"date_of_incident,omitempty"`
	TimeOfIncident string `json:"time_of_incident,omitempty"`

	VictimName    string `json:"victim_name,omitempty"`
	VictimAge     string `json:"victim_age,omitempty"`
	VictimGender  string `json:"victim_gender,omitempty"`
	VictimAddress string `json:"victim_address,omitempty"`
	VictimContact string `json:"victim_contact,omitempty"`

	AccusedNames []string `json:"accused_names,omitempty"`
	WitnessNames []string `json:"witness_names,omitempty"`

	IncidentLocation    string `json:"incident_location,omitempty"`
	IncidentDescription string `json:"incident_description,omitempty"`

	IPCSections []string `json:"ipc_sections,omitempty"`
	OtherActs   []string `json:"other_acts,omitempty"`
	CaseNature  string   `json:"case_nature,omitempty"`
}

type LegalAnalysis struct {
	EstimatedDurationMonths map[string]any `json:"estimated_duration_months,omitempty"`
	CostEstimateINR         map[string]any `json:"cost_estimate_inr,omitempty"`

	WinProbabilityPercent   int    `json:"win_probability_percent"`
	WinProbabilityReasoning string `json:"win_probability_reasoning,omitempty"`

	KeyStrengths  []string `json:"key_strengths,omitempty"`
	KeyWeaknesses []string `json:"key_weaknesses,omitempty"`

	RecommendedAction          string `json:"recommended_action,omitempty"`
	RecommendedActionReasoning string `json:"recommended_action_reasoning,omitempty"`

	SimilarPastCases []map[string]any `json:"similar_past_cases,omitempty"`

	RequiredDocuments           []string `json:"required_documents,omitempty"`
	OptionalButHelpfulDocuments []string `json:"optional_but_helpful_documents,omitempty"`
	ImmediateNextSteps          []string `json:"immediate_next_steps,omitempty"`
	ImportantCaveats            []string `json:"important_caveats,omitempty"`
}
