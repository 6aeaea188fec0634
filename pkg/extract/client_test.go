package extract

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInferencer struct {
	out  string
	err  error
	seen struct {
		system string
		user   string
	}
}

func (f *fakeInferencer) Infer(_ context.Context, _ *openai.ChatCompletionNewParams, system, user string) (string, error) {
	f.seen.system = system
	f.seen.user = user
	return f.out, f.err
}

func (f *fakeInferencer) Verify(context.Context, string) (bool, error) { return true, nil }

func testClient(out string, err error) (*Client, *fakeInferencer) {
	inf := &fakeInferencer{out: out, err: err}
	c := New(inf)
	c.now = func() time.Time { return time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC) }
	c.number = func(t time.Time) string { return "FIR-2024-1234" }
	return c, inf
}

func TestExtractMapsFullPayload(t *testing.T) {
	payload := `{
		"schema_version": "1.0",
		"fir": {
			"district": "Bengaluru Urban",
			"police_station": "MG Road PS",
			"year": "2024",
			"information_type": "Oral",
			"acts_and_sections": [
				{"act_name": "Bharatiya Nyaya Sanhita 2023", "sections": ["303", "317"]}
			],
			"day_of_occurrence": "Tuesday",
			"date_of_occurrence": "12/03/2024",
			"time_of_occurrence": "21:45",
			"place_of_occurrence": "MG Road metro station, exit B",
			"complainant_name": "Ramesh Kumar",
			"father_or_husband_name": "Suresh Kumar",
			"complainant_address": "44, 3rd Cross, Indiranagar",
			"complainant_phone": "9876543210",
			"accused_list": [
				{"name": "", "known_status": "unknown", "description": "tall man in a grey hoodie"}
			],
			"property_details": [
				{"description": "OnePlus 11 mobile phone", "quantity": "1", "value": "Rs. 45000"}
			],
			"total_property_value": "Rs. 45000",
			"fir_contents": "Complainant reports theft of his mobile phone at MG Road metro station."
		}
	}`
	c, inf := testClient(payload, nil)

	statement := "My phone was snatched near MG Road metro last Tuesday night."
	record, err := c.Extract(context.Background(), statement)
	require.NoError(t, err)

	assert.Equal(t, statement, inf.seen.user)
	assert.Contains(t, inf.seen.system, "FIR")

	assert.Equal(t, "FIR-2024-1234", record.FIRNumber)
	assert.Equal(t, "15/03/2024", record.FilingDate)
	assert.Equal(t, "Bengaluru Urban", record.District)
	assert.Equal(t, "MG Road PS", record.PoliceStation)
	assert.Equal(t, "Bharatiya Nyaya Sanhita 2023", record.Act1)
	assert.Equal(t, "303, 317", record.Sections1)
	assert.Empty(t, record.Act2)
	assert.Equal(t, "Accused 1: Name: Unknown | Status: unknown | Description: tall man in a grey hoodie", record.AccusedDetails)
	assert.Equal(t, "Item 1: OnePlus 11 mobile phone | Qty: 1 | Value: Rs. 45000", record.PropertiesStolen)
	assert.Equal(t, "Complainant reports theft of his mobile phone at MG Road metro station.", record.FIRContents)
}

func TestExtractDefaultsWhenModelOmitsFields(t *testing.T) {
	c, _ := testClient(`{"fir": {}}`, nil)

	statement := "Someone broke into my shop overnight."
	record, err := c.Extract(context.Background(), statement)
	require.NoError(t, err)

	assert.Equal(t, "FIR-2024-1234", record.FIRNumber)
	assert.Equal(t, "15/03/2024", record.FilingDate)
	assert.Equal(t, "14:30", record.FilingTime)
	assert.Equal(t, "2024", record.Year)
	assert.Equal(t, "Oral", record.InformationType)
	assert.Equal(t, "15/03/2024", record.InfoReceivedDate)
	assert.Equal(t, statement, record.FIRContents, "narrative falls back to the raw statement")
}

func TestGenerateFIRNumberShape(t *testing.T) {
	pattern := regexp.MustCompile(`^FIR-\d{4}-\d{4}$`)
	now := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	for range 20 {
		assert.Regexp(t, pattern, GenerateFIRNumber(now))
	}
}

func TestExtractActOverflow(t *testing.T) {
	payload := `{"fir": {"acts_and_sections": [
		{"act_name": "Bharatiya Nyaya Sanhita 2023", "sections": ["303"]},
		{"act_name": "Information Technology Act 2000", "sections": ["66C", "66D"]},
		{"act_name": "Arms Act 1959", "sections": ["25"]},
		{"act_name": "NDPS Act 1985", "sections": ["8", "20"]}
	], "other_acts_and_sections": "habitual offender noted"}}`
	c, _ := testClient(payload, nil)

	record, err := c.Extract(context.Background(), "statement")
	require.NoError(t, err)

	assert.Equal(t, "Bharatiya Nyaya Sanhita 2023", record.Act1)
	assert.Equal(t, "Information Technology Act 2000", record.Act2)
	assert.Equal(t, "66C, 66D", record.Sections2)
	assert.Equal(t, "Arms Act 1959", record.Act3)
	assert.Equal(t, "NDPS Act 1985 s.8, 20; habitual offender noted", record.OtherActsAndSections)
}

func TestExtractToleratesFencedOutput(t *testing.T) {
	c, _ := testClient("Here is the report:\n```json\n{\"fir\": {\"district\": \"Hyderabad\"}}\n```", nil)

	record, err := c.Extract(context.Background(), "statement")
	require.NoError(t, err)
	assert.Equal(t, "Hyderabad", record.District)
}

func TestExtractStripsThinkBlocks(t *testing.T) {
	c, _ := testClient("<think>reasoning goes here</think>{\"fir\": {\"district\": \"Chennai\"}}", nil)

	record, err := c.Extract(context.Background(), "statement")
	require.NoError(t, err)
	assert.Equal(t, "Chennai", record.District)
}

func TestExtractMissingEnvelopeKey(t *testing.T) {
	c, _ := testClient(`{"district": "Hyderabad"}`, nil)

	_, err := c.Extract(context.Background(), "statement")
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestExtractInferenceError(t *testing.T) {
	c, _ := testClient("", errors.New("connection refused"))

	_, err := c.Extract(context.Background(), "statement")
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestExtractEmptyStatement(t *testing.T) {
	c, inf := testClient(`{"fir": {}}`, nil)

	_, err := c.Extract(context.Background(), "   \n\t ")
	assert.ErrorIs(t, err, ErrExtractionFailed)
	assert.Empty(t, inf.seen.user, "inferencer must not be called for blank input")
}

func TestPropertyLinePlaceholders(t *testing.T) {
	payload := `{"fir": {"property_details": [
		{"description": "", "quantity": "", "value": "Rs. 500"},
		{"description": "gold chain", "quantity": "2", "value": ""}
	]}}`
	c, _ := testClient(payload, nil)

	record, err := c.Extract(context.Background(), "statement")
	require.NoError(t, err)
	assert.Equal(t, "Item 1: — | Qty: 1 | Value: Rs. 500\nItem 2: gold chain | Qty: 2 | Value: ", record.PropertiesStolen)
}
