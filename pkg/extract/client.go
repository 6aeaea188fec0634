package extract

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/openai/openai-go/v3"

	"firdesk/pkg/inference"
	"firdesk/pkg/schema"
	"firdesk/pkg/utils"
)

// ErrExtractionFailed covers every way the remote call can fail to
// produce a usable payload: transport errors, empty completions and
// responses missing the "fir" envelope key. A Record is never partially
// populated from a malformed response.
var ErrExtractionFailed = errors.New("extraction failed")

// Client turns one free-form incident statement into a canonical FIR
// record via a single model call.
type Client struct {
	inf inference.Inferencer

	// injectable for tests
	now    func() time.Time
	number func(time.Time) string
}

func New(inf inference.Inferencer) *Client {
	return &Client{
		inf:    inf,
		now:    time.Now,
		number: GenerateFIRNumber,
	}
}

// GenerateFIRNumber produces a local FIR number of the form
// FIR-<year>-<4 digits> for responses where the model (correctly)
// declined to invent one.
func GenerateFIRNumber(t time.Time) string {
	return fmt.Sprintf("FIR-%d-%04d", t.Year(), 1000+rand.IntN(9000))
}

// Extract issues one extraction call and maps the response into a
// Record. The statement must be non-empty; callers enforce the
// at-most-one-in-flight rule.
func (c *Client) Extract(ctx context.Context, statement string) (schema.Record, error) {
	statement = strings.TrimSpace(statement)
	if statement == "" {
		return schema.Record{}, fmt.Errorf("%w: empty statement", ErrExtractionFailed)
	}

	if tokens, err := utils.NumTokensFromMessages(systemPrompt + statement); err == nil {
		log.Debug("extracting FIR fields", "chars", len(statement), "tokens", tokens)
	} else {
		log.Debug("extracting FIR fields", "chars", len(statement))
	}

	params := &openai.ChatCompletionNewParams{
		MaxCompletionTokens: openai.Int(4096 * 2),
		ResponseFormat:      schema.StructuredOutputsResponseFormat(),
	}

	out, err := c.inf.Infer(ctx, params, systemPrompt, statement)
	if err != nil {
		log.Warn("extraction inference error", "error", err)
		return schema.Record{}, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	env, err := parseEnvelope(out)
	if err != nil {
		log.Warn("unusable extraction payload", "error", err)
		log.Debug("raw extraction output", "output", out)
		return schema.Record{}, err
	}
	if env.SchemaVersion != "" {
		log.Debug("extraction payload", "schema_version", env.SchemaVersion)
	}

	return c.record(*env.FIR, statement), nil
}

// parseEnvelope tolerates the usual model sloppiness around the JSON
// (markdown fences, think blocks, stray prose) but rejects anything
// without the top-level "fir" key.
func parseEnvelope(out string) (*schema.Envelope, error) {
	if strings.Contains(out, "<think>") {
		if idx := strings.LastIndex(out, "</think>"); idx != -1 {
			out = out[idx+len("</think>"):]
		}
	}
	out = utils.CleanJSON(out)
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty output", ErrExtractionFailed)
	}
	if out[0] != '{' {
		if j := strings.Index(out, "{"); j != -1 {
			out = out[j:]
		} else {
			return nil, fmt.Errorf("%w: no JSON object in output", ErrExtractionFailed)
		}
	}
	if out[len(out)-1] != '}' {
		if j := strings.LastIndex(out, "}"); j != -1 {
			out = out[:j+1]
		} else {
			return nil, fmt.Errorf("%w: unterminated JSON object", ErrExtractionFailed)
		}
	}

	var env schema.Envelope
	if err := json.Unmarshal([]byte(out), &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	if env.FIR == nil {
		return nil, fmt.Errorf("%w: response missing fir payload", ErrExtractionFailed)
	}
	return &env, nil
}

// record maps the wire payload into the canonical Record shape,
// substituting generated identifiers and flattening the list fields.
func (c *Client) record(ext schema.Extraction, statement string) schema.Record {
	now := c.now()
	filingDate := cmp.Or(ext.FIRDate, now.Format("02/01/2006"))
	filingTime := cmp.Or(ext.InformationReceivedTime, now.Format("15:04"))

	act1, sections1 := actSlot(ext.ActsAndSections, 0)
	act2, sections2 := actSlot(ext.ActsAndSections, 1)
	act3, sections3 := actSlot(ext.ActsAndSections, 2)

	return schema.Record{
		FIRNumber:  cmp.Or(ext.FIRNumber, c.number(now)),
		FilingDate: filingDate,
		FilingTime: filingTime,

		District:      ext.District,
		PoliceStation: ext.PoliceStation,
		Year:          cmp.Or(ext.Year, strconv.Itoa(now.Year())),

		Act1:      act1,
		Sections1: sections1,
		Act2:      act2,
		Sections2: sections2,
		Act3:      act3,
		Sections3: sections3,

		OtherActsAndSections: overflowActs(ext.ActsAndSections, ext.OtherActsAndSections),

		OccurrenceDay:    ext.DayOfOccurrence,
		OccurrenceDate:   ext.DateOfOccurrence,
		OccurrenceTime:   ext.TimeOfOccurrence,
		InfoReceivedDate: cmp.Or(ext.InformationReceivedDate, filingDate),
		InfoReceivedTime: cmp.Or(ext.InformationReceivedTime, filingTime),
		GDEntryNumber:    ext.GeneralDiaryEntryNumber,
		GDEntryTime:      ext.GeneralDiaryEntryTime,

		InformationType: cmp.Or(ext.InformationType, "Oral"),

		DirectionAndDistanceFromPS: ext.DistanceAndDirectionFromPS,
		BeatNumber:                 ext.BeatNumber,
		PlaceOfOccurrence:          schema.Sanitize(ext.PlaceOfOccurrence),
		OutsidePSName:              ext.OutsidePSName,
		OutsideDistrict:            ext.OutsideDistrict,

		ComplainantName:     ext.ComplainantName,
		FatherOrHusbandName: ext.FatherOrHusbandName,
		DateOfBirth:         ext.ComplainantDOB,
		Nationality:         ext.Nationality,
		PassportNumber:      ext.PassportNumber,
		PassportIssueDate:   ext.PassportIssueDate,
		PassportIssuePlace:  ext.PassportIssuePlace,
		Occupation:          ext.Occupation,
		ComplainantAddress:  schema.Sanitize(ext.ComplainantAddress),
		ComplainantPhone:    ext.ComplainantPhone,

		AccusedDetails:        accusedLines(ext.AccusedList),
		DelayReason:           schema.Sanitize(ext.DelayInReportingReason),
		PropertiesStolen:      propertyLines(ext.PropertyDetails),
		TotalPropertyValue:    ext.TotalPropertyValue,
		InquestReportOrUDCase: ext.InquestReportOrUDCaseNumber,
		FIRContents:           schema.Sanitize(cmp.Or(ext.FIRContents, statement)),
	}
}

func actSlot(acts []schema.ActSection, i int) (string, string) {
	if i >= len(acts) {
		return "", ""
	}
	return acts[i].ActName, strings.Join(acts[i].Sections, ", ")
}

// overflowActs folds every act beyond the three fixed IF1 slots into the
// free-text item, in order, falling back to the model's own free text.
func overflowActs(acts []schema.ActSection, freeText string) string {
	if len(acts) <= 3 {
		return freeText
	}
	extra := make([]string, 0, len(acts)-3)
	for _, a := range acts[3:] {
		extra = append(extra, fmt.Sprintf("%s s.%s", a.ActName, strings.Join(a.Sections, ", ")))
	}
	joined := strings.Join(extra, "; ")
	if freeText != "" {
		joined += "; " + freeText
	}
	return joined
}

func accusedLines(accused []schema.Accused) string {
	lines := make([]string, 0, len(accused))
	for i, a := range accused {
		line := fmt.Sprintf("Accused %d: Name: %s | Status: %s",
			i+1, cmp.Or(a.Name, "Unknown"), cmp.Or(a.KnownStatus, "unknown"))
		if a.Description != "" {
			line += " | Description: " + a.Description
		}
		lines = append(lines, schema.Sanitize(line))
	}
	return strings.Join(lines, "\n")
}

func propertyLines(properties []schema.Property) string {
	lines := make([]string, 0, len(properties))
	for i, p := range properties {
		lines = append(lines, schema.Sanitize(fmt.Sprintf("Item %d: %s | Qty: %s | Value: %s",
			i+1, cmp.Or(p.Description, schema.Placeholder), cmp.Or(p.Quantity, "1"), p.Value)))
	}
	return strings.Join(lines, "\n")
}
