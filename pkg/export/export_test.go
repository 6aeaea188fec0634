package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firdesk/pkg/schema"
)

func sampleRecord() schema.Record {
	return schema.Record{
		FIRNumber:          "FIR-2024-1234",
		FilingDate:         "15/03/2024",
		FilingTime:         "14:30",
		District:           "Bengaluru Urban",
		PoliceStation:      "MG Road PS",
		Year:               "2024",
		Act1:               "Bharatiya Nyaya Sanhita 2023",
		Sections1:          "303, 317",
		OccurrenceDay:      "Tuesday",
		OccurrenceDate:     "12/03/2024",
		OccurrenceTime:     "21:45",
		InformationType:    "Oral",
		PlaceOfOccurrence:  "MG Road metro station, exit B",
		ComplainantName:    "Ramesh Kumar",
		ComplainantAddress: "44, 3rd Cross, Indiranagar",
		AccusedDetails:     "Accused 1: Name: Unknown | Status: unknown | Description: tall man in a grey hoodie",
		PropertiesStolen:   "Item 1: OnePlus 11 mobile phone | Qty: 1 | Value: Rs. 45000",
		TotalPropertyValue: "Rs. 45000",
		FIRContents:        "Complainant reports theft of his mobile phone at MG Road metro station.",
	}
}

func TestTextExport(t *testing.T) {
	out := string(Text(sampleRecord()))

	assert.Contains(t, out, "FIRST INFORMATION REPORT")
	assert.Contains(t, out, "FIR No: FIR-2024-1234")
	assert.Contains(t, out, "Bharatiya Nyaya Sanhita 2023 — 303, 317")
	assert.Contains(t, out, "Name: Ramesh Kumar")
	assert.Contains(t, out, "15. Date & Time of Despatch to the Court:")
}

func TestTextExportZeroRecord(t *testing.T) {
	out := string(Text(schema.Record{}))

	assert.Contains(t, out, schema.Placeholder, "absent fields print the placeholder")
	assert.Contains(t, out, "FIR No: "+schema.Placeholder)
	assert.NotContains(t, out, "%!")
}

func TestTextExportDeterministic(t *testing.T) {
	r := sampleRecord()
	assert.True(t, bytes.Equal(Text(r), Text(r)))
}

func TestWordExport(t *testing.T) {
	out := string(Word(sampleRecord()))

	assert.Contains(t, out, `<meta charset="utf-8">`)
	assert.Contains(t, out, "FIR-2024-1234")
	assert.Contains(t, out, "Ramesh Kumar")
	assert.Contains(t, out, "FIRST INFORMATION REPORT")
}

func TestWordExportEscapesHTML(t *testing.T) {
	r := sampleRecord()
	r.ComplainantName = `<script>alert("x")</script>`
	out := string(Word(r))

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestWordExportDeterministic(t *testing.T) {
	r := sampleRecord()
	assert.True(t, bytes.Equal(Word(r), Word(r)))
}

func TestPDFExport(t *testing.T) {
	data, err := PDF(sampleRecord())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestPDFExportZeroRecord(t *testing.T) {
	data, err := PDF(schema.Record{})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestPDFExportDeterministic(t *testing.T) {
	r := sampleRecord()
	first, err := PDF(r)
	require.NoError(t, err)
	second, err := PDF(r)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(first, second), "same record must produce identical bytes")
}

func TestPDFLongNarrativeSpillsPages(t *testing.T) {
	r := sampleRecord()
	r.FIRContents = strings.Repeat("The complainant further stated that the incident unfolded over several hours and involved multiple locations across the city. ", 60)

	doc, err := pdfDocument(r)
	require.NoError(t, err)
	assert.Greater(t, doc.PageCount(), 1, "overflow extends pages, never truncates")
}

func TestWrapLinesRespectsWidth(t *testing.T) {
	measure := func(s string) float64 { return float64(len(s)) }
	text := "the quick brown fox jumps over the lazy dog near the riverbank at dusk"

	lines := wrapLines(measure, text, 20)
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.LessOrEqual(t, measure(line), 20.0, "line %q exceeds width", line)
	}
	assert.Equal(t, strings.Fields(text), strings.Fields(strings.Join(lines, " ")), "no word lost or reordered")
}

func TestWrapLinesOverlongWord(t *testing.T) {
	measure := func(s string) float64 { return float64(len(s)) }

	lines := wrapLines(measure, "short supercalifragilisticexpialidocious end", 10)
	assert.Contains(t, lines, "supercalifragilisticexpialidocious", "an unbreakable word gets its own line")
}

func TestWrapLinesParagraphs(t *testing.T) {
	measure := func(s string) float64 { return float64(len(s)) }

	lines := wrapLines(measure, "first para\n\nsecond para", 100)
	assert.Equal(t, []string{"first para", "", "second para"}, lines)

	assert.Nil(t, wrapLines(measure, "   \n  ", 100))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "FIR-2024-1234.pdf", Filename(schema.Record{FIRNumber: "FIR-2024-1234"}, "pdf"))
	assert.Equal(t, "FIR-2024-1234.txt", Filename(schema.Record{FIRNumber: "2024-1234"}, "txt"))
	assert.Equal(t, "FIR-report.doc", Filename(schema.Record{}, "doc"))
	assert.Equal(t, "FIR-a_b.pdf", Filename(schema.Record{FIRNumber: "a/b"}, "pdf"),
		"path separators are neutralized")
}
