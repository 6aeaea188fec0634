package export

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"firdesk/pkg/schema"
)

// ErrRenderFailed marks a document that could not be composed. Failures
// are per format; the other exporters stay usable.
var ErrRenderFailed = errors.New("render failed")

// Free-flow layout: pages are composed from scratch with a running
// vertical cursor. Long narrative blocks wrap against Helvetica metrics
// and spill onto further pages; nothing is truncated.

const (
	pdfMargin   = 50.0
	headingSize = 10.0
	bodySize    = 9.0
	bodyLead    = 12.5
	indent      = 18.0
)

// PDF renders the record as a paginated IF1 form. Output is
// byte-identical across calls for the same record.
func PDF(r schema.Record) ([]byte, error) {
	doc, err := pdfDocument(r)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: pdf output: %v", ErrRenderFailed, err)
	}
	return buf.Bytes(), nil
}

func pdfDocument(r schema.Record) (*fpdf.Fpdf, error) {
	doc := fpdf.New("P", "pt", "A4", "")
	// Pinned metadata keeps repeated exports byte-identical.
	doc.SetCreationDate(time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC))
	doc.SetTitle("First Information Report", true)
	doc.SetAutoPageBreak(false, 0)
	doc.SetTextColor(0, 0, 0)

	w := &pdfWriter{
		doc: doc,
		tr:  doc.UnicodeTranslatorFromDescriptor(""),
		v:   func(s string) string { return schema.Or(schema.Sanitize(s)) },
	}
	w.pageW, w.pageH = doc.GetPageSize()
	w.contentW = w.pageW - 2*pdfMargin
	doc.AddPage()
	w.y = pdfMargin

	w.title()
	w.item1(r)
	w.item2(r)
	w.item3(r)
	w.item4(r)
	w.item5(r)
	w.item6(r)
	w.item7to12(r)
	w.closing()

	if err := doc.Error(); err != nil {
		return nil, fmt.Errorf("%w: pdf compose: %v", ErrRenderFailed, err)
	}
	return doc, nil
}

type pdfWriter struct {
	doc *fpdf.Fpdf
	tr  func(string) string
	v   func(string) string

	y                      float64
	pageW, pageH, contentW float64
}

func (w *pdfWriter) measure() Measure {
	return func(s string) float64 { return w.doc.GetStringWidth(w.tr(s)) }
}

func (w *pdfWriter) ensureSpace(needed float64) {
	if w.y+needed > w.pageH-pdfMargin {
		w.doc.AddPage()
		w.y = pdfMargin
	}
}

// text draws one line with its baseline below the cursor and advances.
func (w *pdfWriter) text(x float64, s string, size, advance float64) {
	w.doc.Text(x, w.y+size, w.tr(s))
	w.y += advance
}

func (w *pdfWriter) heading(s string) {
	w.ensureSpace(headingSize + 5)
	w.doc.SetFont("Helvetica", "B", headingSize)
	w.text(pdfMargin, s, headingSize, headingSize+5)
}

// block wraps text to the content width at the item indent.
func (w *pdfWriter) block(s string) {
	w.doc.SetFont("Helvetica", "", bodySize)
	lines := wrapLines(w.measure(), w.v(s), w.contentW-indent)
	for _, line := range lines {
		w.ensureSpace(bodyLead + 3)
		w.text(pdfMargin+indent, line, bodySize, bodyLead)
	}
}

// field draws a bold label with the wrapped value beside it.
func (w *pdfWriter) field(label, value string, labelWidth float64) {
	w.ensureSpace(20)
	w.doc.SetFont("Helvetica", "B", bodySize)
	w.doc.Text(pdfMargin+indent, w.y+bodySize, w.tr(label))
	w.doc.SetFont("Helvetica", "", bodySize)

	valX := pdfMargin + indent + labelWidth
	lines := wrapLines(w.measure(), w.v(value), w.contentW-indent-labelWidth)
	if len(lines) == 0 {
		lines = []string{schema.Placeholder}
	}
	for _, line := range lines {
		w.ensureSpace(bodySize + 4)
		w.text(valX, line, bodySize, bodySize+4)
	}
	w.y += 2
}

func (w *pdfWriter) rule() {
	w.y += 6
	w.ensureSpace(14)
	w.doc.SetDrawColor(102, 102, 102)
	w.doc.SetLineWidth(0.5)
	w.doc.Line(pdfMargin, w.y, pdfMargin+w.contentW, w.y)
	w.y += 14
}

func (w *pdfWriter) centered(s string, style string, size float64) {
	w.doc.SetFont("Helvetica", style, size)
	tw := w.doc.GetStringWidth(w.tr(s))
	w.text((w.pageW-tw)/2, s, size, size+6)
}

func (w *pdfWriter) title() {
	w.centered("FORM — IF1 (Integrated Form)", "", 8)
	w.centered("FIRST INFORMATION REPORT", "B", 14)
	w.centered("(Under Section 154 Cr.P.C)", "", 9)
	w.rule()
}

func (w *pdfWriter) item1(r schema.Record) {
	w.heading("1.")
	w.block(fmt.Sprintf("Dist: %s   P.S.: %s   Year: %s   F.I.R. No.: %s   Date: %s",
		w.v(r.District), w.v(r.PoliceStation), w.v(r.Year), w.v(r.FIRNumber), w.v(r.FilingDate)))
	w.rule()
}

func (w *pdfWriter) item2(r schema.Record) {
	w.heading("2. Acts & Sections:")
	w.block(fmt.Sprintf("(i)  Act: %s  —  Sections: %s", w.v(r.Act1), w.v(r.Sections1)))
	w.block(fmt.Sprintf("(ii)  Act: %s  —  Sections: %s", w.v(r.Act2), w.v(r.Sections2)))
	w.block(fmt.Sprintf("(iii)  Act: %s  —  Sections: %s", w.v(r.Act3), w.v(r.Sections3)))
	w.block(fmt.Sprintf("(iv) Other Acts: %s", w.v(r.OtherActsAndSections)))
	w.rule()
}

func (w *pdfWriter) item3(r schema.Record) {
	w.ensureSpace(80)
	w.heading("3. Occurrence of Offence:")
	w.block(fmt.Sprintf("(a) Day: %s   Date: %s   Time: %s",
		w.v(r.OccurrenceDay), w.v(r.OccurrenceDate), w.v(r.OccurrenceTime)))
	w.block(fmt.Sprintf("(b) Info received at P.S.: Date: %s   Time: %s",
		w.v(r.InfoReceivedDate), w.v(r.InfoReceivedTime)))
	w.block(fmt.Sprintf("(c) G.D. Entry No.: %s   Time: %s", w.v(r.GDEntryNumber), w.v(r.GDEntryTime)))
	w.rule()
}

func (w *pdfWriter) item4(r schema.Record) {
	w.heading("4. Type of Information:")
	w.block(w.v(r.InformationType))
	w.rule()
}

func (w *pdfWriter) item5(r schema.Record) {
	w.ensureSpace(70)
	w.heading("5. Place of Occurrence:")
	w.block(fmt.Sprintf("(a) Direction & Distance from P.S.: %s   Beat No.: %s",
		w.v(r.DirectionAndDistanceFromPS), w.v(r.BeatNumber)))
	w.block(fmt.Sprintf("(b) Address: %s", w.v(r.PlaceOfOccurrence)))
	w.block(fmt.Sprintf("(c) Outside limits of this P.S.: Station: %s   District: %s",
		w.v(r.OutsidePSName), w.v(r.OutsideDistrict)))
	w.rule()
}

func (w *pdfWriter) item6(r schema.Record) {
	w.ensureSpace(120)
	w.heading("6. Complainant / Informant:")
	fields := []struct {
		label string
		value string
	}{
		{"(a) Name:", r.ComplainantName},
		{"(b) Father's/Husband's Name:", r.FatherOrHusbandName},
		{"(c) Date/Year of Birth:", r.DateOfBirth},
		{"(d) Nationality:", r.Nationality},
		{"(e) Passport No.:", r.PassportNumber},
		{"    Date of Issue:", r.PassportIssueDate},
		{"    Place of Issue:", r.PassportIssuePlace},
		{"(f) Occupation:", r.Occupation},
		{"(g) Address:", r.ComplainantAddress},
		{"(h) Phone:", r.ComplainantPhone},
	}
	for _, f := range fields {
		w.field(f.label, f.value, 170)
	}
	w.rule()
}

func (w *pdfWriter) item7to12(r schema.Record) {
	w.ensureSpace(60)
	w.heading("7. Details of Known/Suspected/Unknown Accused:")
	w.block(w.v(r.AccusedDetails))
	w.rule()

	w.ensureSpace(40)
	w.heading("8. Reasons for Delay in Reporting:")
	w.block(w.v(r.DelayReason))
	w.rule()

	w.ensureSpace(60)
	w.heading("9. Particulars of Properties Stolen/Involved:")
	w.block(w.v(r.PropertiesStolen))
	w.y += 4
	w.field("10. Total Value:", r.TotalPropertyValue, 120)
	w.rule()

	w.field("11. Inquest Report / U.D. Case No.:", r.InquestReportOrUDCase, 220)
	w.rule()

	w.ensureSpace(60)
	w.heading("12. F.I.R. Contents:")
	w.block(w.v(r.FIRContents))
	w.rule()
}

const actionTaken = "Since the above report reveals commission of offence(s) u/s as mentioned at Item No. 2, registered the case and took up the investigation. F.I.R. read over to the complainant / informant, admitted to be correctly recorded and copy given to the complainant / informant free of cost."

func (w *pdfWriter) closing() {
	w.ensureSpace(100)
	w.heading("13. Action Taken:")
	w.doc.SetFont("Helvetica", "", 8)
	for _, line := range wrapLines(w.measure(), actionTaken, w.contentW-indent) {
		w.ensureSpace(12)
		w.text(pdfMargin+indent, line, 8, 11.5)
	}
	w.y += 16

	w.ensureSpace(80)
	w.doc.SetFont("Helvetica", "B", 8)
	w.doc.Text(pdfMargin, w.y+8, w.tr("Signature of Officer-in-Charge"))
	w.doc.Text(w.pageW/2+10, w.y+8, w.tr("14. Signature / Thumb-impression of Complainant"))
	w.y += 18
	w.doc.SetDrawColor(102, 102, 102)
	w.doc.SetLineWidth(0.5)
	w.doc.Line(pdfMargin, w.y, pdfMargin+w.contentW/2-20, w.y)
	w.doc.Line(w.pageW/2+10, w.y, w.pageW/2+10+w.contentW/2-10, w.y)
	w.y += 14

	w.doc.SetFont("Helvetica", "", 8)
	w.text(pdfMargin, "Name: ___________________________", 8, 12)
	w.text(pdfMargin, "Rank: _______________ No. __________", 8, 18)

	w.ensureSpace(20)
	w.text(pdfMargin, "15. Date & Time of Despatch to the Court: ____________________________", 8, 12)
}
