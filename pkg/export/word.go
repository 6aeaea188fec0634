package export

import (
	"bytes"
	"html"
	"text/template"

	"firdesk/pkg/schema"
)

// Word renders the record as an HTML payload that word processors open
// natively when served with the msword MIME type. Section ordering and
// labels match the plain-text export, plus the two signature blocks.
func Word(r schema.Record) []byte {
	v := func(s string) string { return html.EscapeString(schema.Or(schema.Sanitize(s))) }

	data := map[string]string{
		"FIRNumber":  v(r.FIRNumber),
		"FilingDate": v(r.FilingDate),
		"FilingTime": v(r.FilingTime),
		"District":   v(r.District),
		"PS":         v(r.PoliceStation),
		"Year":       v(r.Year),

		"Act1": v(r.Act1), "Sections1": v(r.Sections1),
		"Act2": v(r.Act2), "Sections2": v(r.Sections2),
		"Act3": v(r.Act3), "Sections3": v(r.Sections3),
		"OtherActs": v(r.OtherActsAndSections),

		"OccurrenceDay":  v(r.OccurrenceDay),
		"OccurrenceDate": v(r.OccurrenceDate),
		"OccurrenceTime": v(r.OccurrenceTime),
		"InfoDate":       v(r.InfoReceivedDate),
		"InfoTime":       v(r.InfoReceivedTime),
		"GDEntry":        v(r.GDEntryNumber),
		"GDTime":         v(r.GDEntryTime),
		"InfoType":       v(r.InformationType),

		"Place":     v(r.PlaceOfOccurrence),
		"Direction": v(r.DirectionAndDistanceFromPS),
		"Beat":      v(r.BeatNumber),
		"OutsidePS": v(r.OutsidePSName),
		"OutsideDt": v(r.OutsideDistrict),

		"Name":          v(r.ComplainantName),
		"FatherHusband": v(r.FatherOrHusbandName),
		"DOB":           v(r.DateOfBirth),
		"Nationality":   v(r.Nationality),
		"Passport":      v(r.PassportNumber),
		"PassportDate":  v(r.PassportIssueDate),
		"PassportPlace": v(r.PassportIssuePlace),
		"Occupation":    v(r.Occupation),
		"Address":       v(r.ComplainantAddress),
		"Phone":         v(r.ComplainantPhone),

		"Accused":    v(r.AccusedDetails),
		"Delay":      v(r.DelayReason),
		"Properties": v(r.PropertiesStolen),
		"TotalValue": v(r.TotalPropertyValue),
		"Inquest":    v(r.InquestReportOrUDCase),
		"Contents":   v(r.FIRContents),
	}

	var buf bytes.Buffer
	if err := wordTemplate.Execute(&buf, data); err != nil {
		// Fixed template over a string map: execution cannot fail at
		// runtime, but never hand back a half-written document.
		return nil
	}
	return buf.Bytes()
}

var wordTemplate = template.Must(template.New("if1").Parse(`<html><head><meta charset="utf-8"><style>
body{font-family:Arial,sans-serif;font-size:10pt;margin:2cm}
h1{text-align:center;font-size:13pt}h2{text-align:center;font-size:10pt;font-weight:normal}
hr{border-top:1px solid #000}.val{border-bottom:1px solid #888;display:inline-block;min-width:80px}
.block{border:1px solid #ccc;padding:5px;margin-top:3px;white-space:pre-line}.row{margin:5px 0}
.sigs{display:flex;justify-content:space-between;margin-top:18px}.sig{width:45%}
.sigline{border-bottom:1px solid #000;height:36px;margin:5px 0}
</style></head><body>
<p style="text-align:center;font-size:8pt">FORM – IF1 (Integrated Form)</p>
<h1>FIRST INFORMATION REPORT</h1><h2>(Under Section 154 Cr.P.C)</h2><hr>
<div class="row">1. Dist: <span class="val">{{.District}}</span> &nbsp;P.S.: <span class="val">{{.PS}}</span> &nbsp;Year: <span class="val">{{.Year}}</span> &nbsp;F.I.R. No.: <b><span class="val">{{.FIRNumber}}</span></b> &nbsp;Date: <span class="val">{{.FilingDate}}</span></div>
<div class="row">2. (i) {{.Act1}} — {{.Sections1}}<br>(ii) {{.Act2}} — {{.Sections2}}<br>(iii) {{.Act3}} — {{.Sections3}}<br>(iv) {{.OtherActs}}</div>
<div class="row">3. Occurrence: {{.OccurrenceDay}} {{.OccurrenceDate}} {{.OccurrenceTime}}<br>Info received: {{.InfoDate}} {{.InfoTime}}<br>G.D.: {{.GDEntry}} / {{.GDTime}}</div>
<div class="row">4. Type: {{.InfoType}}</div>
<div class="row">5. Place: {{.Place}} ({{.Direction}})<br>Beat No.: {{.Beat}}<br>Outside limits: P.S. {{.OutsidePS}}, Dist. {{.OutsideDt}}</div>
<div class="row">6. Name: {{.Name}}<br>Father/Husband: {{.FatherHusband}}<br>DOB: {{.DOB}} Nationality: {{.Nationality}}<br>Passport: {{.Passport}} Issued: {{.PassportDate}} at {{.PassportPlace}}<br>Occupation: {{.Occupation}}<br>Address: {{.Address}}<br>Phone: {{.Phone}}</div>
<div class="row">7. Accused:<div class="block">{{.Accused}}</div></div>
<div class="row">8. Delay: {{.Delay}}</div>
<div class="row">9. Properties:<div class="block">{{.Properties}}</div>10. Total Value: {{.TotalValue}}</div>
<div class="row">11. Inquest/UD: {{.Inquest}}</div>
<div class="row">12. FIR Contents:<div class="block" style="min-height:80px">{{.Contents}}</div></div><hr>
<div class="row">13. Action Taken: Registered and investigation taken up.
<div class="sigs"><div class="sig"><b>Signature of Officer-in-Charge</b><div class="sigline"></div><p>Name: _______________</p><p>Rank: _______ No. _______</p></div>
<div class="sig"><b>14. Signature / Thumb-impression of Complainant</b><div class="sigline"></div></div></div>
<p>15. Date &amp; time of despatch to court: _______________</p></div>
</body></html>`))
