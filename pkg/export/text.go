package export

import (
	"fmt"
	"strings"

	"firdesk/pkg/schema"
)

// Text renders the record as a UTF-8 plain-text IF1 form, items 1
// through 15 in the legal ordering. Absent fields print the placeholder;
// nothing is omitted.
func Text(r schema.Record) []byte {
	v := func(s string) string { return schema.Or(schema.Sanitize(s)) }
	divider := strings.Repeat("─", 65)

	lines := []string{
		"FORM IF1 | FIRST INFORMATION REPORT | (Under Section 154 Cr.P.C)",
		divider,
		fmt.Sprintf("FIR No: %s  Date: %s  Time: %s", v(r.FIRNumber), v(r.FilingDate), v(r.FilingTime)),
		fmt.Sprintf("Dist: %s  P.S.: %s  Year: %s", v(r.District), v(r.PoliceStation), v(r.Year)),
		divider,
		"2. Acts:",
		fmt.Sprintf(" (i)  %s — %s", v(r.Act1), v(r.Sections1)),
		fmt.Sprintf(" (ii) %s — %s", v(r.Act2), v(r.Sections2)),
		fmt.Sprintf(" (iii)%s — %s", v(r.Act3), v(r.Sections3)),
		fmt.Sprintf(" (iv) %s", v(r.OtherActsAndSections)),
		divider,
		fmt.Sprintf("3. Occurrence: %s %s %s", v(r.OccurrenceDay), v(r.OccurrenceDate), v(r.OccurrenceTime)),
		fmt.Sprintf("   Info received: %s %s", v(r.InfoReceivedDate), v(r.InfoReceivedTime)),
		fmt.Sprintf("   G.D. Entry: %s  Time: %s", v(r.GDEntryNumber), v(r.GDEntryTime)),
		fmt.Sprintf("4. Type: %s", v(r.InformationType)),
		divider,
		fmt.Sprintf("5. Place: %s  (%s)", v(r.PlaceOfOccurrence), v(r.DirectionAndDistanceFromPS)),
		fmt.Sprintf("   Beat No.: %s", v(r.BeatNumber)),
		fmt.Sprintf("   Outside limits: P.S.: %s  Dist: %s", v(r.OutsidePSName), v(r.OutsideDistrict)),
		divider,
		"6. Complainant:",
		fmt.Sprintf("   Name: %s", v(r.ComplainantName)),
		fmt.Sprintf("   Father/Husband: %s", v(r.FatherOrHusbandName)),
		fmt.Sprintf("   DOB: %s  Nationality: %s", v(r.DateOfBirth), v(r.Nationality)),
		fmt.Sprintf("   Passport: %s  Issued: %s at %s", v(r.PassportNumber), v(r.PassportIssueDate), v(r.PassportIssuePlace)),
		fmt.Sprintf("   Occupation: %s", v(r.Occupation)),
		fmt.Sprintf("   Address: %s", v(r.ComplainantAddress)),
		fmt.Sprintf("   Phone: %s", v(r.ComplainantPhone)),
		divider,
		fmt.Sprintf("7. Accused:\n%s", v(r.AccusedDetails)),
		fmt.Sprintf("8. Delay: %s", v(r.DelayReason)),
		fmt.Sprintf("9. Properties:\n%s", v(r.PropertiesStolen)),
		fmt.Sprintf("10. Total Value: %s", v(r.TotalPropertyValue)),
		fmt.Sprintf("11. Inquest/UD: %s", v(r.InquestReportOrUDCase)),
		divider,
		fmt.Sprintf("12. FIR Contents:\n%s", v(r.FIRContents)),
		divider,
		"13. Action Taken: Registered the case and took up the investigation.",
		"    Signature of Officer-in-Charge: ____________________",
		"    Name: ____________________  Rank: ________  No.: ________",
		"14. Signature / Thumb-impression of Complainant: ____________________",
		"15. Date & Time of Despatch to the Court: ____________________",
	}

	return []byte(strings.Join(lines, "\n"))
}
