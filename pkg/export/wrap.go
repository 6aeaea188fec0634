package export

import (
	"strings"

	"firdesk/pkg/schema"
	"firdesk/pkg/utils"
)

// Measure returns the rendered width of a candidate line in the target
// font at the chosen size. Wrapping decisions are made against real
// font metrics, never a fixed character count.
type Measure func(string) float64

// wrapLines performs the word-wise greedy break: words accumulate while
// the candidate line fits maxWidth; the word that would overflow starts
// the next line. Explicit newlines begin new paragraphs; blank lines
// survive as empty entries. Control characters are stripped first so
// they cannot skew the measurement.
func wrapLines(measure Measure, text string, maxWidth float64) []string {
	text = schema.Sanitize(text)
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			lines = append(lines, "")
			continue
		}
		cur := ""
		for _, word := range strings.Fields(para) {
			test := word
			if cur != "" {
				test = cur + " " + word
			}
			if measure(test) > maxWidth && cur != "" {
				lines = append(lines, cur)
				cur = word
			} else {
				cur = test
			}
		}
		if cur != "" {
			lines = append(lines, cur)
		}
	}
	return lines
}

// Filename builds the download name FIR-<number-or-"report">.<ext>.
func Filename(r schema.Record, ext string) string {
	number := strings.TrimPrefix(strings.TrimSpace(r.FIRNumber), "FIR-")
	if number == "" {
		number = "report"
	}
	return utils.SanitizeFilename("FIR-" + number + "." + ext)
}
