package export

import (
	"fmt"
	"strings"

	"github.com/cnharrison/reqview/internal/details"
	"github.com/cnharrison/reqview/internal/har"
)

// redactedHeaders have their values shortened in reports
var redactedHeaders = []string{"authorization", "cookie", "set-cookie", "x-api-key"}

// Markdown renders the details panels of an exchange as a markdown report
func Markdown(entry har.Entry, indent int) string {
	req, resp := details.FromHAR(entry)

	var report strings.Builder
	report.WriteString(fmt.Sprintf("# %s %s\n\n", req.Method, req.URL))

	if started := entry.Started(); !started.IsZero() {
		report.WriteString(fmt.Sprintf("- **Started:** %s\n", started.UTC().Format("2006-01-02 15:04:05 MST")))
	}
	if resp != nil {
		report.WriteString(fmt.Sprintf("- **Status:** %d %s\n", resp.Status, resp.StatusText))
	} else {
		report.WriteString("- **Status:** no response\n")
	}
	report.WriteString(fmt.Sprintf("- **Time:** %.0fms\n", entry.Time))

	for _, panel := range details.Build(req, resp, indent) {
		report.WriteString(fmt.Sprintf("\n## %s\n\n", panel.Heading))
		switch panel.Kind {
		case details.HeadersPanel:
			writeHeaderTable(&report, panel.Rows)
		case details.BodyPanel:
			writeBody(&report, panel.Body)
		}
	}

	return report.String()
}

func writeHeaderTable(report *strings.Builder, rows []details.Row) {
	report.WriteString("| Key | Value |\n")
	report.WriteString("| --- | --- |\n")
	for _, row := range rows {
		report.WriteString(fmt.Sprintf("| %s | %s |\n", escapeCell(row.Key), escapeCell(redact(row.Key, row.Value))))
	}
}

func writeBody(report *strings.Builder, body *details.Body) {
	if !body.Valid() {
		report.WriteString(fmt.Sprintf("_%s_\n", details.InvalidJSONMessage))
		return
	}
	report.WriteString(fmt.Sprintf("```%s\n%s\n```\n", body.Kind, body.Pretty))
}

func redact(name, value string) string {
	lower := strings.ToLower(name)
	for _, sensitive := range redactedHeaders {
		if runes := []rune(value); lower == sensitive && len(runes) > 14 {
			return string(runes[:10]) + "..." + string(runes[len(runes)-4:]) + " (redacted)"
		}
	}
	return value
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
