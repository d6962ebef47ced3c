package export

import (
	"fmt"
	"strings"

	"github.com/cnharrison/reqview/internal/har"
)

// Curl renders the request of an exchange as a curl command line
func Curl(entry har.Entry) string {
	var cmd strings.Builder
	cmd.WriteString(fmt.Sprintf("curl -X %s %s", entry.Request.Method, shellQuote(entry.Request.URL)))

	for _, header := range entry.Request.Headers {
		if strings.EqualFold(header.Name, "host") || strings.HasPrefix(header.Name, ":") {
			continue
		}
		cmd.WriteString(" -H " + shellQuote(header.Name+": "+header.Value))
	}

	if text, _ := entry.Request.Body(); text != "" {
		cmd.WriteString(" --data-raw " + shellQuote(text))
	}

	return cmd.String()
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
