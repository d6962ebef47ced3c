package details

import "github.com/cnharrison/reqview/internal/har"

// FromHAR adapts a captured exchange. The response is nil when none was received.
func FromHAR(entry har.Entry) (Request, *Response) {
	data, mimeType := entry.Request.Body()
	req := Request{
		Method:   entry.Request.Method,
		URL:      entry.Request.URL,
		Headers:  headersFromHAR(entry.Request.Headers),
		Data:     data,
		MimeType: mimeType,
	}
	if !entry.HasResponse() {
		return req, nil
	}

	data, mimeType = entry.Response.Body()
	return req, &Response{
		Status:     entry.Response.Status,
		StatusText: entry.Response.StatusText,
		Headers:    headersFromHAR(entry.Response.Headers),
		Data:       data,
		MimeType:   mimeType,
	}
}

func headersFromHAR(headers []har.Header) []Header {
	if len(headers) == 0 {
		return nil
	}
	out := make([]Header, len(headers))
	for i, h := range headers {
		out[i] = Header{Key: h.Name, Value: h.Value}
	}
	return out
}
