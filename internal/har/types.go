package har

// Header is a single name/value pair as recorded in a capture
type Header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PostData is the request payload
type PostData struct {
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
}

// Request is the captured outgoing request
type Request struct {
	Method      string    `json:"method"`
	URL         string    `json:"url"`
	HTTPVersion string    `json:"httpVersion"`
	Headers     []Header  `json:"headers"`
	PostData    *PostData `json:"postData,omitempty"`
}

// Body returns the request payload text and its MIME type
func (r Request) Body() (text, mimeType string) {
	if r.PostData == nil {
		return "", ""
	}
	return r.PostData.Text, r.PostData.MimeType
}

// Content is the response payload, possibly base64 encoded
type Content struct {
	Size     int    `json:"size"`
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
	Encoding string `json:"encoding,omitempty"`
}

// Response is the captured response. A zero Status means none was received.
type Response struct {
	Status      int      `json:"status"`
	StatusText  string   `json:"statusText"`
	HTTPVersion string   `json:"httpVersion"`
	Headers     []Header `json:"headers"`
	Content     Content  `json:"content"`
}

// Body returns the decoded response payload text and its MIME type
func (r Response) Body() (text, mimeType string) {
	return DecodeBase64(r.Content.Text, r.Content.Encoding), r.Content.MimeType
}

// Entry is one request/response exchange
type Entry struct {
	StartedDateTime string   `json:"startedDateTime"`
	Time            float64  `json:"time"`
	Request         Request  `json:"request"`
	Response        Response `json:"response"`
}

// HasResponse reports whether the exchange completed with a response
func (e Entry) HasResponse() bool {
	return e.Response.Status != 0
}

// IsError reports whether the exchange failed or returned a 4xx/5xx status
func (e Entry) IsError() bool {
	return e.Response.Status == 0 || e.Response.Status >= 400
}

// Log is the log object of a capture
type Log struct {
	Version string  `json:"version"`
	Entries []Entry `json:"entries"`
}

// File is the root document of a capture
type File struct {
	Log Log `json:"log"`
}
