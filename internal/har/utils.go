package har

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
)

// LoadFile reads and decodes a capture from disk
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read capture: %w", err)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode capture %s: %w", path, err)
	}

	return &file, nil
}

// DecodeBase64 decodes base64 content if encoded. Undecodable text is returned as-is.
func DecodeBase64(text, encoding string) string {
	if encoding == "base64" && text != "" {
		if decoded, err := base64.StdEncoding.DecodeString(text); err == nil {
			return string(decoded)
		}
	}
	return text
}

// HostPath splits a request URL into host and path for list display
func HostPath(rawURL string) (host, path string) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", rawURL
	}
	path = u.Path
	if path == "" {
		path = "/"
	}
	return u.Host, path
}
