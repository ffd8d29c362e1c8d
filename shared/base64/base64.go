package base64

import "strings"

const dataPrefix = "data:"

// GetContentType extracts the mime type from a data URL.
func GetContentType(file string) string {
	start := len(dataPrefix)
	end := strings.Index(file, ";base64,")

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}
