package cmd

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"mvdan.cc/xurls/v2"

	"github.com/abhisek/qtigen/internal/qti"
)

// acceptedTypes are the file types offered for upload.
var acceptedTypes = map[string]bool{
	"application/pdf": true,
	"image/png":       true,
	"image/jpeg":      true,
	"image/webp":      true,
}

var extTypes = map[string]string{
	".pdf":  "application/pdf",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
}

var errNoText = errors.New("no text given: pass it as arguments, with --input, or on stdin")

// readTextInput returns the text to convert. --input wins over arguments,
// arguments over stdin. stdin is nil when it is a terminal.
func readTextInput(args []string, inputPath string, stdin io.Reader) (string, error) {
	switch {
	case inputPath == "-":
		return readAll(stdin)
	case inputPath != "":
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	case len(args) > 0:
		return strings.Join(args, " "), nil
	}
	return readAll(stdin)
}

func readAll(r io.Reader) (string, error) {
	if r == nil {
		return "", errNoText
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// stdinIfPiped returns os.Stdin unless it is an interactive terminal.
func stdinIfPiped() io.Reader {
	fi, err := os.Stdin.Stat()
	if err != nil || fi.Mode()&os.ModeCharDevice != 0 {
		return nil
	}
	return os.Stdin
}

// checkLink requires arg to contain a URL and returns it trimmed. The URL
// itself is passed on unchanged.
func checkLink(arg string) (string, error) {
	link := strings.TrimSpace(arg)
	if link == "" {
		return "", errors.New("a URL is required")
	}
	if xurls.Strict().FindString(link) == "" {
		return "", fmt.Errorf("%q does not look like a URL", arg)
	}
	return link, nil
}

// loadAttachment reads path into a base64 Attachment, rejecting types that
// are not offered for upload.
func loadAttachment(path string) (*qti.Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}

	mimeType := detectMIME(path, data)
	if !acceptedTypes[mimeType] {
		return nil, fmt.Errorf("unsupported file type %q: accepted types are PDF, PNG, JPEG, and WebP", mimeType)
	}

	return &qti.Attachment{
		Name:     filepath.Base(path),
		MIMEType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(data),
	}, nil
}

// detectMIME uses the file extension, falling back to content sniffing.
func detectMIME(path string, data []byte) string {
	if t, ok := extTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return t
	}
	t, _, err := mime.ParseMediaType(http.DetectContentType(data))
	if err != nil {
		return "application/octet-stream"
	}
	return t
}
