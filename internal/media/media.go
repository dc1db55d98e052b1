// Package media loads the recording the user points the app at and
// validates that it is something the model can listen to.
package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ErrUnsupportedType rejects files that are not audio or video.
var ErrUnsupportedType = fmt.Errorf("only audio and video files are supported")

// Media is one uploaded recording, held in memory for the session.
type Media struct {
	Name      string
	Path      string
	MIMEType  string
	SizeBytes int64
	Data      []byte
}

// Load reads the file, sniffs its MIME type from content (extension
// as fallback), and rejects anything that is not audio or video
// before any state changes downstream.
func Load(path string) (*Media, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read file: %w", err)
	}

	mime := mimetype.Detect(data).String()
	if !supported(mime) {
		if ext := extMIME(path); supported(ext) {
			mime = ext
		} else {
			return nil, fmt.Errorf("%w (detected %s)", ErrUnsupportedType, mime)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	return &Media{
		Name:      filepath.Base(path),
		Path:      path,
		MIMEType:  mime,
		SizeBytes: info.Size(),
		Data:      data,
	}, nil
}

func supported(mime string) bool {
	return strings.HasPrefix(mime, "audio/") || strings.HasPrefix(mime, "video/")
}

// extMIME maps common recording extensions for files whose content
// sniffing comes back generic.
func extMIME(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return "audio/mpeg"
	case ".wav":
		return "audio/wav"
	case ".m4a":
		return "audio/mp4"
	case ".ogg":
		return "audio/ogg"
	case ".flac":
		return "audio/flac"
	case ".mp4":
		return "video/mp4"
	case ".mov":
		return "video/quicktime"
	case ".webm":
		return "video/webm"
	case ".mkv":
		return "video/x-matroska"
	default:
		return ""
	}
}

// SizeHuman returns a human-readable file size.
func (m *Media) SizeHuman() string {
	bytes := m.SizeBytes
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	}
	if bytes < 1024*1024 {
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	}
	return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
}
