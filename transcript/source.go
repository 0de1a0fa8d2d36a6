package transcript

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Source fetches the plain-text transcript of a video.
type Source interface {
	Fetch(ctx context.Context, videoURL string) (string, error)
}

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/shorts/)([^?&/#]+)`),
	regexp.MustCompile(`^([A-Za-z0-9_-]{11})$`),
}

// VideoID extracts the YouTube video id from a URL or a bare id.
func VideoID(url string) (string, error) {
	url = strings.TrimSpace(url)

	for _, pattern := range videoIDPatterns {
		if matches := pattern.FindStringSubmatch(url); len(matches) > 1 {
			return matches[1], nil
		}
	}

	return "", fmt.Errorf("invalid YouTube URL or video ID: %s", url)
}
