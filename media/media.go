// Package media describes what is played and how the playback engine is configured.
//
// Both values are supplied once by the host and are immutable for the lifetime
// of an attachment: changing them means detaching and attaching again.
package media

import (
	"fmt"
	"net/url"
	"strings"
)

// Source describes the media resource and how it is presented.
type Source struct {
	Src    string `json:"src" jsonschema:"description=Media URL or local path"`
	Poster string `json:"poster,omitempty"`
	Width  string `json:"width" jsonschema:"default=100%"`
	Height string `json:"height" jsonschema:"default=auto"`
	Alt    string `json:"alt,omitempty" jsonschema:"description=Title shown instead of the source"`
}

// DefaultSource returns a Source for src with the default dimensions.
func DefaultSource(src string) Source {
	return Source{
		Src:    src,
		Width:  "100%",
		Height: "auto",
	}
}

// Title is the human readable name of the source.
func (s Source) Title() string {
	if s.Alt != "" {
		return s.Alt
	}
	return s.Src
}

// Validate checks that the source can be handed to the engine without being
// mistaken for an option.
func (s Source) Validate() error {
	src := strings.TrimSpace(s.Src)
	if src == "" {
		return fmt.Errorf("empty source")
	}

	if strings.ContainsAny(src, "\x00\n\r") {
		return fmt.Errorf("invalid control characters in source")
	}

	if strings.HasPrefix(src, "-") {
		return fmt.Errorf("source must not start with '-' (looks like a flag)")
	}

	if strings.Contains(src, "://") {
		u, err := url.Parse(src)
		if err != nil {
			return fmt.Errorf("invalid source URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https", "file":
		default:
			return fmt.Errorf("unsupported source scheme: %s", u.Scheme)
		}
	}

	if _, err := parseDimension(s.Width); err != nil {
		return fmt.Errorf("width: %w", err)
	}
	if _, err := parseDimension(s.Height); err != nil {
		return fmt.Errorf("height: %w", err)
	}

	return nil
}
