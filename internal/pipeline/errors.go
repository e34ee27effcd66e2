package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel markers classifying ingestion failures. Every error leaving the
// pipeline wraps exactly one of these so callers can branch on error class
// without string matching.
var (
	ErrInput       = errors.New("input error")
	ErrLookup      = errors.New("lookup error")
	ErrDecode      = errors.New("decode error")
	ErrFilesystem  = errors.New("filesystem error")
	ErrParse       = errors.New("parse error")
	ErrPersistence = errors.New("persistence error")
	ErrNotFound    = errors.New("not found")
)

// Wrap builds an error message that carries the owning artist and operation
// context while tagging it with the provided marker. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, artist, operation, message string, err error) error {
	detail := buildDetail(artist, operation, message)
	if marker == nil {
		marker = ErrInput
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(artist, operation, message string) string {
	parts := make([]string, 0, 3)
	if artist = strings.TrimSpace(artist); artist != "" {
		parts = append(parts, artist)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
