package pagination

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 50
	// MaxLimit caps how many rows any page can request.
	MaxLimit = 200

	cursorPrefix = "after|"
)

// ErrCursorNotFound reports a well-formed cursor whose anchor row no longer matches.
var ErrCursorNotFound = errors.New("cursor does not match any row")

// Params holds cursor pagination inputs from controllers or services.
type Params struct {
	Limit  int
	Cursor string
}

// Cursor anchors the next page on the last id returned.
type Cursor struct {
	AfterID string
}

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// EncodeCursor builds an opaque cursor string.
func EncodeCursor(cursor Cursor) string {
	return base64.RawURLEncoding.EncodeToString([]byte(cursorPrefix + cursor.AfterID))
}

// ParseCursor decodes the cursor string back into its components. Blank input yields nil.
func ParseCursor(value string) (*Cursor, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("decode cursor: %w", err)
	}
	id, ok := strings.CutPrefix(string(decoded), cursorPrefix)
	if !ok || id == "" {
		return nil, fmt.Errorf("invalid cursor format")
	}
	return &Cursor{AfterID: id}, nil
}

// Slice returns the page of items following the cursor, in input order, plus the cursor for the
// page after it. The next cursor is empty on the last page.
func Slice[T any](items []T, params Params, idOf func(T) string) ([]T, string, error) {
	cursor, err := ParseCursor(params.Cursor)
	if err != nil {
		return nil, "", err
	}

	start := 0
	if cursor != nil {
		start = -1
		for i, item := range items {
			if idOf(item) == cursor.AfterID {
				start = i + 1
				break
			}
		}
		if start < 0 {
			return nil, "", ErrCursorNotFound
		}
	}

	end := start + NormalizeLimit(params.Limit)
	if end >= len(items) {
		return items[start:], "", nil
	}
	page := items[start:end]
	return page, EncodeCursor(Cursor{AfterID: idOf(page[len(page)-1])}), nil
}
