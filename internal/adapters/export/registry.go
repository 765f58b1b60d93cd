// Package export writes card sort results in the supported file formats.
package export

import (
	"fmt"
	"strings"

	"cardsort/internal/application"
	"cardsort/internal/ports"
)

// DefaultBaseName is the file name used for exports, before the extension
const DefaultBaseName = "card-sort-results"

var encoders = []ports.BoardEncoder{JSON{}, CSV{}, Text{}, YAML{}}

// Formats lists the format names accepted by ForFormat
func Formats() []string {
	names := make([]string, 0, len(encoders))
	for _, e := range encoders {
		names = append(names, e.Format())
	}
	return names
}

// ForFormat returns the encoder for a format name or extension
func ForFormat(name string) (ports.BoardEncoder, error) {
	name = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "."))
	for _, e := range encoders {
		if e.Format() == name || e.Extension() == name {
			return e, nil
		}
	}
	if name == "yml" {
		return YAML{}, nil
	}
	return nil, fmt.Errorf("%w %q (want one of %s)", application.ErrUnknownFormat, name, strings.Join(Formats(), ", "))
}

// FileName returns the default export file name for an encoder
func FileName(e ports.BoardEncoder) string {
	return DefaultBaseName + "." + e.Extension()
}
