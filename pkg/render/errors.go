package render

import "errors"

var (
	// ErrTemplateNotFound is returned when rendering a name that was never parsed.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrParseTemplates is returned when the template tree cannot be parsed.
	ErrParseTemplates = errors.New("failed to parse templates")
)
