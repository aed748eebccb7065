package fragment

import "errors"

var (
	ErrUnknownRoute = errors.New("unknown fragment route")
	ErrRender       = errors.New("failed to render fragment")
)
