package storefront

import (
	"errors"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/tienda/handler"
	"github.com/dmitrymomot/tienda/pkg/fragment"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid storefront configuration")

// TemplateError is the error fragment rendered by the error handler.
const TemplateError = "components/error"

// ErrorComponent adapts the error template for handler.ErrorHandlerConfig.
func ErrorComponent(r fragment.Renderer) func(handler.ErrorParams) templ.Component {
	return func(p handler.ErrorParams) templ.Component {
		return r.Component(TemplateError, p)
	}
}
