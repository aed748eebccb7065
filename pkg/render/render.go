package render

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync/atomic"

	"github.com/a-h/templ"
)

//go:embed templates
var embedded embed.FS

// Extension is the file extension of template files.
const Extension = ".html"

// Renderer holds a parsed template set. The set can be swapped by Reload
// while requests are being served.
type Renderer struct {
	cfg *config
	set atomic.Pointer[template.Template]
}

type config struct {
	fsys  fs.FS
	root  string
	funcs template.FuncMap
}

// Option configures New.
type Option func(*config)

// WithFS replaces the embedded templates with fsys, rooted at root.
func WithFS(fsys fs.FS, root string) Option {
	return func(c *config) {
		if fsys != nil {
			c.fsys = fsys
			c.root = root
		}
	}
}

// WithFuncs registers template functions.
func WithFuncs(funcs template.FuncMap) Option {
	return func(c *config) {
		for k, v := range funcs {
			c.funcs[k] = v
		}
	}
}

// New parses every *.html file under the template root.
func New(opts ...Option) (*Renderer, error) {
	cfg := &config{
		fsys:  embedded,
		root:  "templates",
		funcs: template.FuncMap{},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	set, err := parse(cfg)
	if err != nil {
		return nil, err
	}
	r := &Renderer{cfg: cfg}
	r.set.Store(set)
	return r, nil
}

// Reload parses the templates again and swaps them in. On failure the
// previous set stays active.
func (r *Renderer) Reload() error {
	set, err := parse(r.cfg)
	if err != nil {
		return err
	}
	r.set.Store(set)
	return nil
}

func parse(cfg *config) (*template.Template, error) {
	set := template.New("").Funcs(cfg.funcs)
	err := fs.WalkDir(cfg.fsys, cfg.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != Extension {
			return nil
		}
		src, err := fs.ReadFile(cfg.fsys, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(strings.TrimPrefix(p, cfg.root+"/"), Extension)
		if cfg.root == "." {
			name = strings.TrimSuffix(p, Extension)
		}
		if _, err := set.New(name).Parse(string(src)); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Join(ErrParseTemplates, err)
	}
	return set, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Renderer {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Has reports whether a template with the given name exists.
func (r *Renderer) Has(name string) bool {
	return r.set.Load().Lookup(name) != nil
}

// Names returns the names of all parsed templates.
func (r *Renderer) Names() []string {
	var names []string
	for _, t := range r.set.Load().Templates() {
		if t.Name() != "" {
			names = append(names, t.Name())
		}
	}
	return names
}

// Component returns the named template bound to data.
// Rendering an unknown name fails with ErrTemplateNotFound.
func (r *Renderer) Component(name string, data any) templ.Component {
	t := r.set.Load().Lookup(name)
	if t == nil {
		return templ.ComponentFunc(func(context.Context, io.Writer) error {
			return fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
		})
	}
	return templ.FromGoHTML(t, data)
}

// String renders c into a string.
func String(ctx context.Context, c templ.Component) (string, error) {
	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
