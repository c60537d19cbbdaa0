// Package markdown renders note content for the terminal.
package markdown

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

const defaultMaxEntries = 256

// Renderer renders markdown with glamour and caches results by content,
// style and width. It is not safe for concurrent use.
type Renderer struct {
	enabled bool
	max     int

	cache map[uint64]string
	order []uint64 // insertion order for eviction

	// one term renderer per style, rebuilt when the width changes
	term map[string]termRenderer
}

type termRenderer struct {
	width int
	tr    *glamour.TermRenderer
}

// New creates a renderer. When enabled is false content is only wrapped.
func New(enabled bool) *Renderer {
	return &Renderer{
		enabled: enabled,
		max:     defaultMaxEntries,
		cache:   make(map[uint64]string),
		term:    make(map[string]termRenderer),
	}
}

// Render returns content rendered for the given glamour style and width.
// Rendering errors fall back to plain word-wrapped text.
func (r *Renderer) Render(content, style string, width int) string {
	if width < 1 {
		width = 1
	}
	if !r.enabled {
		return Plain(content, width)
	}

	key := cacheKey(content, style, width)
	if out, ok := r.cache[key]; ok {
		return out
	}

	out, err := r.render(content, style, width)
	if err != nil {
		out = Plain(content, width)
	}
	r.store(key, out)
	return out
}

func (r *Renderer) render(content, style string, width int) (string, error) {
	cached, ok := r.term[style]
	if !ok || cached.width != width {
		tr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", err
		}
		cached = termRenderer{width: width, tr: tr}
		r.term[style] = cached
	}
	out, err := cached.tr.Render(content)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}

func (r *Renderer) store(key uint64, out string) {
	if len(r.order) >= r.max {
		oldest := r.order[0]
		r.order = r.order[1:]
		delete(r.cache, oldest)
	}
	r.cache[key] = out
	r.order = append(r.order, key)
}

// Len returns the number of cached renders.
func (r *Renderer) Len() int { return len(r.cache) }

// Plain wraps content to width without markdown processing.
func Plain(content string, width int) string {
	return wordwrap.String(content, width)
}

func cacheKey(content, style string, width int) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(style)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(strconv.Itoa(width))
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(content)
	return d.Sum64()
}
