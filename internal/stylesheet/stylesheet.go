// Package stylesheet models CSS rules built on top of the selector
// package and renders them as stylesheet text. Rules can be constructed
// directly or loaded from a YAML document.
package stylesheet

import (
	"fmt"
	"strings"
)

// Declaration is a single property/value pair. Declarations render in
// the order they appear in a rule.
type Declaration struct {
	Property string `yaml:"property"`
	Value    string `yaml:"value"`
}

// Rule pairs a built selector with its declarations.
type Rule struct {
	Selector     fmt.Stringer
	Declarations []Declaration
}

// Stylesheet is an ordered collection of rules.
type Stylesheet struct {
	Rules []Rule
}

// RenderOptions controls stylesheet output formatting.
type RenderOptions struct {
	// Indent is the per-declaration indentation. Ignored when Minify is
	// set.
	Indent string
	// Minify collapses all optional whitespace.
	Minify bool
}

// DefaultRenderOptions returns the formatting used when no configuration
// overrides it.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Indent: "  "}
}

// Render returns the rule as stylesheet text.
func (r Rule) Render(opts RenderOptions) string {
	var sb strings.Builder
	r.renderTo(&sb, opts)

	return sb.String()
}

func (r Rule) renderTo(sb *strings.Builder, opts RenderOptions) {
	sb.WriteString(r.Selector.String())

	if opts.Minify {
		sb.WriteByte('{')
		for i, d := range r.Declarations {
			if i > 0 {
				sb.WriteByte(';')
			}
			sb.WriteString(d.Property)
			sb.WriteByte(':')
			sb.WriteString(d.Value)
		}
		sb.WriteByte('}')

		return
	}

	sb.WriteString(" {\n")
	for _, d := range r.Declarations {
		sb.WriteString(opts.Indent)
		sb.WriteString(d.Property)
		sb.WriteString(": ")
		sb.WriteString(d.Value)
		sb.WriteString(";\n")
	}
	sb.WriteByte('}')
}

// Render returns the stylesheet as CSS text. Rules are separated by a
// blank line, or nothing when minified. Output ends with a trailing
// newline unless minified or empty.
func (s Stylesheet) Render(opts RenderOptions) string {
	if len(s.Rules) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, r := range s.Rules {
		if i > 0 && !opts.Minify {
			sb.WriteString("\n\n")
		}
		r.renderTo(&sb, opts)
	}
	if !opts.Minify {
		sb.WriteByte('\n')
	}

	return sb.String()
}

// String renders with default options, implementing fmt.Stringer.
func (s Stylesheet) String() string {
	return s.Render(DefaultRenderOptions())
}
