package stylesheet

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cliErrors "github.com/conneroisu/cssel/internal/errors"
	"github.com/conneroisu/cssel/internal/selector"
)

const sampleDoc = `
rules:
  - selector:
      element: div
      id: main
      classes: [container, wide]
      attributes: ['data-role=page']
      pseudo_classes: [hover]
      pseudo_element: before
    declarations:
      - property: color
        value: red
  - selector:
      combine:
        left:
          element: ul
          classes: [menu]
        combinator: ">"
        right:
          element: li
    declarations:
      - property: margin
        value: "0"
`

func TestLoadAndBuild(t *testing.T) {
	doc, err := Load(strings.NewReader(sampleDoc))
	require.NoError(t, err)
	require.Len(t, doc.Rules, 2)

	sheet, err := doc.Build()
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 2)

	assert.Equal(t, "div#main.container.wide[data-role=page]:hover::before",
		sheet.Rules[0].Selector.String())
	assert.Equal(t, "ul.menu > li", sheet.Rules[1].Selector.String())
}

func TestBuildNestedCombine(t *testing.T) {
	doc := Document{Rules: []RuleSpec{{
		Selector: SelectorSpec{Combine: &CombineSpec{
			Left: SelectorSpec{Element: "a"},
			// Empty token means descendant; it still gets padded on both
			// sides when rendered.
			Right: SelectorSpec{Combine: &CombineSpec{
				Left:       SelectorSpec{Element: "b"},
				Combinator: "~",
				Right:      SelectorSpec{Element: "c"},
			}},
		}},
	}}}

	sheet, err := doc.Build()
	require.NoError(t, err)

	assert.Equal(t, "a   b ~ c", sheet.Rules[0].Selector.String())
}

func TestBuildRejectsAmbiguousSelector(t *testing.T) {
	doc := Document{Rules: []RuleSpec{{
		Selector: SelectorSpec{
			Element: "div",
			Combine: &CombineSpec{
				Left:  SelectorSpec{Element: "a"},
				Right: SelectorSpec{Element: "b"},
			},
		},
	}}}

	_, err := doc.Build()
	require.Error(t, err)

	var cliErr *cliErrors.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, cliErrors.ErrorTypeValidation, cliErr.Type)
	assert.Equal(t, 0, cliErr.Context["rule"])
}

func TestBuildSurfacesSelectorErrors(t *testing.T) {
	// Errors from nested operands are wrapped with the rule index.
	doc := Document{Rules: []RuleSpec{{
		Selector: SelectorSpec{Combine: &CombineSpec{
			Left: SelectorSpec{
				Element: "div",
				Combine: &CombineSpec{Left: SelectorSpec{}, Right: SelectorSpec{}},
			},
			Right: SelectorSpec{Element: "b"},
		}},
	}}}

	_, err := doc.Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, cliErrors.NewValidationError("rule_invalid", ""))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "styles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o644))

	doc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, doc.Rules, 2)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	var cliErr *cliErrors.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, cliErrors.ErrorTypeIO, cliErr.Type)
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load(strings.NewReader("rules: [unbalanced"))
	require.Error(t, err)

	var cliErr *cliErrors.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, cliErrors.ErrorTypeValidation, cliErr.Type)
}

func TestDocumentRoundTripThroughRender(t *testing.T) {
	doc, err := Load(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	sheet, err := doc.Build()
	require.NoError(t, err)

	out := sheet.Render(DefaultRenderOptions())
	assert.Contains(t, out, "div#main.container.wide[data-role=page]:hover::before {")
	assert.Contains(t, out, "  color: red;")
	assert.Contains(t, out, "ul.menu > li {")
}

func TestSelectorSpecReusesBuilderSemantics(t *testing.T) {
	// The flat form feeds the immutable builder; the rendered output must
	// match a hand-built chain.
	spec := SelectorSpec{Element: "input", Attributes: []string{"type=text"}, PseudoClasses: []string{"focus"}}

	built, err := spec.build()
	require.NoError(t, err)

	b, err := selector.Builder{}.Element("input")
	require.NoError(t, err)
	b, err = b.Attr("type=text")
	require.NoError(t, err)
	b, err = b.PseudoClass("focus")
	require.NoError(t, err)

	assert.Equal(t, b.String(), built.String())
}
