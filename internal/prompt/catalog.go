// Package prompt holds the prompt catalog and the template compiler.
// The catalog is static data: it is loaded once at startup from a JSON
// file and never mutated afterwards.
package prompt

import (
	"fmt"

	"studyaid/internal/domain"

	"github.com/spf13/viper"
)

// Canonical request types shipped in the catalog file. The file may carry
// additional custom types; lookup works for any key present in it.
const (
	TypeShortSummary = "short_summary"
	TypeKeyPoints    = "key_points"
	TypeFlashcards   = "flashcards"
	TypeMCQ          = "mcq"
)

// uiLabelsKey is the one entry of the catalog file that is not a template.
const uiLabelsKey = "ui_text_labels"

// Template is one prompt configuration: a system instruction, a user
// message template containing {TEXT} (and optionally other {PARAM})
// placeholders, and the generation parameters to use with it.
type Template struct {
	System      string  `mapstructure:"system"`
	User        string  `mapstructure:"user"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// Catalog is the read-only mapping from request type to Template plus the
// UI button captions bundled in the same data file.
type Catalog struct {
	templates map[string]Template
	labels    map[string]string
}

// NewCatalog loads the catalog data file at path.
func NewCatalog(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read prompt catalog %s: %w", path, err)
	}

	templates := make(map[string]Template)
	for key := range v.AllSettings() {
		if key == uiLabelsKey {
			continue
		}
		var tpl Template
		if err := v.UnmarshalKey(key, &tpl); err != nil {
			return nil, fmt.Errorf("invalid prompt template %q: %w", key, err)
		}
		if tpl.User == "" {
			return nil, fmt.Errorf("prompt template %q has no user message", key)
		}
		templates[key] = tpl
	}
	if len(templates) == 0 {
		return nil, fmt.Errorf("prompt catalog %s contains no templates", path)
	}

	return &Catalog{
		templates: templates,
		labels:    v.GetStringMapString(uiLabelsKey),
	}, nil
}

// Lookup returns the template registered for the given request type.
func (c *Catalog) Lookup(promptType string) (Template, error) {
	tpl, ok := c.templates[promptType]
	if !ok {
		return Template{}, domain.NewUnknownPromptTypeError(promptType)
	}
	return tpl, nil
}

// Labels returns the UI button captions per request type.
func (c *Catalog) Labels() map[string]string {
	return c.labels
}

// Types returns the request types the catalog knows about.
func (c *Catalog) Types() []string {
	types := make([]string, 0, len(c.templates))
	for key := range c.templates {
		types = append(types, key)
	}
	return types
}
