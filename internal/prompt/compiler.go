package prompt

import (
	"strings"

	"studyaid/internal/domain"
)

// Compile resolves the template for promptType into a CompiledRequest.
// The literal token {TEXT} in the user template is replaced by text, then
// each {KEY} from extra is replaced by its value. Replacement is plain
// string substitution of the first occurrence only; a template authored
// with the same placeholder twice keeps the later occurrences verbatim.
// Compile is a pure function of its inputs and the catalog.
func (c *Catalog) Compile(promptType, text string, extra map[string]string) (domain.CompiledRequest, error) {
	tpl, err := c.Lookup(promptType)
	if err != nil {
		return domain.CompiledRequest{}, err
	}

	user := strings.Replace(tpl.User, "{TEXT}", text, 1)
	for key, value := range extra {
		user = strings.Replace(user, "{"+key+"}", value, 1)
	}

	return domain.CompiledRequest{
		System:      tpl.System,
		User:        user,
		Temperature: tpl.Temperature,
		MaxTokens:   tpl.MaxTokens,
	}, nil
}
