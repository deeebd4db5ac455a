package runtime

import (
	"fmt"
	"strings"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/wrap"
)

// optionScaffold renders one entry of the option block.
const optionScaffold = " - '%s' for '%s'"

// scaffoldWidth is the character count the scaffold itself contributes
// before the description starts, so wrapped description lines align under
// the first description character.
const scaffoldWidth = 11

// FormatOptions renders an OptionSet as one scaffold line per entry, keys
// left-justified to the widest key, descriptions wrapped to the configured
// width with a hanging indent past the key column. Entries keep insertion
// order.
func FormatOptions(options *domain.OptionSet, cfg *domain.Config) string {
	column := options.Width()
	lines := make([]string, 0, options.Len())
	for _, opt := range options.Options() {
		key := opt.Key + strings.Repeat(" ", column-len(opt.Key))
		desc := wrap.Wrap(opt.Description, cfg.DescriptionWidth, column+scaffoldWidth)
		lines = append(lines, fmt.Sprintf(optionScaffold, key, desc))
	}
	return strings.Join(lines, "\n")
}
