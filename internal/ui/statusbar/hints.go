package statusbar

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/riordanpawley/popup/internal/ui/styles"
)

// Hints renders the short help line for bindings
func Hints(bindings []key.Binding, s *styles.Styles) string {
	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = s.StatusInfo
	h.Styles.ShortDesc = s.StatusHint
	h.Styles.ShortSeparator = s.StatusHint
	return h.ShortHelpView(bindings)
}
