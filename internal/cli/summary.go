package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/nulzo/unified-router/internal/core/ports"
)

// PrintProviders writes the dispatch order with each provider's state.
func PrintProviders(w io.Writer, statuses []ports.ProviderStatus) {
	fmt.Fprintln(w, Style("Provider dispatch order", Bold))
	for i, st := range statuses {
		progress := float64(i) / float64(max(len(statuses)-1, 1))
		label := Gradient(fmt.Sprintf("%d. %-10s", st.Priority, st.Provider), BrandBlue, BrandPurple, progress)
		line := "  " + Mark(st.Enabled) + " " + label

		var notes []string
		if st.BaseURL != "" {
			notes = append(notes, st.BaseURL)
		}
		if st.Overrides > 0 {
			notes = append(notes, fmt.Sprintf("%d override(s)", st.Overrides))
		}

		fmt.Fprintf(w, "%s %s", line, Style(strings.Join(notes, "  "), Dim))
		if st.Enabled && !st.HasKey && st.Provider.RequiresKey() {
			fmt.Fprintf(w, "  %s %s", WarningSign(), Style("overrides only, no default key", Yellow))
		}
		fmt.Fprintln(w)
	}
}
