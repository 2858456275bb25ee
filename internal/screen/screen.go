// Package screen holds the screens as thin controllers over the collection
// services: fetch on load and on focus-regain, adapt, render, and issue the
// user's create/update calls. Rendering targets an io.Writer so the same
// controllers drive the terminal front-end and the tests.
package screen

import (
	"fmt"
	"io"

	"github.com/platebook/platebook-client/internal/types"
)

// alert is the blocking user-facing message used for validation and write
// failures. Reads never alert; they degrade to empty states.
func alert(w io.Writer, title, message string) {
	fmt.Fprintf(w, "[%s] %s\n", title, message)
}

func renderRecipeLine(w io.Writer, r types.Recipe) {
	marker := ""
	if r.Local() {
		marker = " (not yet synced)"
	}
	category := ""
	if len(r.Categories) > 0 && r.Categories[0].Name != "" {
		category = " · " + r.Categories[0].Name
	}
	fmt.Fprintf(w, "- %s%s%s\n", r.Title, category, marker)
}
