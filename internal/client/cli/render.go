package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/userdir/internal/client/state"
	"github.com/dmitrijs2005/userdir/internal/style"
)

// render draws the current page of the derived view plus any error stored
// in the managers. It is recomputed from the collection on every call.
func (a *App) render() {
	page, total := a.view()

	if authErr := a.auth.Err(); authErr != "" {
		fmt.Fprintln(a.out, style.ErrorPrefix, authErr)
	}
	if usersErr := a.users.Err(); usersErr != "" {
		fmt.Fprintln(a.out, style.ErrorPrefix, usersErr)
	}

	if total == 0 {
		fmt.Fprintln(a.out, style.Dim.Render(a.emptyViewHint()))
		return
	}

	tw := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, style.Header.Render("ID\tFIRST NAME\tLAST NAME\tEMAIL"))
	for _, u := range page {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", u.ID, u.FirstName, u.LastName, u.Email)
	}
	tw.Flush()

	fmt.Fprintln(a.out, style.Dim.Render(a.footer(len(page), total)))
}

func (a *App) emptyViewHint() string {
	if a.query != "" {
		return fmt.Sprintf("no users match %q", a.query)
	}
	if a.users.Status() == state.StatusPending {
		return "loading..."
	}
	return "no users loaded (try 'list')"
}

func (a *App) footer(shown, total int) string {
	s := fmt.Sprintf("page %d of %d (%d shown)", a.page, total, shown)
	if a.query != "" {
		s += fmt.Sprintf(", filter %q", a.query)
	}
	return s
}
