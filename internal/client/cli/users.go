package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/userdir/internal/client/models"
	"github.com/dmitrijs2005/userdir/internal/client/state"
	"github.com/dmitrijs2005/userdir/internal/style"
)

var errNotLoggedIn = errors.New("not logged in")

// requireLogin guards collection commands. The core does not enforce the
// authenticated session; the shell does.
func (a *App) requireLogin() error {
	if a.isLoggedIn() {
		return nil
	}
	fmt.Fprintln(a.out, style.Info.Render("Please login first"))
	return errNotLoggedIn
}

// List performs the bulk fetch and renders the current page of the view.
func (a *App) List(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if err := a.users.FetchAll(ctx); err != nil {
		a.render()
		return err
	}
	a.render()
	return nil
}

// Search sets the view filter and resets the page to 1. An empty term
// clears the filter. No fetch happens: the view is a pure projection of the
// already-synchronized collection.
func (a *App) Search(ctx context.Context, term string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	a.query = term
	a.page = 1
	a.render()
	return nil
}

// Page jumps to the given 1-based page of the filtered view. A page past
// the end renders empty, matching the view contract.
func (a *App) Page(ctx context.Context, arg string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		fmt.Fprintln(a.out, "Usage: page <n>")
		return nil
	}
	a.page = n
	a.render()
	return nil
}

// NextPage moves one page forward, clamped to the last page.
func (a *App) NextPage(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	_, total := a.view()
	if a.page < total {
		a.page++
	}
	a.render()
	return nil
}

// PrevPage moves one page back, clamped to the first page.
func (a *App) PrevPage(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if a.page > 1 {
		a.page--
	}
	a.render()
	return nil
}

// Create prompts for the record fields and dispatches the create intent.
// The new record lands at the end of the collection with a locally
// synthesized id.
func (a *App) Create(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	fields, err := a.inputFields(models.UserFields{})
	if err != nil {
		return err
	}

	if err := a.users.Create(ctx, fields); err != nil {
		fmt.Fprintln(a.out, style.ErrorPrefix, a.users.Err())
		return err
	}

	fmt.Fprintln(a.out, style.SuccessPrefix, "User created")
	a.render()
	return nil
}

// Edit prompts for new field values for the given record. Empty input keeps
// the current value, mirroring the partial-update semantics of the core.
func (a *App) Edit(ctx context.Context, arg string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := parseID(arg)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: edit <id>")
		return nil
	}

	current, ok := a.findUser(id)
	if !ok {
		fmt.Fprintln(a.out, style.Info.Render(fmt.Sprintf("No user #%d in the current view", id)))
		return nil
	}
	fmt.Fprintln(a.out, "Editing", current.String(), style.Dim.Render("(empty input keeps the current value)"))

	fields, err := a.inputFields(models.UserFields{
		FirstName: current.FirstName,
		LastName:  current.LastName,
		Email:     current.Email,
		Avatar:    current.Avatar,
	})
	if err != nil {
		return err
	}

	if err := a.users.Update(ctx, id, fields); err != nil {
		fmt.Fprintln(a.out, style.ErrorPrefix, a.users.Err())
		return err
	}

	fmt.Fprintln(a.out, style.SuccessPrefix, "User updated")
	a.render()
	return nil
}

// Delete asks for confirmation and dispatches the delete intent.
func (a *App) Delete(ctx context.Context, arg string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := parseID(arg)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: delete <id>")
		return nil
	}

	confirmed, err := getConfirmation(a.reader, fmt.Sprintf("Delete user #%d?", id), a.out)
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.users.Delete(ctx, id); err != nil {
		fmt.Fprintln(a.out, style.ErrorPrefix, a.users.Err())
		return err
	}

	fmt.Fprintln(a.out, style.SuccessPrefix, "User deleted")
	a.render()
	return nil
}

// inputFields prompts for the four record fields. Hints show which prompts
// may be left empty; empty answers leave the struct field zero, which the
// core treats as "not supplied".
func (a *App) inputFields(current models.UserFields) (models.UserFields, error) {
	var fields models.UserFields
	prompts := []struct {
		label string
		dst   *string
	}{
		{"First name", &fields.FirstName},
		{"Last name", &fields.LastName},
		{"Email", &fields.Email},
		{"Avatar URL", &fields.Avatar},
	}

	for _, p := range prompts {
		value, err := getSimpleText(a.reader, "Enter "+p.label, a.out)
		if err != nil {
			return models.UserFields{}, err
		}
		*p.dst = value
	}
	return fields, nil
}

// findUser looks the record up in the current snapshot.
func (a *App) findUser(id int64) (models.User, bool) {
	for _, u := range a.users.Snapshot() {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// view recomputes the derived projection of the collection.
func (a *App) view() ([]models.User, int) {
	filtered := state.Filter(a.users.Snapshot(), a.query)
	return state.Paginate(filtered, a.page, a.config.PageSize)
}

func parseID(arg string) (int64, error) {
	return strconv.ParseInt(arg, 10, 64)
}
