package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/cebip/internal/common"
	"github.com/dmitrijs2005/cebip/internal/stats"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and opens a session. Rejected credentials
// and inactive accounts are reported to the user, not returned as errors.
// The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.opCtx(ctx)
	defer cancel()

	s, err := a.sessions.Authenticate(ctx, email, password)
	if err != nil {
		a.log.Error(ctx, "login failed", "email", email, "error", err)
		return err
	}
	if s == nil {
		fmt.Fprintln(a.out, "Invalid credentials or account not active.")
		return nil
	}

	fmt.Fprintf(a.out, "Welcome, %s (%s)\n", s.User.Name, s.User.Role)
	return nil
}

// Logout clears the session slot.
func (a *App) Logout(ctx context.Context) error {
	ctx, cancel := a.opCtx(ctx)
	defer cancel()

	if err := a.sessions.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI prints the signed-in user.
func (a *App) WhoAmI(ctx context.Context) error {
	s := a.sessions.Current(ctx)
	if s == nil {
		return common.ErrorUnauthorized
	}

	u := s.User
	fmt.Fprintf(a.out, "[%s] %s <%s>\n", stats.Initials(u.Name), u.Name, u.Email)
	fmt.Fprintf(a.out, "  role: %s  status: %s\n", u.Role, u.Status)
	if u.IsMember() {
		fmt.Fprintf(a.out, "  membership: %s  member since: %s\n", membershipLabel(u.MembershipType), stats.FormatDate(u.CreatedAt))
	}
	if u.LastLogin != nil {
		fmt.Fprintf(a.out, "  last login: %s\n", u.LastLogin.UTC().Format("2006-01-02 15:04 MST"))
	}

	iat, err := a.sessions.IssuedAt(ctx)
	if err != nil {
		a.log.Warn(ctx, "session token rejected", "user_id", u.ID, "error", err)
		fmt.Fprintln(a.out, "  session: token could not be verified, log in again")
		return nil
	}
	fmt.Fprintf(a.out, "  session: issued %s\n", iat.UTC().Format("2006-01-02 15:04 MST"))
	return nil
}
