package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/huddle/internal/client/api"
)

var errNoToken = errors.New("no access token, run 'token' first")

// SetToken prompts for an access token without echoing it.
func (a *App) SetToken(ctx context.Context) error {
	tok, err := GetPassword(a.out, "Enter access token: ")
	if err != nil {
		return a.fail(err)
	}
	defer clear(tok)

	if len(strings.TrimSpace(string(tok))) == 0 {
		return a.fail(errors.New("empty token"))
	}
	a.client.SetToken(string(tok))
	fmt.Fprintln(a.out, "Token set")
	return nil
}

func (a *App) Status(ctx context.Context) error {
	s, err := a.client.Status(ctx)
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintf(a.out, "Status: %s (%s: %s)\n", s.MappedStatus, s.Overall.Indicator, s.Overall.Description)
	for _, c := range s.Components {
		fmt.Fprintf(a.out, "  %-30s %s\n", c.Name, c.Status)
	}
	for _, i := range s.Incidents {
		line := fmt.Sprintf("  ! %s [%s] since %s", i.Name, i.Status, i.StartedAt)
		if i.URL != "" {
			line += " " + i.URL
		}
		fmt.Fprintln(a.out, line)
	}
	return nil
}

// Report sends an app-open report. args may hold "lat lng".
func (a *App) Report(ctx context.Context, args []string) error {
	if !a.hasToken() {
		return a.fail(errNoToken)
	}

	coords, err := parseCoordinates(args)
	if err != nil {
		return a.fail(err)
	}

	if _, err := a.client.ReportActivity(ctx, coords); err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, "Activity reported")
	return nil
}

func (a *App) DeleteUser(ctx context.Context) error {
	if !a.hasToken() {
		return a.fail(errNoToken)
	}

	target, err := GetSimpleText(a.reader, "Target user id", a.out)
	if err != nil {
		return a.fail(err)
	}
	username, err := GetSimpleText(a.reader, "Type the target's username to confirm", a.out)
	if err != nil {
		return a.fail(err)
	}

	if _, err := a.client.AdminDeleteUser(ctx, target, username); err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.out, "User %s deleted\n", target)
	return nil
}

func (a *App) DeleteAccount(ctx context.Context) error {
	if !a.hasToken() {
		return a.fail(errNoToken)
	}

	answer, err := GetSimpleText(a.reader, "This permanently deletes the account behind the current token. Type 'yes' to continue", a.out)
	if err != nil {
		return a.fail(err)
	}
	if answer != "yes" {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if _, err := a.client.DeleteAccount(ctx); err != nil {
		return a.fail(err)
	}
	a.client.SetToken("")
	fmt.Fprintln(a.out, "Account deleted")
	return nil
}

// fail prints err in a form an operator can act on and returns it.
func (a *App) fail(err error) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		fmt.Fprintf(a.out, "Error: %s (HTTP %d)\n", describe(apiErr.Code), apiErr.Status)
		return err
	}
	fmt.Fprintln(a.out, "Error:", err)
	return err
}

var codeDescriptions = map[string]string{
	"unauthorized":               "token missing, invalid or expired",
	"forbidden":                  "admin role required",
	"bad_request":                "malformed request",
	"missing_target_or_username": "target id and username are both required",
	"target_not_found":           "no such user",
	"missing_username":           "target has no username, cannot confirm",
	"username_mismatch":          "username does not match the target",
	"method_not_allowed":         "method not allowed",
	"internal_error":             "server error",
}

func describe(code string) string {
	if d, ok := codeDescriptions[code]; ok {
		return d
	}
	if code == "" {
		return "request failed"
	}
	return code
}

func parseCoordinates(args []string) (*api.Coordinates, error) {
	switch len(args) {
	case 0:
		return nil, nil
	case 2:
		lat, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return nil, fmt.Errorf("bad latitude %q", args[0])
		}
		lng, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return nil, fmt.Errorf("bad longitude %q", args[1])
		}
		return &api.Coordinates{Latitude: lat, Longitude: lng}, nil
	default:
		return nil, errors.New("usage: report [lat lng]")
	}
}
