// Package calendar provides the client for the remote calendar service
// backing the scheduling surface, implemented against the Google Calendar API.
//
// The package offers event CRUD, calendar listing, free/busy queries and
// available-slot search, and converts API events into the read-only event
// records consumed by the week grid. Authentication is out of scope: callers
// supply an oauth2.TokenSource (or a pre-authenticated HTTP client) and the
// package never acquires or refreshes credentials itself.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := calendar.NewClient(ctx, oauth2.StaticTokenSource(token))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// List this week's events
//	events, err := client.ListEvents("primary", weekStart, weekEnd, "")
//	if err != nil {
//	    log.Fatal(err)
//	}
package calendar
