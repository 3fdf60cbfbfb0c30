package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"github.com/pepealonso95/zeromail/internal/calendar"
	"github.com/pepealonso95/zeromail/internal/view"
)

// parseAnchorDate parses the --date flag, accepting a plain date or a full
// RFC3339 timestamp.
func parseAnchorDate(value string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or RFC3339", value)
	}
	return t, nil
}

func newWeekCmd() *cobra.Command {
	var (
		date       string
		calendarID string
		token      string
	)

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Render the scheduling grid for a week",
		Long: `Render the 7-day scheduling grid (Sunday start, half-hour slots) for the
week containing the given date, with calendar events placed in their day
columns and a marker on the current time slot.

Without a Google access token the grid renders empty. Provide a token via
--token or the GOOGLE_ACCESS_TOKEN environment variable to include events.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			anchor := time.Now()
			if date != "" {
				anchor, err = parseAnchorDate(date)
				if err != nil {
					return err
				}
			}

			if calendarID == "" {
				calendarID = cfg.Calendar.CalendarID
			}

			w := view.NewWeekView(anchor, cfg.View.ViewportHeight, nil, nil)

			if token == "" {
				token = os.Getenv("GOOGLE_ACCESS_TOKEN")
			}
			if token != "" {
				ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
				client, err := calendar.NewClient(cmd.Context(), ts)
				if err != nil {
					return fmt.Errorf("failed to create calendar client: %w", err)
				}

				events, err := client.ListWeekEvents(calendarID, anchor)
				if err != nil {
					return fmt.Errorf("failed to list week events: %w", err)
				}
				w.SetEvents(calendar.GridEvents(events, calendarID))
			}

			fmt.Fprint(cmd.OutOrStdout(), view.RenderWeek(w, time.Now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Anchor date inside the week to render (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&calendarID, "calendar", "", "Calendar ID (default: from config, 'primary' if unset)")
	cmd.Flags().StringVar(&token, "token", "", "Google access token (default: GOOGLE_ACCESS_TOKEN env var)")

	return cmd
}
