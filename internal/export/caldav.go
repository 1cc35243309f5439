// Package export delivers planned workouts to an external calendar over
// CalDAV (e.g. Apple Calendar / iCloud with an app-specific password).
package export

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"alcyxob/workout-planner/internal/domain"
)

// Event is one all-day calendar entry summarizing a day's workouts.
type Event struct {
	UID         string
	Date        domain.DateOnly
	Summary     string
	Description string
}

// BuildICS renders an event as an iCalendar object. All-day events span
// [date, date+1).
func BuildICS(ev Event) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//workout-planner//EN")

	e := cal.AddEvent(ev.UID)
	now := time.Now().UTC()
	e.SetCreatedTime(now)
	e.SetDtStampTime(now)
	e.SetModifiedAt(now)
	e.SetAllDayStartAt(ev.Date.Time())
	e.SetAllDayEndAt(ev.Date.AddDays(1).Time())
	e.SetSummary(ev.Summary)
	if ev.Description != "" {
		e.SetDescription(ev.Description)
	}
	return cal.Serialize()
}

// Client talks to a CalDAV collection. Calendar object resources are
// created with one PUT per event.
type Client struct {
	baseURL    string
	username   string
	password   string
	calendar   string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient builds a CalDAV client for one calendar collection.
func NewClient(baseURL, username, password, calendar string, log *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		username:   username,
		password:   password,
		calendar:   calendar,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        log,
	}
}

// PutEvent uploads one event, overwriting any existing object with the same
// UID. CalDAV servers answer 201 on create and 204 on overwrite.
func (c *Client) PutEvent(ctx context.Context, ev Event) error {
	target := fmt.Sprintf("%s/%s/%s.ics", c.baseURL, url.PathEscape(c.calendar), url.PathEscape(ev.UID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target, strings.NewReader(BuildICS(ev)))
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Content-Type", "text/calendar; charset=utf-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("caldav put failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusNoContent, http.StatusOK:
		c.log.Debug("caldav event stored", "uid", ev.UID, "status", resp.StatusCode)
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("caldav authentication failed: status %d", resp.StatusCode)
	default:
		return fmt.Errorf("caldav put failed: status %d", resp.StatusCode)
	}
}
