package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"calendar-assistant/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func TestCalendarClient(t *testing.T) {
	t.Run("Missing token rejected", func(t *testing.T) {
		_, err := gcalendar.NewClientFromToken(context.Background(), "")
		if err == nil {
			t.Errorf("expected error for empty access token")
		}
	})

	t.Run("Create Event E2E", func(t *testing.T) {
		var gotBody map[string]any
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
				json.NewDecoder(r.Body).Decode(&gotBody)
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"id": "event-123",
					"summary": "Standup",
					"htmlLink": "https://calendar.google.com/event-uri",
					"status": "confirmed"
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer ts.Close()

		tsClient := ts.Client()
		tsClient.Transport = &rewriteTransport{
			Transport: http.DefaultTransport,
			Host:      ts.Listener.Addr().String(),
		}

		client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
		if err != nil {
			t.Fatalf("unexpected error creating client: %v", err)
		}

		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:       "Standup",
			Location:      "Room 5",
			StartDateTime: "2025-03-10T09:00:00",
			EndDateTime:   "2025-03-10T10:00:00",
			Timezone:      "America/Los_Angeles",
		})
		if err != nil {
			t.Fatalf("unexpected error creating event: %v", err)
		}
		if event.ID != "event-123" {
			t.Errorf("expected event-123, got %s", event.ID)
		}
		if event.HtmlLink == "" {
			t.Errorf("expected html link on created event")
		}

		start, ok := gotBody["start"].(map[string]any)
		if !ok {
			t.Fatalf("expected start object in request body, got %+v", gotBody)
		}
		if start["dateTime"] != "2025-03-10T09:00:00" {
			t.Errorf("unexpected start dateTime: %v", start["dateTime"])
		}
		if start["timeZone"] != "America/Los_Angeles" {
			t.Errorf("unexpected start timeZone: %v", start["timeZone"])
		}
	})

	t.Run("Create Event provider rejection", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": {"code": 400, "message": "Invalid time zone definition"}}`))
		}))
		defer ts.Close()

		tsClient := ts.Client()
		tsClient.Transport = &rewriteTransport{
			Transport: http.DefaultTransport,
			Host:      ts.Listener.Addr().String(),
		}

		client, _ := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
		_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:       "Bad",
			StartDateTime: "2025-03-10T09:00:00",
			EndDateTime:   "2025-03-10T10:00:00",
			Timezone:      "Not/AZone",
		})
		if err == nil {
			t.Fatalf("expected provider rejection to surface as error")
		}
	})

	t.Run("List Events E2E", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodGet {
				if r.URL.Query().Get("singleEvents") != "true" {
					t.Errorf("expected singleEvents=true, got %q", r.URL.Query().Get("singleEvents"))
				}
				if r.URL.Query().Get("orderBy") != "startTime" {
					t.Errorf("expected orderBy=startTime")
				}
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"items": [
						{
							"id": "ev-1",
							"summary": "Standup",
							"start": { "dateTime": "2025-03-10T09:00:00-07:00" },
							"end": { "dateTime": "2025-03-10T10:00:00-07:00" }
						},
						{
							"id": "ev-2",
							"summary": "Company Holiday",
							"start": { "date": "2025-03-11" },
							"end": { "date": "2025-03-12" }
						}
					]
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer ts.Close()

		tsClient := ts.Client()
		tsClient.Transport = &rewriteTransport{
			Transport: http.DefaultTransport,
			Host:      ts.Listener.Addr().String(),
		}

		client, _ := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
		events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
			TimeMin: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			TimeMax: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected list error: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(events))
		}
		if events[0].AllDay {
			t.Errorf("timed event should not be all-day")
		}
		if !events[1].AllDay {
			t.Errorf("date-only event should be all-day")
		}
		if events[1].Start != "2025-03-11" {
			t.Errorf("unexpected all-day start: %s", events[1].Start)
		}
	})
}
