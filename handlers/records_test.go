package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/certitrack/backend/models"
)

func TestRecordsCRUD(t *testing.T) {
	ts := newTestServer(t, true)
	user := ts.seedUser(t, "Amy", "a@x.com", "secret1", models.RoleUser)
	token := ts.tokenFor(t, user)

	// Unauthenticated create is rejected
	w := ts.do(t, http.MethodPost, "/qr", "", M{"centerName": "Center A", "courseName": "Welding"})
	wantStatus(t, w, http.StatusUnauthorized)

	// Create
	w = ts.do(t, http.MethodPost, "/qr", token, M{
		"centerName": "Center A",
		"serialNo":   "SN-001",
		"courseName": "Welding",
		"level":      "III",
		"unitCode":   "W-12",
		"unitName":   "Arc Welding",
		"totalTools": 14,
		"c1name":     "Kip",
		"c1reg":      "R-1",
		"headName":   "Dr. Odhiambo",
	})
	wantStatus(t, w, http.StatusCreated)

	var created models.Record
	decodeBody(t, w, &created)
	if created.ID == 0 {
		t.Fatal("expected a generated id")
	}
	if created.UserID != user.ID {
		t.Fatalf("record attributed to %d, want %d", created.UserID, user.ID)
	}

	// Get
	w = ts.do(t, http.MethodGet, fmt.Sprintf("/qr/%d", created.ID), token, nil)
	wantStatus(t, w, http.StatusOK)

	// Update keeps the owner
	w = ts.do(t, http.MethodPut, fmt.Sprintf("/qr/%d", created.ID), token, M{
		"centerName": "Center A",
		"courseName": "Welding",
		"totalTools": 16,
	})
	wantStatus(t, w, http.StatusOK)

	var updated models.Record
	decodeBody(t, w, &updated)
	if updated.TotalTools != 16 {
		t.Fatalf("totalTools not updated: %d", updated.TotalTools)
	}
	if updated.UserID != user.ID {
		t.Fatalf("update changed the owner: %d", updated.UserID)
	}

	// Delete
	w = ts.do(t, http.MethodDelete, fmt.Sprintf("/qr/%d", created.ID), token, nil)
	wantStatus(t, w, http.StatusOK)

	w = ts.do(t, http.MethodGet, fmt.Sprintf("/qr/%d", created.ID), token, nil)
	wantStatus(t, w, http.StatusNotFound)

	// Every mutation published an event
	wantEvents := []string{"created", "updated", "deleted"}
	if len(ts.events.published) != len(wantEvents) {
		t.Fatalf("expected %d events, got %d", len(wantEvents), len(ts.events.published))
	}
	for i, want := range wantEvents {
		got := ts.events.published[i]
		if got.Type != want {
			t.Fatalf("event %d: got type %q want %q", i, got.Type, want)
		}
		if got.ActorID != user.ID {
			t.Fatalf("event %d: actor %d want %d", i, got.ActorID, user.ID)
		}
	}
}

func TestRecordsList_MineFilter(t *testing.T) {
	ts := newTestServer(t, true)
	amy := ts.seedUser(t, "Amy", "a@x.com", "secret1", models.RoleUser)
	bob := ts.seedUser(t, "Bob", "b@x.com", "secret2", models.RoleUser)

	w := ts.do(t, http.MethodPost, "/qr", ts.tokenFor(t, amy), M{
		"centerName": "Center A", "courseName": "Welding",
	})
	wantStatus(t, w, http.StatusCreated)

	w = ts.do(t, http.MethodPost, "/qr", ts.tokenFor(t, bob), M{
		"centerName": "Center B", "courseName": "Masonry",
	})
	wantStatus(t, w, http.StatusCreated)

	// Everything
	w = ts.do(t, http.MethodGet, "/qr", ts.tokenFor(t, amy), nil)
	wantStatus(t, w, http.StatusOK)
	var all []models.Record
	decodeBody(t, w, &all)
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}

	// Just the caller's
	w = ts.do(t, http.MethodGet, "/qr?mine=true", ts.tokenFor(t, amy), nil)
	wantStatus(t, w, http.StatusOK)
	var mine []models.Record
	decodeBody(t, w, &mine)
	if len(mine) != 1 {
		t.Fatalf("expected 1 record, got %d", len(mine))
	}
	if mine[0].UserID != amy.ID {
		t.Fatalf("mine filter returned record of user %d", mine[0].UserID)
	}
}

func TestRecords_InvalidBody(t *testing.T) {
	ts := newTestServer(t, true)
	user := ts.seedUser(t, "Amy", "a@x.com", "secret1", models.RoleUser)

	// centerName and courseName are required
	w := ts.do(t, http.MethodPost, "/qr", ts.tokenFor(t, user), M{"serialNo": "SN-1"})
	wantStatus(t, w, http.StatusBadRequest)
}
