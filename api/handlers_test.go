/*
handlers_test.go - Unit tests for API handlers

Tests for:
- Stateless schedule computation (ComputeSchedule)
- Lease CRUD and per-lease schedule computation
- Boundary validation (bad dates, out-of-range due days)
*/
package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/warp/rent-engine/rent/store"
)

func newTestServer() (*httptest.Server, *Handler) {
	h := NewHandler(store.NewMemory())
	return httptest.NewServer(NewRouter(h)), h
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return v
}

// =============================================================================
// SCHEDULE PREVIEW
// =============================================================================

func TestComputeSchedule_Success(t *testing.T) {
	srv, _ := newTestServer()
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/api/schedule", ScheduleRequest{
		Terms: TermsDTO{
			BaseMonthlyRent:       100,
			LeaseStart:            "2023-01-01",
			DueDay:                15,
			ChangeFrequencyMonths: 1,
			ChangeRate:            0.1,
		},
		WindowStart: "2023-01-01",
		WindowEnd:   "2023-03-31",
	})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	schedule := decode[ScheduleDTO](t, resp)
	if len(schedule.Records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(schedule.Records))
	}

	want := []RentRecordDTO{
		{RentAmount: 46.67, RentDueDate: "2023-01-01"},
		{RentAmount: 100, RentDueDate: "2023-01-15"},
		{RentAmount: 110, RentDueDate: "2023-02-15"},
		{RentAmount: 121, RentDueDate: "2023-03-15"},
	}
	for i, w := range want {
		got := schedule.Records[i]
		if got.RentAmount != w.RentAmount || got.RentDueDate != w.RentDueDate {
			t.Errorf("record %d: expected (%v, %s), got (%v, %s)",
				i, w.RentAmount, w.RentDueDate, got.RentAmount, got.RentDueDate)
		}
		if got.Vacancy {
			t.Errorf("record %d: unexpected vacancy flag", i)
		}
	}
}

func TestComputeSchedule_InvertedWindow_EmptyRecords(t *testing.T) {
	srv, _ := newTestServer()
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/api/schedule", ScheduleRequest{
		Terms: TermsDTO{
			BaseMonthlyRent: 100,
			LeaseStart:      "2023-01-01",
			DueDay:          1,
		},
		WindowStart: "2023-03-31",
		WindowEnd:   "2023-01-01",
	})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("inverted window is not an error, expected 200, got %d", resp.StatusCode)
	}
	schedule := decode[ScheduleDTO](t, resp)
	if len(schedule.Records) != 0 {
		t.Errorf("expected no records, got %d", len(schedule.Records))
	}
}

func TestComputeSchedule_Validation(t *testing.T) {
	srv, _ := newTestServer()
	defer srv.Close()

	cases := []struct {
		name string
		req  ScheduleRequest
	}{
		{"zero rent", ScheduleRequest{
			Terms:       TermsDTO{BaseMonthlyRent: 0, LeaseStart: "2023-01-01", DueDay: 1},
			WindowStart: "2023-01-01", WindowEnd: "2023-03-31",
		}},
		{"due day out of range", ScheduleRequest{
			Terms:       TermsDTO{BaseMonthlyRent: 100, LeaseStart: "2023-01-01", DueDay: 32},
			WindowStart: "2023-01-01", WindowEnd: "2023-03-31",
		}},
		{"bad lease start", ScheduleRequest{
			Terms:       TermsDTO{BaseMonthlyRent: 100, LeaseStart: "01/01/2023", DueDay: 1},
			WindowStart: "2023-01-01", WindowEnd: "2023-03-31",
		}},
		{"bad window", ScheduleRequest{
			Terms:       TermsDTO{BaseMonthlyRent: 100, LeaseStart: "2023-01-01", DueDay: 1},
			WindowStart: "not-a-date", WindowEnd: "2023-03-31",
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			resp := postJSON(t, srv.URL+"/api/schedule", c.req)
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", resp.StatusCode)
			}
		})
	}
}

// =============================================================================
// LEASE CRUD
// =============================================================================

func TestLeaseLifecycle(t *testing.T) {
	srv, _ := newTestServer()
	defer srv.Close()

	// Create
	resp := postJSON(t, srv.URL+"/api/leases", CreateLeaseRequest{
		ID:       "lease-1",
		UnitName: "Unit 4B",
		Terms: TermsDTO{
			BaseMonthlyRent:       300,
			LeaseStart:            "2023-06-15",
			DueDay:                15,
			ChangeFrequencyMonths: 1,
			ChangeRate:            -0.1,
		},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	created := decode[LeaseDTO](t, resp)
	if created.ID != "lease-1" || created.UnitName != "Unit 4B" {
		t.Errorf("unexpected created lease: %+v", created)
	}

	// List
	listResp, err := http.Get(srv.URL + "/api/leases")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	leases := decode[[]LeaseDTO](t, listResp)
	if len(leases) != 1 {
		t.Fatalf("expected 1 lease, got %d", len(leases))
	}

	// Schedule for the stored lease: vacancy-period decreases baked in
	schedResp, err := http.Get(srv.URL + "/api/leases/lease-1/schedule?from=2023-04-01&to=2023-08-31")
	if err != nil {
		t.Fatalf("schedule failed: %v", err)
	}
	if schedResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", schedResp.StatusCode)
	}
	schedule := decode[ScheduleDTO](t, schedResp)
	if len(schedule.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(schedule.Records))
	}
	for i, r := range schedule.Records {
		if r.RentAmount != 243 {
			t.Errorf("record %d: expected 243, got %v", i, r.RentAmount)
		}
	}

	// Delete
	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/leases/lease-1", nil)
	delResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	delResp.Body.Close()
	if delResp.StatusCode != http.StatusNoContent {
		t.Errorf("expected 204, got %d", delResp.StatusCode)
	}

	// Get after delete
	getResp, err := http.Get(srv.URL + "/api/leases/lease-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	getResp.Body.Close()
	if getResp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", getResp.StatusCode)
	}
}

func TestCreateLease_MissingID_Rejected(t *testing.T) {
	srv, _ := newTestServer()
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/api/leases", CreateLeaseRequest{
		UnitName: "Unit 4B",
		Terms:    TermsDTO{BaseMonthlyRent: 100, LeaseStart: "2023-01-01", DueDay: 1},
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}

func TestGetLeaseSchedule_UnknownLease_NotFound(t *testing.T) {
	srv, _ := newTestServer()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/leases/nope/schedule?from=2023-01-01&to=2023-03-31")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}
