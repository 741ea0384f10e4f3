package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/st-little/anshin-meshi/internal/record"
)

const twoTeas = `[
 {"notificationNumber":"A1","productName":"Tea A","notifierName":"N1","functionalityToDisplay":"F1","assessment":"S1","generalReviewOfEvidence":"G1"},
 {"notificationNumber":"B2","productName":"Tea B","notifierName":"N2","functionalityToDisplay":"F2","assessment":"S2","generalReviewOfEvidence":"G2"}
]`

func serve(t *testing.T, status int, body string) (*httptest.Server, *int) {
	t.Helper()
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if got := r.URL.Query().Get("v"); got != "v3" {
			t.Errorf("expected v=v3, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestEndpoint(t *testing.T) {
	got := Endpoint("https://script.google.com/macros/s/", "AKfy123", "2")
	want := "https://script.google.com/macros/s/AKfy123/exec?v=v2"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFetchDecodesRecordsInServerOrder(t *testing.T) {
	srv, hits := serve(t, http.StatusOK, twoTeas)
	f := New(Endpoint(srv.URL, "dep", "3"), srv.Client())
	records, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 || records[0].ProductName != "Tea A" || records[1].ProductName != "Tea B" {
		t.Fatalf("unexpected records %#v", records)
	}
	want := record.Record{
		NotificationNumber:      "A1",
		ProductName:             "Tea A",
		NotifierName:            "N1",
		FunctionalityToDisplay:  "F1",
		Assessment:              "S1",
		GeneralReviewOfEvidence: "G1",
	}
	if records[0] != want {
		t.Fatalf("expected %#v, got %#v", want, records[0])
	}
	if *hits != 1 {
		t.Fatalf("expected exactly one request, got %d", *hits)
	}
}

func TestFetchFailuresCollapse(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, twoTeas},
		{"not found", http.StatusNotFound, ""},
		{"malformed json", http.StatusOK, `[{"productName":`},
		{"object instead of array", http.StatusOK, `{"productName":"Tea"}`},
		{"null body", http.StatusOK, `null`},
		{"missing field", http.StatusOK, `[{"productName":"Tea"}]`},
		{"trailing data", http.StatusOK, twoTeas + `]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv, _ := serve(t, tc.status, tc.body)
			_, err := New(Endpoint(srv.URL, "dep", "3"), srv.Client()).Fetch(context.Background())
			if !errors.Is(err, ErrFetchFailed) {
				t.Fatalf("expected ErrFetchFailed, got %v", err)
			}
		})
	}
}

func TestFetchNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	_, err := New(url, nil).Fetch(context.Background())
	if !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("expected ErrFetchFailed, got %v", err)
	}
}

func TestFetchEmptyArrayIsSuccess(t *testing.T) {
	srv, _ := serve(t, http.StatusOK, `[]`)
	cell := NewCell()
	res := New(Endpoint(srv.URL, "dep", "3"), srv.Client()).Start(context.Background(), cell)
	if res.Status != Success || len(res.Records) != 0 || res.Records == nil {
		t.Fatalf("expected empty success, got %#v", res)
	}
}

func TestStartSettlesCell(t *testing.T) {
	srv, _ := serve(t, http.StatusBadGateway, "")
	cell := NewCell()
	if cell.Snapshot().Status != Pending {
		t.Fatalf("expected new cell to be pending")
	}
	res := New(Endpoint(srv.URL, "dep", "3"), srv.Client()).Start(context.Background(), cell)
	if res.Status != Failure || !errors.Is(res.Err, ErrFetchFailed) {
		t.Fatalf("expected failure result, got %#v", res)
	}
}

func TestCellSettlesOnce(t *testing.T) {
	cell := NewCell()
	if !cell.Settle([]record.Record{{ProductName: "Tea A"}}, nil) {
		t.Fatalf("expected first settle to apply")
	}
	if cell.Settle(nil, errors.New("late")) {
		t.Fatalf("expected second settle to be ignored")
	}
	res := cell.Snapshot()
	if res.Status != Success || len(res.Records) != 1 || res.Err != nil {
		t.Fatalf("expected success to stick, got %#v", res)
	}
	res.Records[0].ProductName = "mutated"
	if cell.Snapshot().Records[0].ProductName != "Tea A" {
		t.Fatalf("expected snapshot to be a copy")
	}
}

func TestCellConcurrentSettle(t *testing.T) {
	cell := NewCell()
	var wg sync.WaitGroup
	applied := make(chan bool, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var err error
			if i%2 == 0 {
				err = errors.New("x")
			}
			applied <- cell.Settle(nil, err)
		}(i)
	}
	wg.Wait()
	close(applied)
	count := 0
	for ok := range applied {
		if ok {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one settle, got %d", count)
	}
	if !cell.Snapshot().Settled() {
		t.Fatalf("expected settled cell")
	}
}

func TestStatusString(t *testing.T) {
	for status, want := range map[Status]string{Pending: "pending", Success: "success", Failure: "failure", Status(9): "unknown"} {
		if got := status.String(); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}
