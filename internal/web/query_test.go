package web

import (
	"net/url"
	"strconv"
	"testing"

	"github.com/st-little/anshin-meshi/internal/record"
	uistate "github.com/st-little/anshin-meshi/internal/ui/state"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	records := []record.Record{{NotificationNumber: "A001", ProductName: "Tea A"}}
	testCases := []struct {
		name  string
		query string
	}{
		{"empty", ""},
		{"search", "q=Tea+A"},
		{"menu", "menu=1"},
		{"static modals", "modal=about&modal=privacy"},
		{"detail", "q=Tea&record=0"},
		{"everything", "menu=1&modal=about&modal=terms&modal=privacy&q=%E8%8C%B6&record=0"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			values, err := url.ParseQuery(tc.query)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			st := DecodeState(values, records)
			again := DecodeState(EncodeState(st, records), records)
			if again != st {
				t.Fatalf("round trip changed state: %#v != %#v", again, st)
			}
		})
	}
}

func TestDecodeIgnoresUnknownValues(t *testing.T) {
	values := url.Values{"modal": {"detail", "nope"}, "menu": {"yes"}, "record": {"missing", "3"}}
	st := DecodeState(values, nil)
	if st != uistate.New() {
		t.Fatalf("expected initial state, got %#v", st)
	}
}

func TestHrefAppliesAction(t *testing.T) {
	st := uistate.New()
	if got := href(st, nil); got != "/" {
		t.Fatalf("expected bare path, got %q", got)
	}
	got := href(uistate.Reduce(st, uistate.ToggleBurger{}), nil)
	if got != "/?menu=1" {
		t.Fatalf("expected menu link, got %q", got)
	}
}

func TestRecordIsIdentifiedByPosition(t *testing.T) {
	records := []record.Record{
		{NotificationNumber: "X1", ProductName: "Tea A"},
		{NotificationNumber: "X1", ProductName: "Tea B"},
		{NotificationNumber: "", ProductName: "Tea C"},
	}
	for i, r := range records {
		st := uistate.Reduce(uistate.New(), uistate.SelectRecord{Record: r})
		values := EncodeState(st, records)
		if got := values.Get("record"); got != strconv.Itoa(i) {
			t.Fatalf("expected record=%d for %q, got %q", i, r.ProductName, got)
		}
		decoded := DecodeState(values, records)
		if !decoded.DetailOpen || decoded.Selected != r {
			t.Fatalf("expected %q selected, got %#v", r.ProductName, decoded)
		}
	}
	for _, raw := range []string{"-1", "3", "x", "1.0"} {
		if st := DecodeState(url.Values{"record": {raw}}, records); st.DetailOpen {
			t.Fatalf("record=%s must not open the dialog", raw)
		}
	}
}
