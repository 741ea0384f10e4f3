package web

import (
	"net/url"
	"strconv"

	"github.com/st-little/anshin-meshi/internal/record"
	uistate "github.com/st-little/anshin-meshi/internal/ui/state"
)

// Query parameters carrying the view state between requests.
const (
	paramSearch = "q"
	paramMenu   = "menu"
	paramModal  = "modal"
	paramRecord = "record"
)

// DecodeState rebuilds the view state from query parameters by replaying the
// corresponding actions through the reducer. The record parameter is the
// position of the selected record in the fetched list, in server order;
// out-of-range or malformed positions leave the detail dialog closed.
func DecodeState(values url.Values, records []record.Record) uistate.State {
	st := uistate.New()
	st = uistate.Reduce(st, uistate.SetSearch{Text: values.Get(paramSearch)})
	if values.Get(paramMenu) == "1" {
		st = uistate.Reduce(st, uistate.ToggleBurger{})
	}
	for _, name := range values[paramModal] {
		m, ok := uistate.ParseModal(name)
		if !ok || m == uistate.ModalDetail || st.ModalOpen(m) {
			continue
		}
		st = uistate.Reduce(st, uistate.ToggleModal{Modal: m})
	}
	if raw := values.Get(paramRecord); raw != "" {
		if idx, err := strconv.Atoi(raw); err == nil && idx >= 0 && idx < len(records) {
			st = uistate.Reduce(st, uistate.SelectRecord{Record: records[idx]})
		}
	}
	return st
}

// EncodeState is the inverse of DecodeState for the given record list.
func EncodeState(st uistate.State, records []record.Record) url.Values {
	values := url.Values{}
	if st.Search != "" {
		values.Set(paramSearch, st.Search)
	}
	if st.BurgerOpen {
		values.Set(paramMenu, "1")
	}
	for _, m := range uistate.Modals {
		if m != uistate.ModalDetail && st.ModalOpen(m) {
			values.Add(paramModal, m.String())
		}
	}
	if st.DetailOpen {
		if idx, ok := indexOf(records, st.Selected); ok {
			values.Set(paramRecord, strconv.Itoa(idx))
		}
	}
	return values
}

// href returns the link that leads to the given state.
func href(st uistate.State, records []record.Record) string {
	values := EncodeState(st, records)
	if len(values) == 0 {
		return "/"
	}
	return "/?" + values.Encode()
}

// indexOf finds r by value. Records equal in every field are
// indistinguishable, so the first such position is as good as any.
func indexOf(records []record.Record, r record.Record) (int, bool) {
	for i := range records {
		if records[i] == r {
			return i, true
		}
	}
	return 0, false
}
