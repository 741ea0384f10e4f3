package record

import (
	"reflect"
	"strings"
	"testing"
)

func named(names ...string) []Record {
	out := make([]Record, len(names))
	for i, n := range names {
		out[i] = Record{NotificationNumber: string(rune('A' + i)), ProductName: n}
	}
	return out
}

func productNames(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ProductName
	}
	return out
}

func TestFilterMatchesExactSubstringPreservingOrder(t *testing.T) {
	records := named("Tea A", "Coffee", "Tea B", "green tea", "TEA C")
	got := productNames(Filter(records, "Tea"))
	want := []string{"Tea A", "Tea B"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFilterDoesNotTrimQuery(t *testing.T) {
	records := named("Tea A", "TeaB")
	got := productNames(Filter(records, "Tea "))
	if !reflect.DeepEqual(got, []string{"Tea A"}) {
		t.Fatalf("expected untrimmed match, got %v", got)
	}
}

func TestFilterEmptyQueryReturnsAll(t *testing.T) {
	records := named("b", "a", "c")
	got := Filter(records, "")
	if !reflect.DeepEqual(got, records) {
		t.Fatalf("expected all records, got %v", got)
	}
	got[0].ProductName = "mutated"
	if records[0].ProductName != "b" {
		t.Fatalf("expected filter result to be a copy")
	}
}

func TestFilterEmptyInput(t *testing.T) {
	for _, q := range []string{"", "x", "日本"} {
		if got := Filter(nil, q); len(got) != 0 {
			t.Fatalf("expected empty result for %q, got %v", q, got)
		}
	}
}

func TestFilterNoMatch(t *testing.T) {
	got := Filter(named("Tea A", "Tea B"), "Z")
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", got)
	}
}

func TestFilterProperties(t *testing.T) {
	records := named("緑茶 A", "Tea A", "ほうじ茶", "Tea B", "", "麦茶 Tea")
	queries := []string{"", "Tea", "茶", "A", "Z", " ", "tea"}
	for _, q := range queries {
		got := Filter(records, q)
		// sub-sequence with original order
		j := 0
		for _, r := range got {
			for j < len(records) && records[j] != r {
				j++
			}
			if j == len(records) {
				t.Fatalf("query %q: result %v is not an ordered sub-sequence", q, productNames(got))
			}
			j++
		}
		kept := make(map[Record]bool, len(got))
		for _, r := range got {
			kept[r] = true
			if !strings.Contains(r.ProductName, q) {
				t.Fatalf("query %q: %q should not match", q, r.ProductName)
			}
		}
		for _, r := range records {
			if !kept[r] && strings.Contains(r.ProductName, q) {
				t.Fatalf("query %q: %q was wrongly excluded", q, r.ProductName)
			}
		}
		if again := Filter(got, q); !reflect.DeepEqual(again, got) {
			t.Fatalf("query %q: filter is not idempotent: %v vs %v", q, productNames(again), productNames(got))
		}
	}
}

func TestSuggestRanksLooseMatches(t *testing.T) {
	records := named("Green Tea", "Coffee", "Barley Tea")
	got := Suggest(records, "tea", 5)
	if len(got) != 2 {
		t.Fatalf("expected two suggestions, got %v", got)
	}
	for _, name := range got {
		if name == "Coffee" {
			t.Fatalf("unexpected suggestion %q", name)
		}
	}
	if got := Suggest(records, "tea", 1); len(got) != 1 {
		t.Fatalf("expected limit to apply, got %v", got)
	}
	if got := Suggest(records, "  ", 3); got != nil {
		t.Fatalf("expected no suggestions for blank query, got %v", got)
	}
}

func TestEmptyRecord(t *testing.T) {
	if !Empty().IsEmpty() {
		t.Fatalf("expected Empty to be empty")
	}
	r := Record{Assessment: "A"}
	if r.IsEmpty() {
		t.Fatalf("expected populated record to be non-empty")
	}
	fields := r.Fields()
	if len(fields) != 6 || fields[4].Value != "A" {
		t.Fatalf("unexpected fields %#v", fields)
	}
}
