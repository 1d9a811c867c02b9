package method

import "testing"

func TestParseRoundTrip(t *testing.T) {
	for _, m := range []Method{GET, HEAD, POST, PUT, DELETE, PATCH, OPTIONS, CONNECT, TRACE} {
		if got := Parse(m.String()); got != m {
			t.Errorf("Parse(%q) = %v, want %v", m.String(), got, m)
		}
	}
	if Parse("bogus") != Unknown {
		t.Error("Parse(bogus) should be Unknown")
	}
}

func TestPredicates(t *testing.T) {
	if !GET.IsSafe() || !GET.IsIdempotent() || !GET.IsCacheable() {
		t.Error("GET should be safe, idempotent and cacheable")
	}
	if POST.IsSafe() || POST.IsIdempotent() {
		t.Error("POST should be neither safe nor idempotent")
	}
	if DELETE.AllowRequestBody() {
		t.Error("DELETE should not allow a request body")
	}
	if !PUT.AllowNoResponse() {
		t.Error("PUT should allow issuing without a response")
	}
	if GET.AllowNoResponse() {
		t.Error("GET should not make sense without a response")
	}
}

func TestSet(t *testing.T) {
	s := Set(0).Insert(GET).Insert(POST)
	if !s.Contains(GET) || !s.Contains(POST) {
		t.Fatal("set should contain inserted methods")
	}
	if s.Contains(DELETE) {
		t.Fatal("set should not contain uninserted methods")
	}
	s = s.Erase(GET)
	if s.Contains(GET) {
		t.Fatal("set should not contain erased method")
	}

	all := All()
	for m := GET; m <= TRACE; m++ {
		if !all.Contains(m) {
			t.Errorf("All() missing %v", m)
		}
	}
}
