package convert

import (
	"runtime"
	"strconv"
	"testing"
)

func TestRegisterAndConvert(t *testing.T) {
	table := NewTable()
	rule := Register(table, func(v int) string { return strconv.Itoa(v) })
	defer runtime.KeepAlive(rule)

	got, err := Convert[string](table, 5)
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if got != "5" {
		t.Fatalf("Convert = %q, want %q", got, "5")
	}
}

func TestConvertWithNoRuleFails(t *testing.T) {
	table := NewTable()
	_, err := Convert[string](table, 5)
	if err == nil {
		t.Fatal("expected NoConversionRuleError")
	}
	if _, ok := err.(*NoConversionRuleError); !ok {
		t.Fatalf("error = %T, want *NoConversionRuleError", err)
	}
}

func TestTryConvertFallsBack(t *testing.T) {
	table := NewTable()
	got := TryConvert(table, 5, "fallback")
	if got != "fallback" {
		t.Fatalf("TryConvert = %q, want fallback", got)
	}
}

func TestRuleExpiresWhenRegistrantDropsReference(t *testing.T) {
	table := NewTable()
	func() {
		rule := Register(table, func(v int) string { return strconv.Itoa(v) })
		runtime.KeepAlive(rule)
	}()

	runtime.GC()
	runtime.GC()

	if _, err := Convert[string](table, 5); err == nil {
		t.Fatal("expected the rule to have expired after its registrant dropped it")
	}
}
