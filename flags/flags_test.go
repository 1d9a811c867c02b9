package flags

import "testing"

func TestDefaultServiceIgnoreIncludesRecursive(t *testing.T) {
	if DefaultServiceIgnore&Recursive == 0 {
		t.Fatal("services should ignore recursive messages by default")
	}
}

func TestDefaultSubscriberIgnoreExcludesRecursive(t *testing.T) {
	if DefaultSubscriberIgnore&Recursive != 0 {
		t.Fatal("subscribers should accept recursive messages by default")
	}
}

func TestRegularAcceptedByDefault(t *testing.T) {
	if DefaultReceiverIgnore&Regular != 0 {
		t.Fatal("regular messages should not be ignored by default")
	}
	if DefaultMessageFiltering&Regular == 0 {
		t.Fatal("messages default to carrying the Regular flag")
	}
}
