package coopbus

import "testing"

func TestTopicPathRootIsItsOwnParent(t *testing.T) {
	root := RootPath()
	if got := root.Parent().Path(); got != root.Path() {
		t.Fatalf("root.Parent().Path() = %q, want %q", got, root.Path())
	}
}

func TestTopicPathResolvesLazily(t *testing.T) {
	tp := NewTopicPath("test/" + t.Name() + "/does/not/exist/yet")
	if tp.isResolved() {
		t.Fatal("a path nothing has created yet should not resolve without Realize")
	}
	realized := tp.Realize()
	if !realized.isResolved() {
		t.Fatal("Realize should fully resolve the path")
	}
	if realized.Path() != tp.Path() {
		t.Fatalf("Realize changed the canonical path: %q -> %q", tp.Path(), realized.Path())
	}
}

func TestTopicPathParentDropsOneSegment(t *testing.T) {
	tp := NewTopicPath("test/" + t.Name() + "/a/b")
	parent := tp.Parent()
	if want := "test/" + t.Name() + "/a"; parent.Path() != want {
		t.Fatalf("Parent().Path() = %q, want %q", parent.Path(), want)
	}
}

func TestTopicPathIDReturnsLastSegment(t *testing.T) {
	tp := NewTopicPath("test/" + t.Name() + "/leaf")
	if tp.ID() != "leaf" {
		t.Fatalf("ID() = %q, want %q", tp.ID(), "leaf")
	}
}

func TestTopicPathCanonicalizesRepeatedSeparators(t *testing.T) {
	tp := NewTopicPath("test//" + t.Name() + "///leaf//")
	want := "test/" + t.Name() + "/leaf"
	if tp.Path() != want {
		t.Fatalf("Path() = %q, want %q", tp.Path(), want)
	}
}
