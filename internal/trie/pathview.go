package trie

// PathView is a cheap, allocation-free view over a slash-delimited
// (or otherwise delimited) path string. Segments are yielded with
// leading, trailing and repeated separators collapsed away, mirroring
// the source library's topic_view.
type PathView struct {
	s   string
	sep byte
}

// NewPathView wraps s for iteration using sep as the segment
// delimiter.
func NewPathView(s string, sep byte) PathView { return PathView{s: s, sep: sep} }

func (p PathView) String() string { return p.s }

// IsAbsolute reports whether the path begins with the separator. The
// distinction is informational only: every topic is absolute once
// resolved against a trie root.
func (p PathView) IsAbsolute() bool { return len(p.s) > 0 && p.s[0] == p.sep }

// SegmentIter is a stateful cursor over a PathView's segments.
type SegmentIter struct {
	s   string
	sep byte
	pos int
}

// Iter returns a fresh cursor positioned at the start of the path.
func (p PathView) Iter() *SegmentIter { return &SegmentIter{s: p.s, sep: p.sep} }

// Next returns the next non-empty segment and its start offset within
// the original string, or ok=false once segments are exhausted.
func (it *SegmentIter) Next() (seg string, start int, ok bool) {
	n := len(it.s)
	p := it.pos
	for p < n && it.s[p] == it.sep {
		p++
	}
	start = p
	for p < n && it.s[p] != it.sep {
		p++
	}
	it.pos = p
	if start == p {
		return "", 0, false
	}
	return it.s[start:p], start, true
}

// Segments materializes every segment in order. Prefer Iter on hot
// paths that don't need a slice.
func (p PathView) Segments() []string {
	it := p.Iter()
	var out []string
	for seg, _, ok := it.Next(); ok; seg, _, ok = it.Next() {
		out = append(out, seg)
	}
	return out
}

// LastID returns the final segment of the path, or "" if the path has
// no segments.
func (p PathView) LastID() string {
	it := p.Iter()
	last := ""
	for seg, _, ok := it.Next(); ok; seg, _, ok = it.Next() {
		last = seg
	}
	return last
}

// Parent returns the path with its final segment removed. Trailing
// separators before the removed segment are kept, matching the
// source library's behavior.
func (p PathView) Parent() string {
	it := p.Iter()
	cut := 0
	for {
		_, start, ok := it.Next()
		if !ok {
			break
		}
		cut = start
	}
	return p.s[:cut]
}
