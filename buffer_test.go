package vtty

import "testing"

func TestLineSetReplacePadsWithSpaces(t *testing.T) {
	var l line
	l.setReplace(3, newDecoratedChar('x', defaultTextStyle()))
	if got := l.String(); got != "   x" {
		t.Fatalf("got %q, want %q", got, "   x")
	}
}

func TestLineInsertAtShiftsRight(t *testing.T) {
	var l line
	for i, c := range "abc" {
		l.setReplace(i, newDecoratedChar(c, defaultTextStyle()))
	}
	l.insertAt(1, newDecoratedChar('Z', defaultTextStyle()), 10)
	if got := l.String(); got != "aZbc" {
		t.Fatalf("got %q, want %q", got, "aZbc")
	}
}

func TestLineInsertAtTruncatesAtMaxLen(t *testing.T) {
	var l line
	for i, c := range "abcd" {
		l.setReplace(i, newDecoratedChar(c, defaultTextStyle()))
	}
	l.insertAt(0, newDecoratedChar('Z', defaultTextStyle()), 4)
	if got := l.String(); got != "Zabc" {
		t.Fatalf("got %q, want %q", got, "Zabc")
	}
}

func TestLineTruncateFrom(t *testing.T) {
	var l line
	for i, c := range "hello" {
		l.setReplace(i, newDecoratedChar(c, defaultTextStyle()))
	}
	l.truncateFrom(2)
	if got := l.String(); got != "he" {
		t.Fatalf("got %q, want %q", got, "he")
	}
}

func TestLineDropPrefixThrough(t *testing.T) {
	var l line
	for i, c := range "hello" {
		l.setReplace(i, newDecoratedChar(c, defaultTextStyle()))
	}
	l.dropPrefixThrough(1)
	if got := l.String(); got != "llo" {
		t.Fatalf("got %q, want %q", got, "llo")
	}
}

func TestLineDeleteRange(t *testing.T) {
	var l line
	for i, c := range "hello" {
		l.setReplace(i, newDecoratedChar(c, defaultTextStyle()))
	}
	l.deleteRange(1, 2)
	if got := l.String(); got != "hlo" {
		t.Fatalf("got %q, want %q", got, "hlo")
	}
}

func TestScrollbackBufferEnsureLineGrowsOnDemand(t *testing.T) {
	b := newScrollbackBuffer(0)
	b.ensureLine(5)
	if b.len() != 6 {
		t.Fatalf("got len %d, want 6", b.len())
	}
}

func TestScrollbackBufferTrimDropsFromFront(t *testing.T) {
	b := newScrollbackBuffer(3)
	for i := 0; i < 3; i++ {
		b.ensureLine(i)
		b.at(i).setReplace(0, newDecoratedChar(rune('a'+i), defaultTextStyle()))
	}
	b.ensureLine(3)
	b.at(3).setReplace(0, newDecoratedChar('d', defaultTextStyle()))

	dropped := b.trim()
	if dropped != 1 {
		t.Fatalf("got dropped %d, want 1", dropped)
	}
	if b.len() != 3 {
		t.Fatalf("got len %d, want 3", b.len())
	}
	if got := b.at(0).String(); got != "b" {
		t.Fatalf("got front line %q, want %q", got, "b")
	}
}

func TestScrollbackBufferTrimNoopUnderLimit(t *testing.T) {
	b := newScrollbackBuffer(10)
	b.ensureLine(2)
	if dropped := b.trim(); dropped != 0 {
		t.Fatalf("got dropped %d, want 0", dropped)
	}
}

func TestScrollbackBufferTrimUnboundedWhenZero(t *testing.T) {
	b := newScrollbackBuffer(0)
	b.ensureLine(100)
	if dropped := b.trim(); dropped != 0 {
		t.Fatalf("maxLines=0 should mean unbounded, got dropped=%d", dropped)
	}
}

func TestScrollbackBufferDropLast(t *testing.T) {
	b := newScrollbackBuffer(0)
	b.ensureLine(2)
	b.dropLast()
	if b.len() != 2 {
		t.Fatalf("got len %d, want 2", b.len())
	}
}
