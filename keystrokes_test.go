package vtty

import (
	"bytes"
	"testing"
)

func TestEncodeEnter(t *testing.T) {
	if got := EncodeEnter(); !bytes.Equal(got, []byte{'\r'}) {
		t.Fatalf("got %v, want CR", got)
	}
}

func TestEncodeBackspace(t *testing.T) {
	if got := EncodeBackspace(); !bytes.Equal(got, []byte{byteBackspace}) {
		t.Fatalf("got %v, want BS (0x08)", got)
	}
}

func TestEncodeCtrlLetter(t *testing.T) {
	cases := []struct {
		letter byte
		want   byte
	}{
		{'a', 1},
		{'A', 1},
		{'c', 3},
		{'z', 26},
	}
	for _, tc := range cases {
		got := EncodeCtrlLetter(tc.letter)
		if len(got) != 1 || got[0] != tc.want {
			t.Errorf("EncodeCtrlLetter(%q) = %v, want [%d]", tc.letter, got, tc.want)
		}
	}
}

func TestEncodeCtrlLetterPanicsOnNonLetter(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic for a non-letter argument")
		}
	}()
	EncodeCtrlLetter('1')
}

func TestEncodeArrowKeyNormalMode(t *testing.T) {
	got := EncodeArrowKey(ArrowUp, false)
	if !bytes.Equal(got, []byte{0x1B, '[', 'A'}) {
		t.Fatalf("got %v, want ESC [ A", got)
	}
}

func TestEncodeArrowKeyApplicationMode(t *testing.T) {
	got := EncodeArrowKey(ArrowDown, true)
	if !bytes.Equal(got, []byte{0x1B, 'O', 'B'}) {
		t.Fatalf("got %v, want ESC O B", got)
	}
}
