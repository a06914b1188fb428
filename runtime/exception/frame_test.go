package exception

import "testing"

func TestFrameString(t *testing.T) {
	f := Frame{R0: 0x1, R1: 0x22, R2: 0x333, R3: 0x4444, R12: 0xc, LR: 0xfffffff9, PC: 0x08000131, XPSR: 0x01000000}

	want := "Frame { r0: 0x00000001, r1: 0x00000022, r2: 0x00000333, r3: 0x00004444, r12: 0x0000000c, lr: 0xfffffff9, pc: 0x08000131, xpsr: 0x01000000 }"
	if got := f.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestFrameWords(t *testing.T) {
	w := [FrameWords]uint32{1, 2, 3, 4, 5, 6, 7, 8}
	f := FrameFromWords(w)
	if f.R12 != 5 || f.XPSR != 8 {
		t.Errorf("FrameFromWords placed words wrong: %v", &f)
	}
	if f.Words() != w {
		t.Errorf("Words() = %v, want %v", f.Words(), w)
	}
}

func TestFrameIsThumb(t *testing.T) {
	tests := []struct {
		xpsr uint32
		want bool
	}{
		{0x01000000, true},
		{0x01000003, true},
		{0x00000000, false},
		{0xfeffffff, false},
	}
	for _, tc := range tests {
		f := Frame{XPSR: tc.xpsr}
		if got := f.IsThumb(); got != tc.want {
			t.Errorf("Frame{XPSR: %#08x}.IsThumb() = %v, want %v", tc.xpsr, got, tc.want)
		}
	}
}
