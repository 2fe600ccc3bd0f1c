// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "testing"

func TestParseFont(t *testing.T) {
	tests := []struct {
		in   string
		want Font
	}{
		{"12px Arial", Font{Style: "normal", Weight: 400, Size: 12, Family: "Arial"}},
		{"600 13px Arial", Font{Style: "normal", Weight: 600, Size: 13, Family: "Arial"}},
		{"italic bold 16px Georgia, serif", Font{Style: "italic", Weight: 700, Size: 16, Family: "Georgia, serif"}},
		{"normal small-caps 300 10px/1.5 monospace", Font{Style: "normal", Weight: 300, Size: 10, Family: "monospace"}},
		{"12pt Helvetica", Font{Style: "normal", Weight: 400, Size: 16, Family: "Helvetica"}},
		{"oblique 9px \"Go Mono\"", Font{Style: "oblique", Weight: 400, Size: 9, Family: "\"Go Mono\""}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFont(tt.in)
			if err != nil {
				t.Fatalf("ParseFont(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseFont(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFontInvalid(t *testing.T) {
	for _, in := range []string{"", "Arial", "12px", "bold", "12em Arial", "-3px Arial"} {
		if _, err := ParseFont(in); err == nil {
			t.Errorf("ParseFont(%q) error = nil, want error", in)
		}
	}
}

func TestFontString(t *testing.T) {
	tests := []struct {
		f    Font
		want string
	}{
		{Font{Style: "normal", Weight: 400, Size: 12, Family: "Arial"}, "12px Arial"},
		{Font{Style: "italic", Weight: 600, Size: 13, Family: "Arial"}, "italic 600 13px Arial"},
		{Font{Size: 10.5, Family: "sans-serif"}, "10.5px sans-serif"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestFontWith(t *testing.T) {
	f := Font{Style: "italic", Weight: 400, Size: 24, Family: "Arial"}
	g := f.WithSize(13).WithWeight(WeightSemiBold)

	if g.Size != 13 || g.Weight != 600 {
		t.Errorf("WithSize/WithWeight = %+v", g)
	}
	if g.Family != "Arial" || !g.Italic() || !g.Bold() {
		t.Errorf("family/style not preserved: %+v", g)
	}
	if f.Size != 24 {
		t.Error("WithSize modified the receiver")
	}
}
