package slug

import (
	"strings"
	"testing"
)

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Sunny Loft Apartments", "sunny-loft-apartments"},
		{"  Trimmed  Spaces  ", "trimmed-spaces"},
		{"Château №5 & Co.", "chteau-5-co"},
		{"--already--dashed--", "already-dashed"},
		{"UPPER case", "upper-case"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tc := range cases {
		if got := Make(tc.in); got != tc.want {
			t.Errorf("Make(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMakeTruncatesLongTitles(t *testing.T) {
	got := Make(strings.Repeat("a", 100))
	if len(got) != MaxLength {
		t.Fatalf("expected slug trimmed to %d chars, got %d", MaxLength, len(got))
	}
}

func TestForProperty(t *testing.T) {
	if got := ForProperty("Sunny Loft Apartments", 7); got != "sunny-loft-apartments-7" {
		t.Fatalf("unexpected subdomain: %q", got)
	}
	if got := ForProperty("!!!", 12); got != "property-12" {
		t.Fatalf("expected fallback subdomain, got %q", got)
	}

	long := ForProperty(strings.Repeat("b", 100), 12345)
	if len(long) > MaxLength {
		t.Fatalf("subdomain exceeds DNS label limit: %d chars", len(long))
	}
	if !strings.HasSuffix(long, "-12345") {
		t.Fatalf("expected id suffix to survive truncation, got %q", long)
	}
}

func TestValid(t *testing.T) {
	valid := []string{"a", "my-lofts", "block9", "a1-b2-c3"}
	for _, s := range valid {
		if !Valid(s) {
			t.Errorf("Valid(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "-leading", "UPPER", "under_score", "dot.com", strings.Repeat("a", 64)}
	for _, s := range invalid {
		if Valid(s) {
			t.Errorf("Valid(%q) = true, want false", s)
		}
	}
}
