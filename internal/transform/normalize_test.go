package transform

import "testing"

func TestNormalizeNull(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"nan", ""},
		{"NaN", ""},
		{"none", ""},
		{"None", ""},
		{"null", ""},
		{"NULL", ""},
		{"abc", "abc"},
		{"  abc  ", "abc"},
		{"NAN", "NAN"}, // not in the closed token set
		{"0", "0"},
	}

	for _, tc := range cases {
		if got := NormalizeNull(tc.in); got != tc.want {
			t.Errorf("NormalizeNull(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStandardizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"9876543210", "+91-9876543210"},
		{"919876543210", "+91-9876543210"},
		{"+91-9876543210", "+91-9876543210"},
		{"(987) 654-3210", "+91-9876543210"},
		{"98765 43210", "+91-9876543210"},
		{"123", "123"},
		{"12345678901", "12345678901"}, // 11 digits, left untouched
		{"129876543210", "129876543210"}, // 12 digits without the 91 prefix
		{"", ""},
		{"NaN", ""},
	}

	for _, tc := range cases {
		if got := StandardizePhone(tc.in); got != tc.want {
			t.Errorf("StandardizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStandardizeCategory(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"electronics", "Electronics"},
		{"HOME APPLIANCES", "Home Appliances"},
		{"hOmE aPPliaNceS", "Home Appliances"},
		{"", "Unknown"},
		{"null", "Unknown"},
		{"  books ", "Books"},
	}

	for _, tc := range cases {
		if got := StandardizeCategory(tc.in); got != tc.want {
			t.Errorf("StandardizeCategory(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantRes DateResolution
	}{
		{"2024-03-15", "2024-03-15", DateParsed},
		{"2024/03/15", "2024-03-15", DateParsed},
		{"2024-03-15 10:30:00", "2024-03-15", DateParsed},
		// second component > 12 forces month-first
		{"03/15/2024", "2024-03-15", DateResolvedByHeuristic},
		// first component > 12 forces day-first
		{"15/03/2024", "2024-03-15", DateResolvedByHeuristic},
		// ambiguous resolves month-first
		{"05/06/2024", "2024-05-06", DateResolvedByHeuristic},
		{"2024-99-99", "", DateUnparseable},
		{"13/13/2024", "", DateUnparseable},
		{"not a date", "", DateUnparseable},
		{"", "", DateUnparseable},
		{"NaN", "", DateUnparseable},
	}

	for _, tc := range cases {
		got, res := ParseDate(tc.in)
		if got != tc.want || res != tc.wantRes {
			t.Errorf("ParseDate(%q) = (%q, %d), want (%q, %d)", tc.in, got, res, tc.want, tc.wantRes)
		}
	}
}

func TestParseNumber(t *testing.T) {
	if v, ok := ParseNumber("42.5"); !ok || v != 42.5 {
		t.Fatalf("ParseNumber(42.5) = (%v, %v)", v, ok)
	}
	if _, ok := ParseNumber("abc"); ok {
		t.Fatalf("expected abc to fail numeric coercion")
	}
	if _, ok := ParseNumber("NaN"); ok {
		t.Fatalf("expected null-like value to fail numeric coercion")
	}
	if v, ok := ParseNumber(" 10 "); !ok || v != 10 {
		t.Fatalf("ParseNumber(' 10 ') = (%v, %v)", v, ok)
	}
}
