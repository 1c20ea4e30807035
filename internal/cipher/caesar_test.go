package cipher

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		shift int
		want  int
	}{
		{0, 0},
		{3, 3},
		{26, 0},
		{52, 0},
		{29, 3},
		{-3, 23},
		{-26, 0},
		{-29, 23},
	}
	for _, tc := range cases {
		if got := Normalize(tc.shift); got != tc.want {
			t.Fatalf("Normalize(%d) = %d, want %d", tc.shift, got, tc.want)
		}
	}
}

func TestEncode(t *testing.T) {
	cases := []struct {
		text  string
		shift int
		want  string
	}{
		{"Hello, World!", 3, "Khoor, Zruog!"},
		{"A", 29, "D"},
		{"A", -3, "X"},
		{"abc", 0, "abc"},
		{"abc", 26, "abc"},
		{"xyz", 3, "abc"},
		{"XYZ", 3, "ABC"},
		{"", 7, ""},
		{"123 .,! ñ", 5, "123 .,! ñ"},
	}
	for _, tc := range cases {
		if got := Encode(tc.text, tc.shift); got != tc.want {
			t.Fatalf("Encode(%q, %d) = %q, want %q", tc.text, tc.shift, got, tc.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	texts := []string{"", "a", "Hello, World!", "The quick brown fox 123"}
	shifts := []int{-29, -3, 0, 1, 13, 25, 26, 29, 100}
	for _, text := range texts {
		for _, shift := range shifts {
			if got := Decode(Encode(text, shift), shift); got != text {
				t.Fatalf("round trip failed for %q with shift %d: got %q", text, shift, got)
			}
		}
	}
}
