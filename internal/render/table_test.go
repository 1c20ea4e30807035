package render

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Tool", "Input", "Count"}
	rows := [][]string{
		{"caesar", "Hello, World!", "12"},
		{"reverse", "abc", "3"},
	}
	rightAlign := map[int]bool{2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Tool    Input         Count" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "caesar  Hello, World!    12" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "reverse abc               3" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestTruncateCell(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly-10", 10, "exactly-10"},
		{"this is far too long", 10, "this is..."},
		{"abcdef", 2, "ab"},
		{"anything", 0, "anything"},
	}
	for _, tc := range cases {
		if got := truncateCell(tc.in, tc.width); got != tc.want {
			t.Fatalf("truncateCell(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}
