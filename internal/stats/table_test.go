package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"User Type", "Count"}
	rows := [][]string{
		{"Subscriber", "238,889"},
		{"Customer", "61"},
	}
	rightAlign := map[int]bool{1: true}

	lines := FormatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "User Type     Count" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "Subscriber  238,889" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "Customer         61" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := FormatTable([]string{"Station", "N"}, [][]string{{"東京駅", "1"}, {"Elm", "2"}}, nil)
	if lines[1] != "東京駅   1" {
		t.Fatalf("unexpected wide row: %q", lines[1])
	}
	if lines[2] != "Elm      2" {
		t.Fatalf("unexpected narrow row: %q", lines[2])
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if lines := FormatTable(nil, nil, nil); lines != nil {
		t.Fatalf("expected nil lines, got %v", lines)
	}
}
