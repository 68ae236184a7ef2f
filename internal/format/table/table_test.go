package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"Dynamite", "BTS", "95"},
		{"Shape of You", "Ed Sheeran", "92"},
	}
	got := Format(rows, []Column{{}, {}, {Align: AlignRight}})
	want := []string{
		"Dynamite      BTS         95",
		"Shape of You  Ed Sheeran  92",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatCapsWideColumns(t *testing.T) {
	rows := [][]string{{"Rolling in the Deep", "Adele"}}
	got := Format(rows, []Column{{Max: 8}})
	if got[0] != "Rolling…  Adele" {
		t.Fatalf("expected capped title, got %q", got[0])
	}
}

func TestFormatMeasuresCells(t *testing.T) {
	rows := [][]string{{"夜に駆ける", "x"}, {"abc", "y"}}
	got := Format(rows, nil)
	if got[1] != "abc         y" {
		t.Fatalf("expected wide runes to count as two cells, got %q", got[1])
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestFormatRaggedRows(t *testing.T) {
	got := Format([][]string{{"a", "b"}, {"long"}}, nil)
	if got[0] != "a     b" || got[1] != "long  " {
		t.Fatalf("unexpected layout %q", got)
	}
}
