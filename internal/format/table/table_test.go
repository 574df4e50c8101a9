package table

import (
	"reflect"
	"testing"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"member", "likes"},
		{"ann", "70"},
		{"bobby", "5"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight})
	want := []string{
		"member  likes",
		"ann        70",
		"bobby       5",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected rows:\n%q\nwant:\n%q", got, want)
	}
}

func TestFormatIgnoresANSIWidthAndPadsShortRows(t *testing.T) {
	rows := [][]string{
		{"\x1b[1mab\x1b[0m", "x"},
		{"abcd"},
	}
	got := Format(rows, nil)
	if got[0] != "\x1b[1mab\x1b[0m    x" {
		t.Fatalf("expected styled cell padded by visible width, got %q", got[0])
	}
	if got[1] != "abcd  " {
		t.Fatalf("expected short row padded with empty cell, got %q", got[1])
	}
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for empty input")
	}
}
