package models

import "testing"

func TestGenreListPreservesOrder(t *testing.T) {
	in := GenreList{"Jazz", "Reggae", "Swing", "Classical", "Folk"}
	v, err := in.Value()
	if err != nil {
		t.Fatal(err)
	}

	var out GenreList
	if err := out.Scan(v); err != nil {
		t.Fatal(err)
	}
	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("out[%d] = %q, want %q", i, out[i], in[i])
		}
	}
}

func TestGenreListScanNil(t *testing.T) {
	var g GenreList
	if err := g.Scan(nil); err != nil {
		t.Fatal(err)
	}
	if len(g) != 0 {
		t.Errorf("g = %v, want empty", g)
	}
}
