package text

import "testing"

func TestResolveDirection(t *testing.T) {
	tests := []struct {
		name string
		text string
		base Direction
		want Direction
	}{
		{"empty", "", DirectionAuto, DirectionLTR},
		{"latin", "hello", DirectionAuto, DirectionLTR},
		{"hebrew", "שלום", DirectionAuto, DirectionRTL},
		{"arabic", "مرحبا", DirectionAuto, DirectionRTL},
		{"digits then hebrew", "123 שלום", DirectionAuto, DirectionRTL},
		{"latin then hebrew", "a שלום", DirectionAuto, DirectionLTR},
		{"neutral only", "123 !?", DirectionAuto, DirectionLTR},
		{"explicit wins", "שלום", DirectionLTR, DirectionLTR},
		{"explicit rtl", "hello", DirectionRTL, DirectionRTL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveDirection(tt.text, tt.base); got != tt.want {
				t.Errorf("ResolveDirection(%q, %v) = %v, want %v", tt.text, tt.base, got, tt.want)
			}
		})
	}
}

func TestVisualRuns(t *testing.T) {
	t.Run("ltr only", func(t *testing.T) {
		runs := visualRuns("abc", DirectionLTR)
		if len(runs) != 1 || runs[0].start != 0 || runs[0].end != 3 || runs[0].rtl() {
			t.Errorf("runs = %+v", runs)
		}
	})

	t.Run("hebrew inside latin", func(t *testing.T) {
		runs := visualRuns("ab אב cd", DirectionLTR)
		checkCoverage(t, runs, 8)
		var rtl []bidiRun
		for _, r := range runs {
			if r.rtl() {
				rtl = append(rtl, r)
			}
		}
		if len(rtl) != 1 || rtl[0].start != 3 || rtl[0].end != 5 {
			t.Errorf("rtl runs = %+v, want one run [3,5)", rtl)
		}
		if runs[0].start != 0 {
			t.Errorf("first visual run starts at %d, want 0", runs[0].start)
		}
	})

	t.Run("latin inside hebrew", func(t *testing.T) {
		runs := visualRuns("אב cd", DirectionRTL)
		checkCoverage(t, runs, 5)
		if runs[0].start != 3 || runs[0].rtl() {
			t.Errorf("first visual run = %+v, want the latin run at 3", runs[0])
		}
		if last := runs[len(runs)-1]; last.start != 0 || !last.rtl() {
			t.Errorf("last visual run = %+v, want the hebrew run at 0", last)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if runs := visualRuns("", DirectionLTR); runs != nil {
			t.Errorf("runs = %+v, want nil", runs)
		}
	})
}

func TestReorderRuns(t *testing.T) {
	runs := []bidiRun{
		{start: 0, end: 1, level: 0},
		{start: 1, end: 2, level: 1},
		{start: 2, end: 3, level: 2},
		{start: 3, end: 4, level: 1},
		{start: 4, end: 5, level: 0},
	}
	reorderRuns(runs)
	want := []int{0, 3, 2, 1, 4}
	for i, r := range runs {
		if r.start != want[i] {
			t.Fatalf("order = %+v, want starts %v", runs, want)
		}
	}
}

// checkCoverage verifies runs cover [0, n) exactly once.
func checkCoverage(t *testing.T, runs []bidiRun, n int) {
	t.Helper()
	seen := make([]bool, n)
	for _, r := range runs {
		for i := r.start; i < r.end; i++ {
			if seen[i] {
				t.Fatalf("rune %d in two runs: %+v", i, runs)
			}
			seen[i] = true
		}
	}
	for i, ok := range seen {
		if !ok {
			t.Fatalf("rune %d not covered: %+v", i, runs)
		}
	}
}
