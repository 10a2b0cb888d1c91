package main

import "testing"

func TestNewPageControllerDefaults(t *testing.T) {
	p := newPageController()
	if p.Index() != 0 {
		t.Errorf("default index = %d, want 0", p.Index())
	}
	if p.Size() != 15 {
		t.Errorf("default size = %d, want 15", p.Size())
	}
}

func TestSetSizeRejectsValuesOutsideAllowedSet(t *testing.T) {
	tests := []struct {
		size int
		want bool
	}{
		{10, true},
		{15, true},
		{500, true},
		{5, false},
		{0, false},
		{-10, false},
		{16, false},
		{1000, false},
	}
	for _, tt := range tests {
		p := newPageController()
		if got := p.SetSize(tt.size); got != tt.want {
			t.Errorf("SetSize(%d) = %v, want %v", tt.size, got, tt.want)
		}
		if !tt.want && p.Size() != 15 {
			t.Errorf("SetSize(%d) changed size to %d despite rejection", tt.size, p.Size())
		}
	}
}

func TestLastPage(t *testing.T) {
	tests := []struct {
		count int
		size  int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 0},
		{10, 10, 0},
		{11, 10, 1},
		{23, 10, 2},
		{23, 15, 1},
		{500, 500, 0},
		{501, 500, 1},
	}
	for _, tt := range tests {
		p := newPageController()
		p.SetSize(tt.size)
		p.SetCount(tt.count)
		if got := p.LastPage(); got != tt.want {
			t.Errorf("count=%d size=%d: LastPage() = %d, want %d", tt.count, tt.size, got, tt.want)
		}
	}
}

func TestNavigationClampsAtBothEnds(t *testing.T) {
	p := newPageController()
	p.SetSize(10)
	p.SetCount(25) // pages 0..2

	p.PrevPage()
	if p.Index() != 0 {
		t.Errorf("PrevPage below zero: index = %d, want 0", p.Index())
	}

	for i := 0; i < 10; i++ {
		p.NextPage()
	}
	if p.Index() != 2 {
		t.Errorf("NextPage past end: index = %d, want 2", p.Index())
	}

	p.JumpTo(99)
	if p.Index() != 2 {
		t.Errorf("JumpTo(99): index = %d, want 2", p.Index())
	}
	p.JumpTo(-5)
	if p.Index() != 0 {
		t.Errorf("JumpTo(-5): index = %d, want 0", p.Index())
	}
}

func TestSetCountReclampsIndex(t *testing.T) {
	p := newPageController()
	p.SetSize(10)
	p.SetCount(100)
	p.JumpTo(9)

	// Shrinking the result set pulls the index back in range.
	p.SetCount(25)
	if p.Index() != 2 {
		t.Errorf("index after shrink = %d, want 2", p.Index())
	}

	p.SetCount(0)
	if p.Index() != 0 {
		t.Errorf("index with empty set = %d, want 0", p.Index())
	}

	p.SetCount(-3)
	if p.Index() != 0 || p.LastPage() != 0 {
		t.Errorf("negative count: index=%d lastPage=%d, want 0 and 0", p.Index(), p.LastPage())
	}
}

func TestClampIsIdempotent(t *testing.T) {
	p := newPageController()
	p.SetSize(10)
	p.SetCount(23)
	p.JumpTo(2)

	before := p.Index()
	p.SetCount(23)
	p.SetCount(23)
	if p.Index() != before {
		t.Errorf("repeated clamping moved the index from %d to %d", before, p.Index())
	}
}

func TestGrowShrinkWalkTheAllowedSizes(t *testing.T) {
	p := newPageController()
	if p.Size() != 15 {
		t.Fatalf("default size = %d, want 15", p.Size())
	}

	p.ShrinkSize()
	if p.Size() != 10 {
		t.Errorf("after shrink: size = %d, want 10", p.Size())
	}
	p.ShrinkSize() // already at the minimum
	if p.Size() != 10 {
		t.Errorf("shrink at minimum: size = %d, want 10", p.Size())
	}

	for i := 0; i < 10; i++ {
		p.GrowSize()
	}
	if p.Size() != 500 {
		t.Errorf("grow at maximum: size = %d, want 500", p.Size())
	}
}
