package dock

import "testing"

func TestSplitLayoutByRatio(t *testing.T) {
	f := NewNullFactory()
	root := mustBuildRoot(t, f, HSplit(0.5, leafMin(f, 0, 0), leafMin(f, 0, 0)))
	root.SetBounds(Rect{Width: 21, Height: 10})

	s := root.Child().(*Split)
	first, second := s.First().Bounds(), s.Second().Bounds()
	want1 := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	want2 := Rect{X: 11, Y: 0, Width: 10, Height: 10}
	if first != want1 {
		t.Errorf("first bounds = %+v, want %+v", first, want1)
	}
	if second != want2 {
		t.Errorf("second bounds = %+v, want %+v", second, want2)
	}
}

func TestSplitVerticalLayout(t *testing.T) {
	f := NewNullFactory()
	root := mustBuildRoot(t, f, VSplit(0.25, leafMin(f, 0, 0), leafMin(f, 0, 0)))
	root.SetBounds(Rect{Width: 10, Height: 9})

	s := root.Child().(*Split)
	if got := s.First().Bounds(); got != (Rect{X: 0, Y: 0, Width: 10, Height: 2}) {
		t.Errorf("first bounds = %+v", got)
	}
	if got := s.Second().Bounds(); got != (Rect{X: 0, Y: 3, Width: 10, Height: 6}) {
		t.Errorf("second bounds = %+v", got)
	}
}

func TestSplitRatioClamp(t *testing.T) {
	f := NewNullFactory()
	for _, ratio := range []float64{0, 0.1, 0.5, 0.9, 1} {
		root := mustBuildRoot(t, f, HSplit(ratio, leafMin(f, 8, 1), leafMin(f, 8, 1)))
		root.SetBounds(Rect{Width: 21, Height: 5})
		s := root.Child().(*Split)
		if got := s.First().Bounds().Width; got < 8 {
			t.Errorf("ratio %v: first width %d below minimum 8", ratio, got)
		}
		if got := s.Second().Bounds().Width; got < 8 {
			t.Errorf("ratio %v: second width %d below minimum 8", ratio, got)
		}
	}
}

func TestSplitRatioRange(t *testing.T) {
	f := NewNullFactory()
	if _, err := BuildRoot(f, HSplit(1.5, Text("a"), Text("b"))); err != ErrRatioRange {
		t.Errorf("ratio 1.5: err = %v, want ErrRatioRange", err)
	}
	root := mustBuildRoot(t, f, HSplit(0.5, Text("a"), Text("b")))
	if err := root.Child().(*Split).SetRatio(-0.1); err != ErrRatioRange {
		t.Errorf("SetRatio(-0.1): err = %v, want ErrRatioRange", err)
	}
}

func TestSplitTooFewChildren(t *testing.T) {
	f := NewNullFactory()
	if _, err := BuildRoot(f, HSplit(0.5, Text("only"))); err != ErrSplitChildren {
		t.Errorf("err = %v, want ErrSplitChildren", err)
	}
}

func TestSplitPushNestsSubSplit(t *testing.T) {
	f := NewNullFactory()
	root := mustBuildRoot(t, f, HSplit(0.5, Text("a"), Text("b"), Text("c")))

	s := root.Child().(*Split)
	nested, ok := s.Second().(*Split)
	if !ok {
		t.Fatalf("second child is %T, want *Split", s.Second())
	}
	if nested.Ratio() != defaultPushRatio {
		t.Errorf("nested ratio = %v, want %v", nested.Ratio(), defaultPushRatio)
	}
	if len(s.Children()) != 2 || len(nested.Children()) != 2 {
		t.Errorf("tree not binary: %d outer, %d nested children", len(s.Children()), len(nested.Children()))
	}
}

func TestSplitMinSize(t *testing.T) {
	f := NewNullFactory()
	root := mustBuildRoot(t, f, HSplit(0.5, leafMin(f, 4, 2), leafMin(f, 6, 5)))

	want := Size{Width: 4 + 6 + DividerThickness, Height: 5}
	if got := root.MinSize(); got != want {
		t.Errorf("MinSize = %+v, want %+v", got, want)
	}
}

func TestSplitMoveDivider(t *testing.T) {
	f := NewNullFactory()
	root := mustBuildRoot(t, f, HSplit(0.5, leafMin(f, 8, 1), leafMin(f, 8, 1)))
	root.SetBounds(Rect{Width: 21, Height: 5})

	s := root.Child().(*Split)
	s.MoveDivider(100)
	if got := s.Second().Bounds().Width; got != 8 {
		t.Errorf("after drag right: second width = %d, want 8", got)
	}
	if got := s.Ratio(); got != 0.6 {
		t.Errorf("ratio after clamped drag = %v, want 0.6", got)
	}
	s.MoveDivider(-100)
	if got := s.First().Bounds().Width; got != 8 {
		t.Errorf("after drag left: first width = %d, want 8", got)
	}
}

func TestSplitOwnedChildRejected(t *testing.T) {
	f := NewNullFactory()
	root := mustBuildRoot(t, f, HSplit(0.5, Text("a"), Text("b")))
	s := root.Child().(*Split)
	if err := s.Push(s.First()); err != ErrOwnedChild {
		t.Errorf("pushing an owned child: err = %v, want ErrOwnedChild", err)
	}
}
