package dock

import "testing"

func TestLineUpEqualShare(t *testing.T) {
	f := NewNullFactory()
	root := mustBuildRoot(t, f, HLineUp(Text("a"), Text("b"), Text("c")))
	root.SetBounds(Rect{Width: 10, Height: 4})

	l := root.Child().(*LineUp)
	widths := []int{4, 3, 3}
	offset := 0
	for i, c := range l.Children() {
		want := Rect{X: offset, Y: 0, Width: widths[i], Height: 4}
		if got := c.Bounds(); got != want {
			t.Errorf("child %d bounds = %+v, want %+v", i, got, want)
		}
		offset += widths[i]
	}
}

func TestLineUpStacked(t *testing.T) {
	f := NewNullFactory()
	root := mustBuildRoot(t, f, VLineUp(leafMin(f, 3, 2), leafMin(f, 5, 4)).Stacked())
	root.SetBounds(Rect{Width: 10, Height: 3})

	kids := root.Child().(*LineUp).Children()
	if got := kids[0].Bounds(); got != (Rect{X: 0, Y: 0, Width: 10, Height: 2}) {
		t.Errorf("first stacked bounds = %+v", got)
	}
	if got := kids[1].Bounds(); got != (Rect{X: 0, Y: 2, Width: 10, Height: 4}) {
		t.Errorf("second stacked bounds = %+v", got)
	}
}

func TestLineUpMinSizeModes(t *testing.T) {
	f := NewNullFactory()
	equal, err := HLineUp(leafMin(f, 3, 2), leafMin(f, 5, 4)).Build(f)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got, want := equal.MinSize(), (Size{Width: 8, Height: 4}); got != want {
		t.Errorf("equal-share MinSize = %+v, want %+v", got, want)
	}

	stacked, err := HLineUp(leafMin(f, 3, 2), leafMin(f, 5, 4)).Stacked().Build(f)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got, want := stacked.MinSize(), (Size{Width: 5, Height: 4}); got != want {
		t.Errorf("stacked MinSize = %+v, want %+v", got, want)
	}
}

func TestLineUpMinSizeMonotonic(t *testing.T) {
	f := NewNullFactory()
	root := mustBuildRoot(t, f, HLineUp(leafMin(f, 3, 1)))
	l := root.Child().(*LineUp)

	prev := l.MinSize().Width
	for i := 0; i < 4; i++ {
		leaf, err := leafMin(f, 2, 1).Build(f)
		if err != nil {
			t.Fatalf("build leaf: %v", err)
		}
		if err := l.Push(leaf); err != nil {
			t.Fatalf("push: %v", err)
		}
		if got := l.MinSize().Width; got < prev {
			t.Errorf("MinSize width shrank from %d to %d after push", prev, got)
		} else {
			prev = got
		}
	}
}

func TestLineUpRemoveRedistributes(t *testing.T) {
	f := NewNullFactory()
	root := mustBuildRoot(t, f, HLineUp(Text("a"), Text("b")))
	root.SetBounds(Rect{Width: 10, Height: 2})

	l := root.Child().(*LineUp)
	kids := l.Children()
	if !l.Remove(kids[0]) {
		t.Fatal("Remove returned false for attached child")
	}
	if kids[0].Parent() != nil {
		t.Error("removed child still has a parent")
	}
	if got := kids[1].Bounds(); got != (Rect{X: 0, Y: 0, Width: 10, Height: 2}) {
		t.Errorf("remaining child bounds = %+v, want full width", got)
	}
}
