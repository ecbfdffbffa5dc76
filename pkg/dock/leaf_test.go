package dock

import "testing"

func TestLeafProxiesView(t *testing.T) {
	f := NewNullFactory()
	v := NewTextView(f, "hello\nworld!")
	leaf, err := Wrap(v).Build(f)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if got, want := leaf.MinSize(), (Size{Width: 6, Height: 2}); got != want {
		t.Errorf("MinSize = %+v, want %+v", got, want)
	}
	leaf.SetVisible(false)
	if v.Visible() {
		t.Error("hiding the leaf did not hide the view")
	}
	leaf.SetBounds(Rect{X: 1, Y: 2, Width: 8, Height: 3})
	if got := v.Widget().Bounds(); got != (Rect{X: 1, Y: 2, Width: 8, Height: 3}) {
		t.Errorf("view widget bounds = %+v", got)
	}
}

func TestLeafNilView(t *testing.T) {
	f := NewNullFactory()
	if _, err := Wrap(nil).Build(f); err != ErrNilView {
		t.Errorf("err = %v, want ErrNilView", err)
	}
}

func TestDestroyPropagation(t *testing.T) {
	f := &countFactory{}
	root := mustBuildRoot(t, f, HSplit(0.5,
		Text("a"),
		Tabs(Text("b"), VLineUp(Text("c"), Text("d"))),
	))

	root.Destroy()
	if f.destroys != f.created {
		t.Errorf("destroyed %d of %d widgets", f.destroys, f.created)
	}
}

func TestDestroyDetachesFromParent(t *testing.T) {
	f := NewNullFactory()
	root := mustBuildRoot(t, f, HLineUp(Text("a"), Text("b"), Text("c")))
	l := root.Child().(*LineUp)

	victim := l.Children()[1]
	victim.Destroy()

	if victim.Parent() != nil {
		t.Error("destroyed child still has a parent")
	}
	for _, c := range l.Children() {
		if c == victim {
			t.Error("parent still lists the destroyed child")
		}
	}
	if got := len(l.Children()); got != 2 {
		t.Errorf("parent has %d children after destroy, want 2", got)
	}
}
