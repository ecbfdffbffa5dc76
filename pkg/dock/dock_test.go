package dock

import "testing"

// countWidget counts destroys into the owning factory.
type countWidget struct {
	nullWidget
	destroys *int
}

func (w *countWidget) Destroy() { *w.destroys++ }

// countFactory tracks how many widgets were created and destroyed.
type countFactory struct {
	created  int
	destroys int
}

func (f *countFactory) NewWidget(string) Widget {
	f.created++
	return &countWidget{nullWidget: nullWidget{visible: true}, destroys: &f.destroys}
}

// leafMin builds a leaf builder around a widget view with a fixed
// minimum size.
func leafMin(f Factory, w, h int) Builder {
	return Wrap(NewWidgetView(f.NewWidget(WidgetLeaf), 1, Size{Width: w, Height: h}))
}

func mustBuildRoot(t *testing.T, f Factory, b Builder) *Root {
	t.Helper()
	r, err := BuildRoot(f, b)
	if err != nil {
		t.Fatalf("BuildRoot: %v", err)
	}
	return r
}
