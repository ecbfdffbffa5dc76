package dock

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestSplitDumpShape(t *testing.T) {
	f := NewNullFactory()
	root := mustBuildRoot(t, f, HSplit(0.3, Text("A"), Text("B")))

	want := &Dump{
		Type: TypeRoot,
		Children: []*Dump{{
			Type:        TypeSplit,
			Orientation: "horizontal",
			Ratio:       floatPtr(0.3),
			Children: []*Dump{
				{Type: TypeView, Content: "A"},
				{Type: TypeView, Content: "B"},
			},
		}},
	}
	if diff := cmp.Diff(want, root.Dump()); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitDumpRoundTrip(t *testing.T) {
	f := NewNullFactory()
	root := mustBuildRoot(t, f, HSplit(0.3, Text("A"), Text("B")))

	restored, err := Restore(f, root.Dump(), nil)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if got := restored.Child().(*Split).Ratio(); got != 0.3 {
		t.Errorf("restored ratio = %v, want exactly 0.3", got)
	}
	if diff := cmp.Diff(root.Dump(), restored.Dump()); diff != "" {
		t.Errorf("round trip not structural (-first +second):\n%s", diff)
	}
}

func TestTabbingDumpActiveIndex(t *testing.T) {
	f := NewNullFactory()
	root := mustBuildRoot(t, f, Tabs(Text("A")).PushActive(Text("B")))

	d := root.Dump()
	tab := d.Children[0]
	if tab.Active == nil || *tab.Active != 1 {
		t.Fatalf("persisted active = %v, want 1", tab.Active)
	}

	restored, err := Restore(f, d, nil)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	tb := restored.Child().(*Tabbing)
	if n, idx := visibleCount(tb); n != 1 || idx != 1 {
		t.Errorf("after restore: visible = %d at index %d, want 1 at 1", n, idx)
	}
}

func TestDumpJSONRoundTrip(t *testing.T) {
	f := NewNullFactory()
	root := mustBuildRoot(t, f, VSplit(0.4,
		HLineUp(Text("nav"), Text("crumbs")).Named("header").Fixed(),
		Tabs(Text("editor"), Text("logs")).Active(1),
	))

	data, err := MarshalDump(root.Dump())
	if err != nil {
		t.Fatalf("MarshalDump: %v", err)
	}
	parsed, err := UnmarshalDump(data)
	if err != nil {
		t.Fatalf("UnmarshalDump: %v", err)
	}
	if diff := cmp.Diff(root.Dump(), parsed); diff != "" {
		t.Errorf("JSON round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRestoreResolvesReferences(t *testing.T) {
	f := NewNullFactory()
	root := mustBuildRoot(t, f, HSplit(0.5,
		Wrap(NewWidgetView(f.NewWidget(WidgetLeaf), 7, Size{Width: 2, Height: 2})),
		Text("side"),
	))

	d := root.Dump()
	if v := d.Children[0].Children[0].View; v == nil || *v != 7 {
		t.Fatalf("persisted reference = %v, want 7", v)
	}

	var resolvedRef int
	resolve := func(ref int) (View, error) {
		resolvedRef = ref
		return NewWidgetView(f.NewWidget(WidgetLeaf), ref, Size{Width: 2, Height: 2}), nil
	}
	if _, err := Restore(f, d, resolve); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if resolvedRef != 7 {
		t.Errorf("resolver called with %d, want 7", resolvedRef)
	}

	if _, err := Restore(f, d, nil); err == nil {
		t.Error("restoring a referenced view without a resolver should fail")
	}
	failing := func(ref int) (View, error) { return nil, fmt.Errorf("no view %d", ref) }
	if _, err := Restore(f, d, failing); err == nil {
		t.Error("resolver failure should abort the restore")
	}
}

func TestDumpValidate(t *testing.T) {
	cases := []struct {
		name string
		dump *Dump
	}{
		{"unknown type", &Dump{Type: "grid"}},
		{"root without child", &Dump{Type: TypeRoot}},
		{"split missing ratio", &Dump{Type: TypeSplit, Orientation: "horizontal", Children: []*Dump{
			{Type: TypeView}, {Type: TypeView},
		}}},
		{"split one child", &Dump{Type: TypeSplit, Orientation: "horizontal", Ratio: floatPtr(0.5), Children: []*Dump{
			{Type: TypeView},
		}}},
		{"split bad orientation", &Dump{Type: TypeSplit, Orientation: "diagonal", Ratio: floatPtr(0.5), Children: []*Dump{
			{Type: TypeView}, {Type: TypeView},
		}}},
		{"ratio out of range", &Dump{Type: TypeSplit, Orientation: "vertical", Ratio: floatPtr(1.2), Children: []*Dump{
			{Type: TypeView}, {Type: TypeView},
		}}},
		{"tabbing active out of range", &Dump{Type: TypeTabbing, Active: intPtr(2), Children: []*Dump{
			{Type: TypeView}, {Type: TypeView},
		}}},
		{"view with children", &Dump{Type: TypeView, Children: []*Dump{{Type: TypeView}}}},
	}
	for _, tc := range cases {
		if err := tc.dump.Validate(); err == nil {
			t.Errorf("%s: Validate accepted a malformed dump", tc.name)
		}
	}
}

func TestUnmarshalDumpRejectsMalformed(t *testing.T) {
	if _, err := UnmarshalDump([]byte("{")); err == nil {
		t.Error("accepted truncated JSON")
	}
	if _, err := UnmarshalDump([]byte(`{"type":"grid"}`)); err == nil {
		t.Error("accepted unknown node type")
	}
}
