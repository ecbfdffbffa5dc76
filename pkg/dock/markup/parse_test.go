package markup

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sample = `
# editor layout
hsplit ratio=0.3
  view name=sidebar
    | Files
  tabbing active=1
    view
      | build log
    view
      | test log
      | (two lines)
`

func TestParseSample(t *testing.T) {
	got, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := &Node{
		Kind:  KindHSplit,
		Attrs: map[string]string{"ratio": "0.3"},
		Line:  3,
		Children: []*Node{
			{Kind: KindView, Attrs: map[string]string{"name": "sidebar"}, Text: "Files", Line: 4},
			{
				Kind:  KindTabbing,
				Attrs: map[string]string{"active": "1"},
				Line:  6,
				Children: []*Node{
					{Kind: KindView, Text: "build log", Line: 7},
					{Kind: KindView, Text: "test log\n(two lines)", Line: 9},
				},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parse tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParseQuotedAttr(t *testing.T) {
	n, err := Parse(`view name="build output"`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := n.Attr("name", ""); got != "build output" {
		t.Errorf("name = %q, want %q", got, "build output")
	}
}

func TestParseFlagAttr(t *testing.T) {
	n, err := Parse("vstack fixed\n  view\n  view")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !n.BoolAttr("fixed") {
		t.Error("bare flag attribute should be truthy")
	}
	if n.BoolAttr("auto-wrap") {
		t.Error("absent flag attribute should be false")
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", "empty markup"},
		{"unknown kind", "grid", "unknown layout kind"},
		{"two roots", "view\nview", "line 2: multiple top-level"},
		{"tab indent", "hsplit\n\tview", "line 2: indentation"},
		{"text at top level", "| hello", "line 1: text outside"},
		{"text under split", "hsplit\n  | hello", "line 2: text content"},
		{"child under view", "view\n  view", "line 2: view nodes cannot"},
		{"unterminated quote", `view name="ops`, "line 1: unterminated quote"},
	}
	for _, tc := range cases {
		_, err := Parse(tc.src)
		if err == nil {
			t.Errorf("%s: Parse accepted malformed markup", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}

func TestNodeStringRoundTrips(t *testing.T) {
	n, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	again, err := Parse(n.String())
	if err != nil {
		t.Fatalf("reparse rendered markup: %v", err)
	}
	ignoreLines := cmp.FilterPath(func(p cmp.Path) bool {
		return p.Last().String() == ".Line"
	}, cmp.Ignore())
	if diff := cmp.Diff(n, again, ignoreLines); diff != "" {
		t.Errorf("render/reparse mismatch (-first +second):\n%s", diff)
	}
}
