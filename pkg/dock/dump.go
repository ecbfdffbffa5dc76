package dock

import (
	"encoding/json"
	"fmt"
	"os"
)

// Dump node type tags. The tag discriminates which fields of a Dump
// are populated.
const (
	TypeRoot    = "root"
	TypeSplit   = "split"
	TypeLineUp  = "lineup"
	TypeTabbing = "tabbing"
	TypeView    = "view"
)

// Dump is the serializable mirror of a container subtree.
//
// This is a discriminated union type - check Type to determine which
// fields are populated:
//
//	Split ("split"):
//	  - Orientation: primary axis
//	  - Ratio: first child's share of the axis
//	Lineup ("lineup"):
//	  - Orientation: primary axis
//	  - Stacked: natural-size mode instead of equal share
//	Tabbing ("tabbing"):
//	  - Active: index of the visible child
//	View ("view"):
//	  - View: reference id resolved by the embedding application, or
//	  - Content: inline text embedded verbatim
//	Root ("root"): children holds the single subtree
//
// Shared fields (all types): Name, Fixed, FixedLayout, AutoWrap.
//
// Ratio, Active and View are pointers so absent and zero-valued fields
// stay distinguishable across the JSON round trip.
type Dump struct {
	// Discriminator
	Type string `json:"type" bson:"type"`

	// Shared options
	Name        string `json:"name,omitempty" bson:"name,omitempty"`
	Fixed       bool   `json:"fixed,omitempty" bson:"fixed,omitempty"`
	FixedLayout bool   `json:"fixed_layout,omitempty" bson:"fixed_layout,omitempty"`
	AutoWrap    bool   `json:"auto_wrap,omitempty" bson:"auto_wrap,omitempty"`

	// Split and lineup
	Orientation string   `json:"orientation,omitempty" bson:"orientation,omitempty"`
	Ratio       *float64 `json:"ratio,omitempty" bson:"ratio,omitempty"`
	Stacked     bool     `json:"stack_layout,omitempty" bson:"stack_layout,omitempty"`

	// Tabbing
	Active *int `json:"active,omitempty" bson:"active,omitempty"`

	// View
	View    *int   `json:"view,omitempty" bson:"view,omitempty"`
	Content string `json:"content,omitempty" bson:"content,omitempty"`

	Children []*Dump `json:"children,omitempty" bson:"children,omitempty"`
}

// Validate checks the dump tree for structural violations: unknown
// type tags, malformed orientations, out-of-range ratios and active
// indices, and wrong child counts. A dump that validates can be
// restored without partial construction.
func (d *Dump) Validate() error {
	switch d.Type {
	case TypeRoot:
		if len(d.Children) != 1 {
			return fmt.Errorf("root node must have exactly one child, got %d", len(d.Children))
		}
	case TypeSplit:
		if _, err := ParseOrientation(d.Orientation); err != nil {
			return err
		}
		if d.Ratio == nil {
			return fmt.Errorf("split node missing ratio")
		}
		if *d.Ratio < 0 || *d.Ratio > 1 {
			return fmt.Errorf("split ratio %v out of [0,1]", *d.Ratio)
		}
		if len(d.Children) < 2 {
			return fmt.Errorf("split node must have at least two children, got %d", len(d.Children))
		}
	case TypeLineUp:
		if _, err := ParseOrientation(d.Orientation); err != nil {
			return err
		}
		if len(d.Children) == 0 {
			return fmt.Errorf("lineup node must have at least one child")
		}
	case TypeTabbing:
		if len(d.Children) == 0 {
			return fmt.Errorf("tabbing node must have at least one child")
		}
		if d.Active != nil && (*d.Active < 0 || *d.Active >= len(d.Children)) {
			return fmt.Errorf("tabbing active index %d out of range [0,%d)", *d.Active, len(d.Children))
		}
	case TypeView:
		if len(d.Children) != 0 {
			return fmt.Errorf("view node must not have children")
		}
	default:
		return fmt.Errorf("unknown dump node type %q", d.Type)
	}
	for _, c := range d.Children {
		if c == nil {
			return fmt.Errorf("%s node has nil child", d.Type)
		}
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ParseOrientation maps the persisted orientation token back to its
// value.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("unknown orientation %q", s)
	}
}

// MarshalDump serializes a dump tree to pretty-printed JSON bytes.
func MarshalDump(d *Dump) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// UnmarshalDump deserializes JSON bytes into a dump tree and
// validates it.
func UnmarshalDump(data []byte) (*Dump, error) {
	var d Dump
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("unmarshal dump: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// WriteDumpFile writes a dump tree to a JSON file.
func WriteDumpFile(d *Dump, path string) error {
	data, err := MarshalDump(d)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadDumpFile reads a dump tree from a JSON file.
func ReadDumpFile(path string) (*Dump, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalDump(data)
}
