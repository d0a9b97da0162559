package mapper

import "errors"

// fakeCursor serves sections of positional rows.
type fakeCursor struct {
	sections [][][]any
	section  int
	row      int
	width    int
	failAt   int
	err      error
	closed   bool
}

func newFakeCursor(width int, sections ...[][]any) *fakeCursor {
	return &fakeCursor{sections: sections, row: -1, width: width, failAt: -1}
}

func (c *fakeCursor) Next() bool {
	if c.err != nil || c.section >= len(c.sections) {
		return false
	}
	if c.row < len(c.sections[c.section]) {
		c.row++
	}
	if c.failAt >= 0 && c.row == c.failAt && c.section == 0 {
		c.err = errors.New("decode failure")
		return false
	}
	return c.row < len(c.sections[c.section])
}

func (c *fakeCursor) NextSection() bool {
	if c.section >= len(c.sections) {
		return false
	}
	c.section++
	c.row = -1
	return c.section < len(c.sections)
}

func (c *fakeCursor) onRow() bool {
	return c.section < len(c.sections) && c.row >= 0 && c.row < len(c.sections[c.section])
}

func (c *fakeCursor) FieldCount() int {
	if !c.onRow() {
		return 0
	}
	return max(c.width, len(c.sections[c.section][c.row]))
}

func (c *fakeCursor) Value(i int) (any, error) {
	if !c.onRow() {
		return nil, nil
	}
	row := c.sections[c.section][c.row]
	if i >= len(row) {
		return nil, nil
	}
	return row[i], nil
}

func (c *fakeCursor) Err() error   { return c.err }
func (c *fakeCursor) Close() error { c.closed = true; return nil }

// fakeNames is a NamedCellSource backed by a slice. An entry with a scope
// is only visible when that sheet is requested.
type fakeNames struct {
	entries []fakeName
}

type fakeName struct {
	name  string
	sheet string
	scope string
	value any
}

func (n fakeNames) Names() []string {
	var names []string
	seen := make(map[string]bool)
	for _, e := range n.entries {
		if !seen[e.name] {
			seen[e.name] = true
			names = append(names, e.name)
		}
	}
	return names
}

func (n fakeNames) Resolve(name, sheet string) (any, string, bool, error) {
	var global *fakeName
	for i, e := range n.entries {
		switch {
		case e.name != name:
		case e.scope == sheet && sheet != "":
			return e.value, e.sheet, true, nil
		case e.scope == "" && global == nil:
			global = &n.entries[i]
		}
	}
	if global == nil {
		return nil, "", false, nil
	}
	return global.value, global.sheet, true, nil
}
