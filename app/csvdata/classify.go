package csvdata

import "strings"

// GroupLeaf is one column inside a header group.
type GroupLeaf struct {
	Name  string `json:"name"`
	Index int    `json:"index"`
}

// HeaderGroup collects the columns sharing one group name. Grouped is
// false for the bucket of headers that carry no group separator.
type HeaderGroup struct {
	Name    string      `json:"name"`
	Grouped bool        `json:"grouped"`
	Leaves  []GroupLeaf `json:"leaves"`
}

// GroupMapping is the ordered set of header groups. Group order follows
// the first occurrence of each group name in column order; leaf order
// within a group follows column order.
type GroupMapping []HeaderGroup

// Lookup returns the group with the given name, or nil. Use Ungrouped
// for the separator-less bucket.
func (gm GroupMapping) Lookup(name string) *HeaderGroup {
	for i := range gm {
		if gm[i].Grouped && gm[i].Name == name {
			return &gm[i]
		}
	}
	return nil
}

// Ungrouped returns the bucket of headers without a group separator, or
// nil if every header was grouped.
func (gm GroupMapping) Ungrouped() *HeaderGroup {
	for i := range gm {
		if !gm[i].Grouped {
			return &gm[i]
		}
	}
	return nil
}

// groupSeparator splits a header into its group and leaf parts.
const groupSeparator = "::"

// HeaderGroups derives the group mapping from the table's headers. Every
// occurrence of prefix is stripped from a header before it is split once
// on "::"; headers without the separator land in the ungrouped bucket
// with their stripped name as the leaf. An empty prefix strips nothing.
func (t *Table) HeaderGroups(prefix string) GroupMapping {
	var mapping GroupMapping
	position := make(map[string]int)

	for idx, header := range t.headers {
		stripped := header
		if prefix != "" && strings.Contains(header, prefix) {
			stripped = strings.ReplaceAll(header, prefix, "")
		}

		groupName := ""
		leafName := stripped
		grouped := false
		if strings.Contains(stripped, groupSeparator) {
			parts := strings.SplitN(stripped, groupSeparator, 2)
			groupName, leafName = parts[0], parts[1]
			grouped = true
		}

		key := groupKey(groupName, grouped)
		pos, seen := position[key]
		if !seen {
			pos = len(mapping)
			position[key] = pos
			mapping = append(mapping, HeaderGroup{Name: groupName, Grouped: grouped})
		}
		mapping[pos].Leaves = append(mapping[pos].Leaves, GroupLeaf{Name: leafName, Index: idx})
	}

	return mapping
}

// groupKey disambiguates the ungrouped bucket from a group literally
// named "".
func groupKey(name string, grouped bool) string {
	if !grouped {
		return "\x00ungrouped"
	}
	return "g:" + name
}

// ConstantColumns returns the indices of columns whose every row equals
// the first row's value. Numeric columns compare by parsed value, all
// others by exact string equality. With zero rows every column is
// vacuously constant.
func (t *Table) ConstantColumns() []int {
	var constant []int
	for i := range t.columns {
		if t.isConstant(i) {
			constant = append(constant, i)
		}
	}
	return constant
}

// ConstantZeroColumns returns the indices of numeric columns whose every
// row equals zero.
func (t *Table) ConstantZeroColumns() []int {
	var zero []int
	for i, parsed := range t.numeric {
		if parsed == nil {
			continue
		}
		allZero := true
		for _, v := range parsed {
			if v != 0 {
				allZero = false
				break
			}
		}
		if allZero {
			zero = append(zero, i)
		}
	}
	return zero
}

// VaryingColumns returns the complement of ConstantColumns within the
// full index set.
func (t *Table) VaryingColumns() []int {
	constant := make(map[int]bool)
	for _, i := range t.ConstantColumns() {
		constant[i] = true
	}
	var varying []int
	for i := range t.columns {
		if !constant[i] {
			varying = append(varying, i)
		}
	}
	return varying
}

func (t *Table) isConstant(i int) bool {
	if parsed := t.numeric[i]; parsed != nil {
		for _, v := range parsed {
			if v != parsed[0] {
				return false
			}
		}
		return true
	}
	cells := t.columns[i]
	for _, cell := range cells {
		if cell != cells[0] {
			return false
		}
	}
	return true
}
