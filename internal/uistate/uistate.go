// Package uistate parses and encodes the per-page selection state carried in query strings.
package uistate

import (
	"sort"
	"strconv"
	"strings"
)

// Tabs is a single selection over Count entries. Active is always in range.
type Tabs struct {
	Active int
	Count  int
}

// ParseTabs reads an index; anything missing or out of range selects the first entry.
func ParseTabs(raw string, count int) Tabs {
	t := Tabs{Count: count}
	if i, ok := parseIndex(raw, count); ok {
		t.Active = i
	}
	return t
}

// Select returns t with i active. Out of range indices leave t unchanged.
func (t Tabs) Select(i int) Tabs {
	if i < 0 || i >= t.Count {
		return t
	}
	t.Active = i
	return t
}

func (t Tabs) IsActive(i int) bool { return t.Active == i }

// Param is the query value for t; the default selection encodes as "".
func (t Tabs) Param() string {
	if t.Active == 0 {
		return ""
	}
	return strconv.Itoa(t.Active)
}

// Accordion has at most one open entry.
type Accordion struct {
	open  int
	count int
}

// ParseAccordion reads the open index; missing or out of range means all closed.
func ParseAccordion(raw string, count int) Accordion {
	a := Accordion{open: -1, count: count}
	if i, ok := parseIndex(raw, count); ok {
		a.open = i
	}
	return a
}

// Toggle opens i, or closes it when it is already open.
func (a Accordion) Toggle(i int) Accordion {
	if i < 0 || i >= a.count {
		return a
	}
	if a.open == i {
		a.open = -1
		return a
	}
	a.open = i
	return a
}

func (a Accordion) IsOpen(i int) bool { return a.open >= 0 && a.open == i }

// Open returns the open index and whether any entry is open.
func (a Accordion) Open() (int, bool) { return a.open, a.open >= 0 }

func (a Accordion) Param() string {
	if a.open < 0 {
		return ""
	}
	return strconv.Itoa(a.open)
}

// Set is an unordered multi-selection. The zero value is empty.
type Set struct {
	members []int
	count   int
}

// ParseSet reads a comma separated list, dropping duplicates and out of range entries.
func ParseSet(raw string, count int) Set {
	s := Set{count: count}
	for _, part := range strings.Split(raw, ",") {
		if i, ok := parseIndex(part, count); ok && !s.Has(i) {
			s.members = append(s.members, i)
		}
	}
	sort.Ints(s.members)
	return s
}

// Toggle removes i when present and adds it otherwise. The receiver is not modified.
func (s Set) Toggle(i int) Set {
	if i < 0 || i >= s.count {
		return s
	}
	out := Set{count: s.count}
	found := false
	for _, m := range s.members {
		if m == i {
			found = true
			continue
		}
		out.members = append(out.members, m)
	}
	if !found {
		out.members = append(out.members, i)
		sort.Ints(out.members)
	}
	return out
}

func (s Set) Has(i int) bool {
	for _, m := range s.members {
		if m == i {
			return true
		}
	}
	return false
}

func (s Set) Len() int { return len(s.members) }

// Members returns the sorted selection.
func (s Set) Members() []int {
	out := make([]int, len(s.members))
	copy(out, s.members)
	return out
}

// Equal compares membership only.
func (s Set) Equal(o Set) bool {
	if len(s.members) != len(o.members) {
		return false
	}
	for i := range s.members {
		if s.members[i] != o.members[i] {
			return false
		}
	}
	return true
}

// Param encodes the set as a sorted comma separated list.
func (s Set) Param() string {
	parts := make([]string, len(s.members))
	for i, m := range s.members {
		parts[i] = strconv.Itoa(m)
	}
	return strings.Join(parts, ",")
}

// Flag reads a boolean query value ("1", "true", "on").
func Flag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

func parseIndex(raw string, count int) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 || i >= count {
		return 0, false
	}
	return i, true
}
