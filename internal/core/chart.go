package core

import "sort"

// MajorHead is a top-level statutory category (Assets, Equity and
// Liabilities, Profit & Loss Statement). Reference data, loaded once.
type MajorHead struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// MinorHead is a second-level category under a major head.
type MinorHead struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	MajorHeadCode string `json:"majorHeadCode"`
}

// Grouping is the leaf classification unit every ledger ultimately maps to.
type Grouping struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	MinorHeadCode string `json:"minorHeadCode"`
}

// Masters carries the three flat sequences a Chart is built from.
type Masters struct {
	MajorHeads []MajorHead `json:"majorHeads"`
	MinorHeads []MinorHead `json:"minorHeads"`
	Groupings  []Grouping  `json:"groupings"`
}

// Side is the accounting side of a head under the debit-positive
// convention: ledgers with positive balances belong on the debit side
// (assets, expenses), negative balances on the credit side (equity,
// liabilities, income).
type Side int

const (
	SideDebit  Side = iota // asset / expense
	SideCredit             // liability / equity / income
)

// Resolution is the fully resolved classification chain for a code.
type Resolution struct {
	Major    *MajorHead
	Minor    *MinorHead
	Grouping *Grouping // nil when resolving a minor or major head code
}

// Chart is the read-only lookup structure over the three-level hierarchy.
// Construction verifies every reference; lookups never fail on structure.
type Chart struct {
	masters  Masters
	majors   map[string]*MajorHead
	minors   map[string]*MinorHead
	groups   map[string]*Grouping
	children map[string][]string // head code -> sorted child codes
}

// NewChart builds a Chart from the master sequences. It returns a
// *ReferenceError on the first dangling minor-head or grouping parent
// reference (fail fast, not per-query).
func NewChart(m Masters) (*Chart, error) {
	c := &Chart{
		masters:  m,
		majors:   make(map[string]*MajorHead, len(m.MajorHeads)),
		minors:   make(map[string]*MinorHead, len(m.MinorHeads)),
		groups:   make(map[string]*Grouping, len(m.Groupings)),
		children: make(map[string][]string),
	}
	for i := range m.MajorHeads {
		c.majors[m.MajorHeads[i].Code] = &m.MajorHeads[i]
	}
	for i := range m.MinorHeads {
		mh := &m.MinorHeads[i]
		if _, ok := c.majors[mh.MajorHeadCode]; !ok {
			return nil, &ReferenceError{Code: mh.Code, Parent: mh.MajorHeadCode}
		}
		c.minors[mh.Code] = mh
		c.children[mh.MajorHeadCode] = append(c.children[mh.MajorHeadCode], mh.Code)
	}
	for i := range m.Groupings {
		g := &m.Groupings[i]
		if _, ok := c.minors[g.MinorHeadCode]; !ok {
			return nil, &ReferenceError{Code: g.Code, Parent: g.MinorHeadCode}
		}
		c.groups[g.Code] = g
		c.children[g.MinorHeadCode] = append(c.children[g.MinorHeadCode], g.Code)
	}
	for k := range c.children {
		sort.Strings(c.children[k])
	}
	return c, nil
}

// Masters returns the sequences the chart was built from.
func (c *Chart) Masters() Masters { return c.masters }

// ChildrenOf returns the sorted child codes of a major or minor head, or
// nil for a leaf or unknown code.
func (c *Chart) ChildrenOf(code string) []string { return c.children[code] }

// ParentOf returns the parent code of a minor head or grouping, or "" for
// a major head or unknown code.
func (c *Chart) ParentOf(code string) string {
	if mh, ok := c.minors[code]; ok {
		return mh.MajorHeadCode
	}
	if g, ok := c.groups[code]; ok {
		return g.MinorHeadCode
	}
	return ""
}

// Resolve walks a code up to its major head. The code may be a grouping,
// minor head or major head. ok is false for unknown codes.
func (c *Chart) Resolve(code string) (Resolution, bool) {
	if g, ok := c.groups[code]; ok {
		mh := c.minors[g.MinorHeadCode]
		return Resolution{Major: c.majors[mh.MajorHeadCode], Minor: mh, Grouping: g}, true
	}
	if mh, ok := c.minors[code]; ok {
		return Resolution{Major: c.majors[mh.MajorHeadCode], Minor: mh}, true
	}
	if maj, ok := c.majors[code]; ok {
		return Resolution{Major: maj}, true
	}
	return Resolution{}, false
}

// ValidateChain checks that grouping -> minor -> major is exactly the
// chain recorded in the chart. It returns an *InconsistentHierarchyError
// describing the first break.
func (c *Chart) ValidateChain(majorCode, minorCode, groupingCode string) error {
	fail := func(reason string) error {
		return &InconsistentHierarchyError{
			MajorHeadCode: majorCode,
			MinorHeadCode: minorCode,
			GroupingCode:  groupingCode,
			Reason:        reason,
		}
	}
	g, ok := c.groups[groupingCode]
	if !ok {
		return fail("unknown grouping code")
	}
	mh, ok := c.minors[minorCode]
	if !ok {
		return fail("unknown minor head code")
	}
	if _, ok := c.majors[majorCode]; !ok {
		return fail("unknown major head code")
	}
	if g.MinorHeadCode != minorCode {
		return fail("grouping does not belong to minor head")
	}
	if mh.MajorHeadCode != majorCode {
		return fail("minor head does not belong to major head")
	}
	return nil
}

// SideOf reports the accounting side of any chart code. Under the
// Schedule III chart, major head A is the asset side and B the
// liability side; within C, the C.10 and C.20 minor heads are income
// and everything else is expense.
func (c *Chart) SideOf(code string) (Side, bool) {
	res, ok := c.Resolve(code)
	if !ok {
		return SideDebit, false
	}
	switch res.Major.Code {
	case MajorHeadAssets:
		return SideDebit, true
	case MajorHeadEquityLiabilities:
		return SideCredit, true
	case MajorHeadProfitLoss:
		if res.Minor != nil && (res.Minor.Code == MinorRevenueFromOps || res.Minor.Code == MinorOtherIncome) {
			return SideCredit, true
		}
		// A bare "C" resolves to the expense side; rollups at major-head
		// level never need the income split.
		return SideDebit, true
	}
	return SideDebit, true
}
