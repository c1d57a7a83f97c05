package domain

import "exfold.dev/pkg/exfold/internal/domain/lexer"

// GroupPolicy decides whether consecutive same-named clauses fold together.
type GroupPolicy int

const (
	// GroupClauses merges adjacent clauses sharing a name into one fold.
	GroupClauses GroupPolicy = iota
	// NeverGroup keeps every clause an independent fold.
	NeverGroup
)

// DefaultNeverGroup lists the callbacks whose clauses are folded one by one.
var DefaultNeverGroup = []string{"handle_call", "handle_cast", "handle_info"}

// GroupingTable is the single lookup used by the scanner to resolve the
// grouping policy of a clause.
type GroupingTable struct {
	keywords map[string]GroupPolicy
	names    map[string]GroupPolicy
}

// NewGroupingTable builds a table where the given names never group. The
// ExUnit keywords test and describe never group either.
func NewGroupingTable(neverGroup ...string) GroupingTable {
	table := GroupingTable{
		keywords: map[string]GroupPolicy{
			"test":     NeverGroup,
			"describe": NeverGroup,
		},
		names: make(map[string]GroupPolicy, len(neverGroup)),
	}

	for _, name := range neverGroup {
		table.names[name] = NeverGroup
	}

	return table
}

// DefaultGroupingTable returns the table built from DefaultNeverGroup.
func DefaultGroupingTable() GroupingTable {
	return NewGroupingTable(DefaultNeverGroup...)
}

// Policy resolves the policy for a clause: keyword overrides first, then the
// function name, then the default of grouping.
func (g GroupingTable) Policy(keyword, name string) GroupPolicy {
	if !lexer.IsFunctionKeyword(keyword) && !lexer.IsTestKeyword(keyword) {
		return NeverGroup
	}

	if policy, ok := g.keywords[keyword]; ok {
		return policy
	}

	if policy, ok := g.names[name]; ok {
		return policy
	}

	return GroupClauses
}

// Groups is shorthand for Policy(keyword, name) == GroupClauses.
func (g GroupingTable) Groups(keyword, name string) bool {
	return g.Policy(keyword, name) == GroupClauses
}
