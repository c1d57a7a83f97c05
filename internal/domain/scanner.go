package domain

import (
	"exfold.dev/pkg/exfold/internal/domain/lexer"
	m "exfold.dev/pkg/exfold/internal/model"
)

// pendingClause marks a finished groupable clause. When the next significant
// line is a clause with the same key in the same scope, every line from start
// up to that clause joins the group at depth+1.
type pendingClause struct {
	key   string
	scope uint64
	start int
	depth int
}

// scanState is everything the scanner carries from one line to the next.
type scanState struct {
	lex     lexer.State
	stack   []m.Block
	depth   int // open function blocks
	pending *pendingClause
	header  int // first line of the header the lexer reports open
}

// snapshot is a scanState frozen before a given line. The pending start is
// stored relative to that line so snapshots stay valid when lines shift.
type snapshot struct {
	lex         lexer.State
	stack       []m.Block
	depth       int
	pending     bool
	pendingKey  string
	pendingBack int
	scope       uint64
	pendDepth   int
	headerBack  int
}

func (s snapshot) equal(other snapshot) bool {
	if s.lex != other.lex || s.depth != other.depth || s.pending != other.pending {
		return false
	}

	if s.lex.InHeader() && s.headerBack != other.headerBack {
		return false
	}

	if s.pending && (s.pendingKey != other.pendingKey || s.pendingBack != other.pendingBack ||
		s.scope != other.scope || s.pendDepth != other.pendDepth) {
		return false
	}

	if len(s.stack) != len(other.stack) {
		return false
	}

	for i := range s.stack {
		if s.stack[i] != other.stack[i] {
			return false
		}
	}

	return true
}

// scanner is the forward state machine behind Classify and Buffer.
type scanner struct {
	groups GroupingTable
	state  scanState
	nextID uint64
}

func newScanner(groups GroupingTable) *scanner {
	return &scanner{groups: groups, nextID: 1}
}

func clauseKey(keyword, name string) string {
	return keyword + " " + name
}

// scope identifies the innermost open block, 0 at buffer top level.
func (s *scanner) scope() uint64 {
	if len(s.state.stack) == 0 {
		return 0
	}

	return s.state.stack[len(s.state.stack)-1].ID
}

// step classifies line i, writing levels[i] and patching earlier gap lines
// when the line joins a clause group. Events do not clear the pending marker:
// a marker left inside a block no longer matches the scope of later clauses.
func (s *scanner) step(levels []int, i int, text string) {
	facts, next := lexer.Analyze(text, s.state.lex)
	s.state.lex = next

	def := facts.Definition
	depth := s.state.depth
	level := depth

	start := i
	if facts.Continuation {
		start = s.state.header
	}

	switch {
	case def != nil && def.Form == m.FormOpen:
		s.state.header = i
	case facts.Continuation && def == nil:
		// The argument list is still open.
	case facts.Significant():
		level = s.resolveClause(levels, i, start, def)
	}

	peak := level

	for _, ev := range facts.Events {
		switch ev.Kind {
		case m.EventOpen:
			s.push(ev, facts.Definition)

			if s.state.depth > peak {
				peak = s.state.depth
			}
		case m.EventClose:
			s.pop(i)
		}
	}

	levels[i] = peak

	if facts.Continuation && def != nil && def.Form == m.FormBlock {
		for j := start; j < i; j++ {
			if levels[j] < depth+1 {
				levels[j] = depth + 1
			}
		}
	}
}

// resolveClause applies the grouping rules to a significant line and returns
// the level it starts with. start is the first line of the clause header.
func (s *scanner) resolveClause(levels []int, i, start int, def *m.Definition) int {
	depth := s.state.depth
	pending := s.state.pending
	s.state.pending = nil

	if def == nil || !lexer.IsFunctionKeyword(def.Keyword) {
		return depth
	}

	if def.Form != m.FormBlock && def.Form != m.FormInline && def.Form != m.FormHead {
		return depth
	}

	if !s.groups.Groups(def.Keyword, def.Name) {
		return depth
	}

	key := clauseKey(def.Keyword, def.Name)
	scope := s.scope()

	joined := pending != nil && pending.key == key && pending.scope == scope && pending.depth == depth
	if joined {
		for j := pending.start; j < i; j++ {
			if levels[j] < depth+1 {
				levels[j] = depth + 1
			}
		}
	}

	if def.Form == m.FormBlock {
		// The block pushed by the header line sets the pending marker on its end.
		return depth
	}

	level := depth

	if joined {
		start = i + 1
		level = depth + 1
	}

	s.state.pending = &pendingClause{key: key, scope: scope, start: start, depth: depth}

	return level
}

func (s *scanner) push(ev m.Event, def *m.Definition) {
	block := m.Block{Kind: m.BlockControl, ID: s.nextID}
	s.nextID++

	if ev.Header && def != nil {
		block.Keyword = def.Keyword
		block.Name = def.Name

		switch {
		case lexer.IsFunctionKeyword(def.Keyword):
			block.Kind = m.BlockFunction
			block.Groupable = s.groups.Groups(def.Keyword, def.Name)
		case lexer.IsTestKeyword(def.Keyword):
			block.Kind = m.BlockFunction
		case lexer.IsModuleKeyword(def.Keyword):
			block.Kind = m.BlockModule
		}
	}

	if block.Kind == m.BlockFunction {
		s.state.depth++
	}

	s.state.stack = append(s.state.stack, block)
}

// pop closes the innermost block. Closing on an empty stack is a no-op.
func (s *scanner) pop(i int) {
	if len(s.state.stack) == 0 {
		return
	}

	top := s.state.stack[len(s.state.stack)-1]
	s.state.stack = s.state.stack[:len(s.state.stack)-1]

	if top.Kind != m.BlockFunction {
		return
	}

	if s.state.depth > 0 {
		s.state.depth--
	}

	if top.Groupable {
		s.state.pending = &pendingClause{
			key:   clauseKey(top.Keyword, top.Name),
			scope: s.scope(),
			start: i + 1,
			depth: s.state.depth,
		}
	}
}

// snapshot freezes the state as it stands before line i.
func (s *scanner) snapshot(i int) snapshot {
	snap := snapshot{
		lex:   s.state.lex,
		depth: s.state.depth,
		stack: append([]m.Block(nil), s.state.stack...),
	}

	if p := s.state.pending; p != nil {
		snap.pending = true
		snap.pendingKey = p.key
		snap.pendingBack = i - p.start
		snap.scope = p.scope
		snap.pendDepth = p.depth
	}

	if s.state.lex.InHeader() {
		snap.headerBack = i - s.state.header
	}

	return snap
}

// restore resumes scanning before line i from a snapshot taken there.
func (s *scanner) restore(snap snapshot, i int) {
	s.state = scanState{
		lex:   snap.lex,
		depth: snap.depth,
		stack: append([]m.Block(nil), snap.stack...),
	}

	if snap.lex.InHeader() {
		s.state.header = i - snap.headerBack
	}

	if snap.pending {
		s.state.pending = &pendingClause{
			key:   snap.pendingKey,
			scope: snap.scope,
			start: i - snap.pendingBack,
			depth: snap.pendDepth,
		}
	}
}
