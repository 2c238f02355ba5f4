package techspec

import (
	"github.com/tsawler/specsheet/model"
)

const parserName = "techspec"

// State is the scanner's position in the document structure.
type State int

const (
	// SeekingHeader: no section is open (frequency layout: no frequency yet).
	SeekingHeader State = iota
	// PendingSection: a header was seen, waiting for its section line.
	PendingSection
	// InSection: a section is open, no frequency block yet.
	InSection
	// InFrequencyBlock: rows are appended to the current frequency list.
	InFrequencyBlock

	// resumeState is a transition target meaning "the state before the
	// pending header". It is never a current state.
	resumeState State = -1
)

func (s State) String() string {
	switch s {
	case SeekingHeader:
		return "SeekingHeader"
	case PendingSection:
		return "PendingSection"
	case InSection:
		return "InSection"
	case InFrequencyBlock:
		return "InFrequencyBlock"
	default:
		return "Resume"
	}
}

type action int

const (
	actNone action = iota
	actPend
	actOpenSection
	actOpenFrequency
	actAppendRow
	actSkip
	actCancelPending
)

type transition struct {
	action action
	next   State
}

// transitionTable maps (state, line class) to a transition. A missing entry
// leaves the state unchanged and does nothing.
type transitionTable map[State]map[LineClass]transition

var sectionTransitions = transitionTable{
	SeekingHeader: {
		Header: {actPend, PendingSection},
	},
	PendingSection: {
		Header:          {actPend, PendingSection},
		SectionLine:     {actOpenSection, InSection},
		FrequencyMarker: {actCancelPending, resumeState},
		DataRow:         {actCancelPending, resumeState},
		Other:           {actCancelPending, resumeState},
	},
	InSection: {
		Header:          {actPend, PendingSection},
		FrequencyMarker: {actOpenFrequency, InFrequencyBlock},
	},
	InFrequencyBlock: {
		Header:          {actPend, PendingSection},
		FrequencyMarker: {actOpenFrequency, InFrequencyBlock},
		DataRow:         {actAppendRow, InFrequencyBlock},
		SectionLine:     {actSkip, InFrequencyBlock},
		Other:           {actSkip, InFrequencyBlock},
	},
}

var frequencyTransitions = transitionTable{
	SeekingHeader: {
		FrequencyMarker: {actOpenFrequency, InFrequencyBlock},
	},
	InFrequencyBlock: {
		FrequencyMarker: {actOpenFrequency, InFrequencyBlock},
		DataRow:         {actAppendRow, InFrequencyBlock},
		Other:           {actSkip, InFrequencyBlock},
	},
}

// scanner runs a transition table over normalized lines. Without sections
// every block lives under the empty section key.
type scanner struct {
	table   transitionTable
	classes classifier
	header  string
	policy  model.DuplicatePolicy

	state   State
	resume  State
	section string
	freq    string
	discard bool // current block was rejected by keep-first

	result model.TechSpecResult
	diags  []model.Diagnostic
}

func newScanner(table transitionTable, classes classifier, header string, policy model.DuplicatePolicy, sections bool) *scanner {
	s := &scanner{
		table:   table,
		classes: classes,
		header:  header,
		policy:  policy,
		state:   SeekingHeader,
		result:  make(model.TechSpecResult),
	}
	if !sections {
		s.result[""] = make(model.FrequencyBlocks)
	}
	return s
}

// run feeds every line through the state machine.
func (s *scanner) run(lines []string) {
	for i, line := range lines {
		s.step(i+1, line, s.classes.classify(line))
	}
}

func (s *scanner) step(n int, line string, class LineClass) {
	t, ok := s.table[s.state][class]
	if !ok {
		return
	}

	switch t.action {
	case actPend:
		if s.state != PendingSection {
			s.resume = s.state
		}

	case actOpenSection:
		s.section = s.header + " " + line
		s.result[s.section] = make(model.FrequencyBlocks)
		s.freq = ""
		s.discard = false

	case actOpenFrequency:
		s.openFrequency(n, line)

	case actAppendRow:
		s.appendRow(n, line)

	case actSkip:
		s.diag(n, line, "line in a frequency block does not match the data row grammar")

	case actCancelPending:
		s.diag(n, line, "header not followed by a section line")
		s.state = s.resume
		s.step(n, line, class)
		return
	}

	s.state = t.next
}

func (s *scanner) openFrequency(n int, line string) {
	freq := s.classes.frequency(line)
	blocks := s.result[s.section]
	s.freq = freq
	s.discard = false

	if _, exists := blocks[freq]; !exists {
		blocks[freq] = make([]model.DataRow, 0)
		return
	}

	switch s.policy {
	case model.PolicyAppend:
		s.diag(n, line, "repeated frequency block appended to the earlier one")
	case model.PolicyKeepFirst:
		s.discard = true
		s.diag(n, line, "repeated frequency block ignored")
	default:
		blocks[freq] = make([]model.DataRow, 0)
		s.diag(n, line, "repeated frequency block replaced the earlier one")
	}
}

func (s *scanner) appendRow(n int, line string) {
	if s.discard {
		return
	}
	row, ok := s.classes.row(line)
	if !ok {
		s.diag(n, line, "data row has an unparseable number")
		return
	}
	blocks := s.result[s.section]
	blocks[s.freq] = append(blocks[s.freq], row)
}

func (s *scanner) diag(n int, line, reason string) {
	s.diags = append(s.diags, model.Diagnostic{
		Parser: parserName,
		Line:   n,
		Text:   line,
		Reason: reason,
	})
}
