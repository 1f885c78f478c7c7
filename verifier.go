package jsonrepair

import "math"

// nestedKind is the syntactic stack's alphabet ("what's expected next"):
// whether the value currently being read is an object key, an array
// element, or an object value.
type nestedKind uint8

const (
	nestedKey nestedKind = iota
	nestedArray
	nestedObject
)

// structEntry is one frame of the structural stack ("what bracket has to
// close"): the container kind plus the lastOK offset recorded when the
// container was opened, used by Complete to decide which open containers
// still need a closing token after truncation.
type structEntry struct {
	kind   nestedKind
	anchor int
}

// Status is the verifier's coarse-grained outcome.
type Status int

const (
	// StatusContinue means the bytes seen so far are a valid prefix of a
	// JSON document, but the document is not yet complete.
	StatusContinue Status = iota
	// StatusValid means the bytes seen so far form a complete, standalone
	// JSON document.
	StatusValid
)

func (s Status) String() string {
	if s == StatusValid {
		return "valid"
	}
	return "continue"
}

// Verifier is a byte-at-a-time pushdown automaton that tracks whether the
// bytes fed to it so far form a valid prefix of a JSON document.
//
// A failed Update never mutates the Verifier: the next call behaves as if
// the rejected byte had never been offered, so the same Verifier can be
// probed with several candidate bytes until one is accepted.
//
// At the top level only whitespace, '{' or '[' is accepted: bare strings,
// numbers, booleans and null are rejected.
//
// Verifier holds no pointers of its own beyond its two stack slices. A
// plain assignment copies the struct but not the slices' backing arrays:
// after a pop, a later push on one copy can overwrite an element the other
// copy still sees. Use Reset to rewind a Verifier in place instead of
// replacing it with a fresh zero value, to preserve any configured maximum
// depth.
type Verifier struct {
	maximum     int
	state       parseState
	nestedStack []nestedKind
	structStack []structEntry
	length      int
	lastOK      int
}

// NewVerifier creates a Verifier with unbounded nesting depth.
func NewVerifier() *Verifier {
	return NewVerifierWithMaximumDepth(math.MaxInt)
}

// NewVerifierWithMaximumDepth creates a Verifier that rejects input nested
// deeper than maximumDepth containers. maximumDepth must be greater than 0;
// constructing a Verifier with maximumDepth == 0 panics, mirroring the
// single documented abort in this package.
func NewVerifierWithMaximumDepth(maximumDepth int) *Verifier {
	if maximumDepth <= 0 {
		panic("jsonrepair: maximum depth must be greater than 0")
	}
	return &Verifier{
		maximum: maximumDepth,
		state:   stateBegin,
	}
}

// Len reports how many bytes this Verifier has accepted.
func (v *Verifier) Len() int { return v.length }

// IsEmpty reports whether this Verifier has accepted any bytes yet.
func (v *Verifier) IsEmpty() bool { return v.length == 0 }

// Status reports whether the accepted bytes form a complete JSON document.
func (v *Verifier) Status() Status {
	if v.state == stateOk && len(v.nestedStack) == 0 {
		return StatusValid
	}
	return StatusContinue
}

// Reset rewinds the Verifier to its initial state, keeping its configured
// maximum depth.
func (v *Verifier) Reset() {
	v.length = 0
	v.lastOK = 0
	v.state = stateBegin
	v.nestedStack = v.nestedStack[:0]
	v.structStack = v.structStack[:0]
}

// Update applies a single byte to the automaton. On success the Verifier's
// state advances. On failure the Verifier is left exactly as it was before
// the call, and the returned error names why the byte was rejected.
func (v *Verifier) Update(b byte) error {
	if b >= 0x80 {
		// UTF-8 continuation byte: accepted leniently, reapplying the
		// current state without attempting to validate the sequence.
		return v.advance(v.state)
	}

	class := byteClass(b)
	if class == numClasses {
		return newRepairError(KindInvalid, v.length, nil)
	}

	t := transitionTable[v.state][class]
	switch t.kind {
	case trSimple:
		return v.advance(t.state)
	case trComplex:
		return v.applyEvent(t.event)
	default:
		return newRepairError(KindInvalid, v.length, nil)
	}
}

func (v *Verifier) applyEvent(e structEvent) error {
	switch e {
	case evtBraceEmptyClose:
		if err := v.popNested(nestedKey); err != nil {
			return err
		}
		if err := v.exit(nestedObject); err != nil {
			return err
		}
		return v.advance(stateOk)
	case evtBraceClose:
		if err := v.popNested(nestedObject); err != nil {
			return err
		}
		if err := v.exit(nestedObject); err != nil {
			return err
		}
		return v.advance(stateOk)
	case evtBracketClose:
		if err := v.popNested(nestedArray); err != nil {
			return err
		}
		if err := v.exit(nestedArray); err != nil {
			return err
		}
		return v.advance(stateOk)
	case evtBraceOpen:
		if err := v.pushNested(nestedKey); err != nil {
			return err
		}
		if err := v.enter(nestedObject); err != nil {
			return err
		}
		return v.advance(stateObject)
	case evtBracketOpen:
		if err := v.pushNested(nestedArray); err != nil {
			return err
		}
		if err := v.enter(nestedArray); err != nil {
			return err
		}
		return v.advance(stateArray)
	case evtQuote:
		top, ok := v.topNestedKind()
		switch {
		case ok && top == nestedKey:
			return v.advance(stateColon)
		case ok && (top == nestedObject || top == nestedArray):
			return v.advance(stateOk)
		default:
			return newRepairError(KindInvalid, v.length, nil)
		}
	case evtComma:
		top, ok := v.topNestedKind()
		switch {
		case ok && top == nestedObject:
			v.lastOK = v.length
			if err := v.switchNested(nestedObject, nestedKey); err != nil {
				return err
			}
			return v.advance(stateKey)
		case ok && top == nestedArray:
			return v.advance(stateValue)
		default:
			return newRepairError(KindInvalid, v.length, nil)
		}
	case evtColon:
		if err := v.switchNested(nestedKey, nestedObject); err != nil {
			return err
		}
		return v.advance(stateValue)
	default:
		return newRepairError(KindInvalid, v.length, nil)
	}
}

// topNestedKind inspects the top of the syntactic stack without mutating
// it, used to disambiguate the Quote and Comma events (which behave
// differently depending on what's currently being read).
func (v *Verifier) topNestedKind() (kind nestedKind, ok bool) {
	if len(v.nestedStack) == 0 {
		return 0, false
	}
	return v.nestedStack[len(v.nestedStack)-1], true
}

func (v *Verifier) pushNested(k nestedKind) error {
	if len(v.nestedStack) >= v.maximum {
		return newRepairError(KindExceeded, v.length, nil)
	}
	v.nestedStack = append(v.nestedStack, k)
	return nil
}

func (v *Verifier) popNested(want nestedKind) error {
	if len(v.nestedStack) == 0 {
		return newRepairError(KindInvalid, v.length, nil)
	}
	top := v.nestedStack[len(v.nestedStack)-1]
	if top != want {
		return newRepairError(KindInvalid, v.length, nil)
	}
	v.nestedStack = v.nestedStack[:len(v.nestedStack)-1]
	return nil
}

func (v *Verifier) switchNested(from, to nestedKind) error {
	if err := v.popNested(from); err != nil {
		return err
	}
	return v.pushNested(to)
}

func (v *Verifier) enter(k nestedKind) error {
	if k == nestedKey || len(v.structStack) >= v.maximum {
		return newRepairError(KindInvalid, v.length, nil)
	}
	v.structStack = append(v.structStack, structEntry{kind: k, anchor: v.lastOK})
	return nil
}

func (v *Verifier) exit(want nestedKind) error {
	if len(v.structStack) == 0 {
		return newRepairError(KindInvalid, v.length, nil)
	}
	top := v.structStack[len(v.structStack)-1]
	if top.kind != want {
		return newRepairError(KindInvalid, v.length, nil)
	}
	v.structStack = v.structStack[:len(v.structStack)-1]
	return nil
}

// advance commits a plain state transition, bumping length and
// re-anchoring lastOK to the post-byte length when the new state is
// stateOk, when an object is opened from stateValue, or when the new state
// is stateArray while the syntactic stack's top is an array (which covers
// every array open, since the push happens before advance).
func (v *Verifier) advance(next parseState) error {
	prev := v.state
	v.length++

	if next == stateOk {
		v.lastOK = v.length
	}
	top, ok := v.topNestedKind()
	if (next == stateObject && prev == stateValue) ||
		(next == stateArray && ok && top == nestedArray) {
		v.lastOK = v.length
	}

	v.state = next
	return nil
}

// Complete derives how to turn the current (possibly incomplete) prefix
// into valid JSON: a byte offset to truncate back to (nil means no
// truncation is needed) and a suffix of closing tokens to append after
// truncation.
//
// Complete never mutates the Verifier and is safe to call at any Status.
func (v *Verifier) Complete() (truncateAt *int, suffix []byte) {
	var tokens []byte
	var lastOK *int

	switch v.state {
	case stateInteger:
		// A complete number literal; nothing to append.
	case stateNullNu:
		tokens = append(tokens, "ull"...)
	case stateNullNul:
		tokens = append(tokens, "ll"...)
	case stateNullNull:
		tokens = append(tokens, "l"...)
	case stateTrueTr:
		tokens = append(tokens, "rue"...)
	case stateTrueTru:
		tokens = append(tokens, "ue"...)
	case stateFalseFa:
		tokens = append(tokens, "alse"...)
	case stateFalseFal:
		tokens = append(tokens, "lse"...)
	case stateFalseFals:
		tokens = append(tokens, "se"...)
	case stateFalseFalse, stateTrueTrue:
		tokens = append(tokens, 'e')
	case stateString:
		if top, ok := v.topNestedKind(); ok && top == nestedKey {
			last := v.lastOK
			lastOK = &last
		} else {
			tokens = append(tokens, '"')
		}
	default:
		ok := v.lastOK
		lastOK = &ok
	}

	for i := len(v.structStack) - 1; i >= 0; i-- {
		entry := v.structStack[i]
		keep := lastOK == nil || *lastOK == 0 || entry.anchor < *lastOK
		if !keep {
			continue
		}
		switch entry.kind {
		case nestedArray:
			tokens = append(tokens, ']')
		case nestedObject:
			tokens = append(tokens, '}')
		}
	}

	return lastOK, tokens
}
