package jsonrepair

// parseState is a node in the table-driven pushdown automaton. Names follow
// the literal being scanned (e.g. stateTrueTru is "after reading 'tru'").
type parseState uint8

const (
	stateBegin parseState = iota
	stateOk
	stateObject
	stateKey
	stateColon
	stateValue
	stateArray
	stateString
	stateEscape
	stateU1
	stateU2
	stateU3
	stateU4
	stateMinus
	stateZero
	stateInteger
	stateFraction1
	stateFraction2
	stateExponent1
	stateExponent2
	stateExponent3
	stateTrueTr
	stateTrueTru
	stateTrueTrue
	stateFalseFa
	stateFalseFal
	stateFalseFals
	stateFalseFalse
	stateNullNu
	stateNullNul
	stateNullNull

	numStates
)
