package jsonrepair

// structEvent names a structural transition that does more than just move
// to the next state: it also pushes, pops, or switches one of the two
// stacks. These correspond to the ComplexToken variants of the original
// table.
type structEvent uint8

const (
	evtBraceOpen structEvent = iota
	evtBraceEmptyClose
	evtBraceClose
	evtBracketOpen
	evtBracketClose
	evtQuote
	evtComma
	evtColon
)

// transitionKind discriminates the transition union: every (state, class)
// cell is exactly one of "dead" (no valid JSON continues this way), a
// plain state change, or a state change bundled with a structEvent.
type transitionKind uint8

const (
	trError transitionKind = iota
	trSimple
	trComplex
)

type transition struct {
	kind  transitionKind
	state parseState
	event structEvent
}

func simpleT(s parseState) transition {
	return transition{kind: trSimple, state: s}
}

func complexT(e structEvent) transition {
	return transition{kind: trComplex, event: e}
}

var invalidTransition = transition{kind: trError}

var transitionTable = [numStates][numClasses]transition{
	stateBegin: {
		classSpace: simpleT(stateBegin),
		classWhitespace: simpleT(stateBegin),
		classBraceOpen: complexT(evtBraceOpen),
		classBraceClose: invalidTransition,
		classBracketOpen: complexT(evtBracketOpen),
		classBracketClose: invalidTransition,
		classColon: invalidTransition,
		classComma: invalidTransition,
		classQuote: invalidTransition,
		classBackslash: invalidTransition,
		classSlash: invalidTransition,
		classPlus: invalidTransition,
		classMinus: invalidTransition,
		classDot: invalidTransition,
		classZero: invalidTransition,
		classDigit: invalidTransition,
		classLowA: invalidTransition,
		classLowB: invalidTransition,
		classLowC: invalidTransition,
		classLowD: invalidTransition,
		classLowE: invalidTransition,
		classLowF: invalidTransition,
		classLowL: invalidTransition,
		classLowN: invalidTransition,
		classLowR: invalidTransition,
		classLowS: invalidTransition,
		classLowT: invalidTransition,
		classLowU: invalidTransition,
		classAbcdf: invalidTransition,
		classE: invalidTransition,
		classOther: invalidTransition,
	},
	stateOk: {
		classSpace: simpleT(stateOk),
		classWhitespace: simpleT(stateOk),
		classBraceOpen: invalidTransition,
		classBraceClose: complexT(evtBraceClose),
		classBracketOpen: invalidTransition,
		classBracketClose: complexT(evtBracketClose),
		classColon: invalidTransition,
		classComma: complexT(evtComma),
		classQuote: invalidTransition,
		classBackslash: invalidTransition,
		classSlash: invalidTransition,
		classPlus: invalidTransition,
		classMinus: invalidTransition,
		classDot: invalidTransition,
		classZero: invalidTransition,
		classDigit: invalidTransition,
		classLowA: invalidTransition,
		classLowB: invalidTransition,
		classLowC: invalidTransition,
		classLowD: invalidTransition,
		classLowE: invalidTransition,
		classLowF: invalidTransition,
		classLowL: invalidTransition,
		classLowN: invalidTransition,
		classLowR: invalidTransition,
		classLowS: invalidTransition,
		classLowT: invalidTransition,
		classLowU: invalidTransition,
		classAbcdf: invalidTransition,
		classE: invalidTransition,
		classOther: invalidTransition,
	},
	stateObject: {
		classSpace: simpleT(stateObject),
		classWhitespace: simpleT(stateObject),
		classBraceOpen: invalidTransition,
		classBraceClose: complexT(evtBraceEmptyClose),
		classBracketOpen: invalidTransition,
		classBracketClose: invalidTransition,
		classColon: invalidTransition,
		classComma: invalidTransition,
		classQuote: simpleT(stateString),
		classBackslash: invalidTransition,
		classSlash: invalidTransition,
		classPlus: invalidTransition,
		classMinus: invalidTransition,
		classDot: invalidTransition,
		classZero: invalidTransition,
		classDigit: invalidTransition,
		classLowA: invalidTransition,
		classLowB: invalidTransition,
		classLowC: invalidTransition,
		classLowD: invalidTransition,
		classLowE: invalidTransition,
		classLowF: invalidTransition,
		classLowL: invalidTransition,
		classLowN: invalidTransition,
		classLowR: invalidTransition,
		classLowS: invalidTransition,
		classLowT: invalidTransition,
		classLowU: invalidTransition,
		classAbcdf: invalidTransition,
		classE: invalidTransition,
		classOther: invalidTransition,
	},
	stateKey: {
		classSpace: simpleT(stateKey),
		classWhitespace: simpleT(stateKey),
		classBraceOpen: invalidTransition,
		classBraceClose: invalidTransition,
		classBracketOpen: invalidTransition,
		classBracketClose: invalidTransition,
		classColon: invalidTransition,
		classComma: invalidTransition,
		classQuote: simpleT(stateString),
		classBackslash: invalidTransition,
		classSlash: invalidTransition,
		classPlus: invalidTransition,
		classMinus: invalidTransition,
		classDot: invalidTransition,
		classZero: invalidTransition,
		classDigit: invalidTransition,
		classLowA: invalidTransition,
		classLowB: invalidTransition,
		classLowC: invalidTransition,
		classLowD: invalidTransition,
		classLowE: invalidTransition,
		classLowF: invalidTransition,
		classLowL: invalidTransition,
		classLowN: invalidTransition,
		classLowR: invalidTransition,
		classLowS: invalidTransition,
		classLowT: invalidTransition,
		classLowU: invalidTransition,
		classAbcdf: invalidTransition,
		classE: invalidTransition,
		classOther: invalidTransition,
	},
	stateColon: {
		classSpace: simpleT(stateColon),
		classWhitespace: simpleT(stateColon),
		classBraceOpen: invalidTransition,
		classBraceClose: invalidTransition,
		classBracketOpen: invalidTransition,
		classBracketClose: invalidTransition,
		classColon: complexT(evtColon),
		classComma: invalidTransition,
		classQuote: invalidTransition,
		classBackslash: invalidTransition,
		classSlash: invalidTransition,
		classPlus: invalidTransition,
		classMinus: invalidTransition,
		classDot: invalidTransition,
		classZero: invalidTransition,
		classDigit: invalidTransition,
		classLowA: invalidTransition,
		classLowB: invalidTransition,
		classLowC: invalidTransition,
		classLowD: invalidTransition,
		classLowE: invalidTransition,
		classLowF: invalidTransition,
		classLowL: invalidTransition,
		classLowN: invalidTransition,
		classLowR: invalidTransition,
		classLowS: invalidTransition,
		classLowT: invalidTransition,
		classLowU: invalidTransition,
		classAbcdf: invalidTransition,
		classE: invalidTransition,
		classOther: invalidTransition,
	},
	stateValue: {
		classSpace: simpleT(stateValue),
		classWhitespace: simpleT(stateValue),
		classBraceOpen: complexT(evtBraceOpen),
		classBraceClose: invalidTransition,
		classBracketOpen: complexT(evtBracketOpen),
		classBracketClose: invalidTransition,
		classColon: invalidTransition,
		classComma: invalidTransition,
		classQuote: simpleT(stateString),
		classBackslash: invalidTransition,
		classSlash: invalidTransition,
		classPlus: invalidTransition,
		classMinus: simpleT(stateMinus),
		classDot: invalidTransition,
		classZero: simpleT(stateZero),
		classDigit: simpleT(stateInteger),
		classLowA: invalidTransition,
		classLowB: invalidTransition,
		classLowC: invalidTransition,
		classLowD: invalidTransition,
		classLowE: invalidTransition,
		classLowF: simpleT(stateFalseFa),
		classLowL: invalidTransition,
		classLowN: simpleT(stateNullNu),
		classLowR: invalidTransition,
		classLowS: invalidTransition,
		classLowT: simpleT(stateTrueTr),
		classLowU: invalidTransition,
		classAbcdf: invalidTransition,
		classE: invalidTransition,
		classOther: invalidTransition,
	},
	stateArray: {
		classSpace: simpleT(stateArray),
		classWhitespace: simpleT(stateArray),
		classBraceOpen: complexT(evtBraceOpen),
		classBraceClose: invalidTransition,
		classBracketOpen: complexT(evtBracketOpen),
		classBracketClose: complexT(evtBracketClose),
		classColon: invalidTransition,
		classComma: invalidTransition,
		classQuote: simpleT(stateString),
		classBackslash: invalidTransition,
		classSlash: invalidTransition,
		classPlus: invalidTransition,
		classMinus: simpleT(stateMinus),
		classDot: invalidTransition,
		classZero: simpleT(stateZero),
		classDigit: simpleT(stateInteger),
		classLowA: invalidTransition,
		classLowB: invalidTransition,
		classLowC: invalidTransition,
		classLowD: invalidTransition,
		classLowE: invalidTransition,
		classLowF: simpleT(stateFalseFa),
		classLowL: invalidTransition,
		classLowN: simpleT(stateNullNu),
		classLowR: invalidTransition,
		classLowS: invalidTransition,
		classLowT: simpleT(stateTrueTr),
		classLowU: invalidTransition,
		classAbcdf: invalidTransition,
		classE: invalidTransition,
		classOther: invalidTransition,
	},
	stateString: {
		classSpace: simpleT(stateString),
		classWhitespace: invalidTransition,
		classBraceOpen: simpleT(stateString),
		classBraceClose: simpleT(stateString),
		classBracketOpen: simpleT(stateString),
		classBracketClose: simpleT(stateString),
		classColon: simpleT(stateString),
		classComma: simpleT(stateString),
		classQuote: complexT(evtQuote),
		classBackslash: simpleT(stateEscape),
		classSlash: simpleT(stateString),
		classPlus: simpleT(stateString),
		classMinus: simpleT(stateString),
		classDot: simpleT(stateString),
		classZero: simpleT(stateString),
		classDigit: simpleT(stateString),
		classLowA: simpleT(stateString),
		classLowB: simpleT(stateString),
		classLowC: simpleT(stateString),
		classLowD: simpleT(stateString),
		classLowE: simpleT(stateString),
		classLowF: simpleT(stateString),
		classLowL: simpleT(stateString),
		classLowN: simpleT(stateString),
		classLowR: simpleT(stateString),
		classLowS: simpleT(stateString),
		classLowT: simpleT(stateString),
		classLowU: simpleT(stateString),
		classAbcdf: simpleT(stateString),
		classE: simpleT(stateString),
		classOther: simpleT(stateString),
	},
	stateEscape: {
		classSpace: invalidTransition,
		classWhitespace: invalidTransition,
		classBraceOpen: invalidTransition,
		classBraceClose: invalidTransition,
		classBracketOpen: invalidTransition,
		classBracketClose: invalidTransition,
		classColon: invalidTransition,
		classComma: invalidTransition,
		classQuote: simpleT(stateString),
		classBackslash: simpleT(stateString),
		classSlash: simpleT(stateString),
		classPlus: invalidTransition,
		classMinus: invalidTransition,
		classDot: invalidTransition,
		classZero: invalidTransition,
		classDigit: invalidTransition,
		classLowA: invalidTransition,
		classLowB: simpleT(stateString),
		classLowC: invalidTransition,
		classLowD: invalidTransition,
		classLowE: invalidTransition,
		classLowF: simpleT(stateString),
		classLowL: invalidTransition,
		classLowN: simpleT(stateString),
		classLowR: simpleT(stateString),
		classLowS: invalidTransition,
		classLowT: simpleT(stateString),
		classLowU: simpleT(stateU1),
		classAbcdf: invalidTransition,
		classE: invalidTransition,
		classOther: invalidTransition,
	},
	stateU1: {
		classSpace: invalidTransition,
		classWhitespace: invalidTransition,
		classBraceOpen: invalidTransition,
		classBraceClose: invalidTransition,
		classBracketOpen: invalidTransition,
		classBracketClose: invalidTransition,
		classColon: invalidTransition,
		classComma: invalidTransition,
		classQuote: invalidTransition,
		classBackslash: invalidTransition,
		classSlash: invalidTransition,
		classPlus: invalidTransition,
		classMinus: invalidTransition,
		classDot: invalidTransition,
		classZero: simpleT(stateU2),
		classDigit: simpleT(stateU2),
		classLowA: simpleT(stateU2),
		classLowB: simpleT(stateU2),
		classLowC: simpleT(stateU2),
		classLowD: simpleT(stateU2),
		classLowE: simpleT(stateU2),
		classLowF: simpleT(stateU2),
		classLowL: invalidTransition,
		classLowN: invalidTransition,
		classLowR: invalidTransition,
		classLowS: invalidTransition,
		classLowT: invalidTransition,
		classLowU: invalidTransition,
		classAbcdf: simpleT(stateU2),
		classE: simpleT(stateU2),
		classOther: invalidTransition,
	},
	stateU2: {
		classSpace: invalidTransition,
		classWhitespace: invalidTransition,
		classBraceOpen: invalidTransition,
		classBraceClose: invalidTransition,
		classBracketOpen: invalidTransition,
		classBracketClose: invalidTransition,
		classColon: invalidTransition,
		classComma: invalidTransition,
		classQuote: invalidTransition,
		classBackslash: invalidTransition,
		classSlash: invalidTransition,
		classPlus: invalidTransition,
		classMinus: invalidTransition,
		classDot: invalidTransition,
		classZero: simpleT(stateU3),
		classDigit: simpleT(stateU3),
		classLowA: simpleT(stateU3),
		classLowB: simpleT(stateU3),
		classLowC: simpleT(stateU3),
		classLowD: simpleT(stateU3),
		classLowE: simpleT(stateU3),
		classLowF: simpleT(stateU3),
		classLowL: invalidTransition,
		classLowN: invalidTransition,
		classLowR: invalidTransition,
		classLowS: invalidTransition,
		classLowT: invalidTransition,
		classLowU: invalidTransition,
		classAbcdf: simpleT(stateU3),
		classE: simpleT(stateU3),
		classOther: invalidTransition,
	},
	stateU3: {
		classSpace: invalidTransition,
		classWhitespace: invalidTransition,
		classBraceOpen: invalidTransition,
		classBraceClose: invalidTransition,
		classBracketOpen: invalidTransition,
		classBracketClose: invalidTransition,
		classColon: invalidTransition,
		classComma: invalidTransition,
		classQuote: invalidTransition,
		classBackslash: invalidTransition,
		classSlash: invalidTransition,
		classPlus: invalidTransition,
		classMinus: invalidTransition,
		classDot: invalidTransition,
		classZero: simpleT(stateU4),
		classDigit: simpleT(stateU4),
		classLowA: simpleT(stateU4),
		classLowB: simpleT(stateU4),
		classLowC: simpleT(stateU4),
		classLowD: simpleT(stateU4),
		classLowE: simpleT(stateU4),
		classLowF: simpleT(stateU4),
		classLowL: invalidTransition,
		classLowN: invalidTransition,
		classLowR: invalidTransition,
		classLowS: invalidTransition,
		classLowT: invalidTransition,
		classLowU: invalidTransition,
		classAbcdf: simpleT(stateU4),
		classE: simpleT(stateU4),
		classOther: invalidTransition,
	},
	stateU4: {
		classSpace: invalidTransition,
		classWhitespace: invalidTransition,
		classBraceOpen: invalidTransition,
		classBraceClose: invalidTransition,
		classBracketOpen: invalidTransition,
		classBracketClose: invalidTransition,
		classColon: invalidTransition,
		classComma: invalidTransition,
		classQuote: invalidTransition,
		classBackslash: invalidTransition,
		classSlash: invalidTransition,
		classPlus: invalidTransition,
		classMinus: invalidTransition,
		classDot: invalidTransition,
		classZero: simpleT(stateString),
		classDigit: simpleT(stateString),
		classLowA: simpleT(stateString),
		classLowB: simpleT(stateString),
		classLowC: simpleT(stateString),
		classLowD: simpleT(stateString),
		classLowE: simpleT(stateString),
		classLowF: simpleT(stateString),
		classLowL: invalidTransition,
		classLowN: invalidTransition,
		classLowR: invalidTransition,
		classLowS: invalidTransition,
		classLowT: invalidTransition,
		classLowU: invalidTransition,
		classAbcdf: simpleT(stateString),
		classE: simpleT(stateString),
		classOther: invalidTransition,
	},
	stateMinus: {
		classSpace: invalidTransition,
		classWhitespace: invalidTransition,
		classBraceOpen: invalidTransition,
		classBraceClose: invalidTransition,
		classBracketOpen: invalidTransition,
		classBracketClose: invalidTransition,
		classColon: invalidTransition,
		classComma: invalidTransition,
		classQuote: invalidTransition,
		classBackslash: invalidTransition,
		classSlash: invalidTransition,
		classPlus: invalidTransition,
		classMinus: invalidTransition,
		classDot: invalidTransition,
		classZero: simpleT(stateZero),
		classDigit: simpleT(stateInteger),
		classLowA: invalidTransition,
		classLowB: invalidTransition,
		classLowC: invalidTransition,
		classLowD: invalidTransition,
		classLowE: invalidTransition,
		classLowF: invalidTransition,
		classLowL: invalidTransition,
		classLowN: invalidTransition,
		classLowR: invalidTransition,
		classLowS: invalidTransition,
		classLowT: invalidTransition,
		classLowU: invalidTransition,
		classAbcdf: invalidTransition,
		classE: invalidTransition,
		classOther: invalidTransition,
	},
	stateZero: {
		classSpace: simpleT(stateOk),
		classWhitespace: simpleT(stateOk),
		classBraceOpen: invalidTransition,
		classBraceClose: complexT(evtBraceClose),
		classBracketOpen: invalidTransition,
		classBracketClose: complexT(evtBracketClose),
		classColon: invalidTransition,
		classComma: complexT(evtComma),
		classQuote: invalidTransition,
		classBackslash: invalidTransition,
		classSlash: invalidTransition,
		classPlus: invalidTransition,
		classMinus: invalidTransition,
		classDot: simpleT(stateFraction1),
		classZero: invalidTransition,
		classDigit: invalidTransition,
		classLowA: invalidTransition,
		classLowB: invalidTransition,
		classLowC: invalidTransition,
		classLowD: invalidTransition,
		classLowE: simpleT(stateExponent1),
		classLowF: invalidTransition,
		classLowL: invalidTransition,
		classLowN: invalidTransition,
		classLowR: invalidTransition,
		classLowS: invalidTransition,
		classLowT: invalidTransition,
		classLowU: invalidTransition,
		classAbcdf: invalidTransition,
		classE: simpleT(stateExponent1),
		classOther: invalidTransition,
	},
	stateInteger: {
		classSpace: simpleT(stateOk),
		classWhitespace: simpleT(stateOk),
		classBraceOpen: invalidTransition,
		classBraceClose: complexT(evtBraceClose),
		classBracketOpen: invalidTransition,
		classBracketClose: complexT(evtBracketClose),
		classColon: invalidTransition,
		classComma: complexT(evtComma),
		classQuote: invalidTransition,
		classBackslash: invalidTransition,
		classSlash: invalidTransition,
		classPlus: invalidTransition,
		classMinus: invalidTransition,
		classDot: simpleT(stateFraction1),
		classZero: simpleT(stateInteger),
		classDigit: simpleT(stateInteger),
		classLowA: invalidTransition,
		classLowB: invalidTransition,
		classLowC: invalidTransition,
		classLowD: invalidTransition,
		classLowE: simpleT(stateExponent1),
		classLowF: invalidTransition,
		classLowL: invalidTransition,
		classLowN: invalidTransition,
		classLowR: invalidTransition,
		classLowS: invalidTransition,
		classLowT: invalidTransition,
		classLowU: invalidTransition,
		classAbcdf: invalidTransition,
		classE: simpleT(stateExponent1),
		classOther: invalidTransition,
	},
	stateFraction1: {
		classSpace: invalidTransition,
		classWhitespace: invalidTransition,
		classBraceOpen: invalidTransition,
		classBraceClose: invalidTransition,
		classBracketOpen: invalidTransition,
		classBracketClose: invalidTransition,
		classColon: invalidTransition,
		classComma: invalidTransition,
		classQuote: invalidTransition,
		classBackslash: invalidTransition,
		classSlash: invalidTransition,
		classPlus: invalidTransition,
		classMinus: invalidTransition,
		classDot: invalidTransition,
		classZero: simpleT(stateFraction2),
		classDigit: simpleT(stateFraction2),
		classLowA: invalidTransition,
		classLowB: invalidTransition,
		classLowC: invalidTransition,
		classLowD: invalidTransition,
		classLowE: invalidTransition,
		classLowF: invalidTransition,
		classLowL: invalidTransition,
		classLowN: invalidTransition,
		classLowR: invalidTransition,
		classLowS: invalidTransition,
		classLowT: invalidTransition,
		classLowU: invalidTransition,
		classAbcdf: invalidTransition,
		classE: invalidTransition,
		classOther: invalidTransition,
	},
	stateFraction2: {
		classSpace: simpleT(stateOk),
		classWhitespace: simpleT(stateOk),
		classBraceOpen: invalidTransition,
		classBraceClose: complexT(evtBraceClose),
		classBracketOpen: invalidTransition,
		classBracketClose: complexT(evtBracketClose),
		classColon: invalidTransition,
		classComma: complexT(evtComma),
		classQuote: invalidTransition,
		classBackslash: invalidTransition,
		classSlash: invalidTransition,
		classPlus: invalidTransition,
		classMinus: invalidTransition,
		classDot: invalidTransition,
		classZero: simpleT(stateFraction2),
		classDigit: simpleT(stateFraction2),
		classLowA: invalidTransition,
		classLowB: invalidTransition,
		classLowC: invalidTransition,
		classLowD: invalidTransition,
		classLowE: simpleT(stateExponent1),
		classLowF: invalidTransition,
		classLowL: invalidTransition,
		classLowN: invalidTransition,
		classLowR: invalidTransition,
		classLowS: invalidTransition,
		classLowT: invalidTransition,
		classLowU: invalidTransition,
		classAbcdf: invalidTransition,
		classE: simpleT(stateExponent1),
		classOther: invalidTransition,
	},
	stateExponent1: {
		classSpace: invalidTransition,
		classWhitespace: invalidTransition,
		classBraceOpen: invalidTransition,
		classBraceClose: invalidTransition,
		classBracketOpen: invalidTransition,
		classBracketClose: invalidTransition,
		classColon: invalidTransition,
		classComma: invalidTransition,
		classQuote: invalidTransition,
		classBackslash: invalidTransition,
		classSlash: invalidTransition,
		classPlus: simpleT(stateExponent2),
		classMinus: simpleT(stateExponent2),
		classDot: invalidTransition,
		classZero: simpleT(stateExponent3),
		classDigit: simpleT(stateExponent3),
		classLowA: invalidTransition,
		classLowB: invalidTransition,
		classLowC: invalidTransition,
		classLowD: invalidTransition,
		classLowE: invalidTransition,
		classLowF: invalidTransition,
		classLowL: invalidTransition,
		classLowN: invalidTransition,
		classLowR: invalidTransition,
		classLowS: invalidTransition,
		classLowT: invalidTransition,
		classLowU: invalidTransition,
		classAbcdf: invalidTransition,
		classE: invalidTransition,
		classOther: invalidTransition,
	},
	stateExponent2: {
		classSpace: invalidTransition,
		classWhitespace: invalidTransition,
		classBraceOpen: invalidTransition,
		classBraceClose: invalidTransition,
		classBracketOpen: invalidTransition,
		classBracketClose: invalidTransition,
		classColon: invalidTransition,
		classComma: invalidTransition,
		classQuote: invalidTransition,
		classBackslash: invalidTransition,
		classSlash: invalidTransition,
		classPlus: invalidTransition,
		classMinus: invalidTransition,
		classDot: invalidTransition,
		classZero: simpleT(stateExponent3),
		classDigit: simpleT(stateExponent3),
		classLowA: invalidTransition,
		classLowB: invalidTransition,
		classLowC: invalidTransition,
		classLowD: invalidTransition,
		classLowE: invalidTransition,
		classLowF: invalidTransition,
		classLowL: invalidTransition,
		classLowN: invalidTransition,
		classLowR: invalidTransition,
		classLowS: invalidTransition,
		classLowT: invalidTransition,
		classLowU: invalidTransition,
		classAbcdf: invalidTransition,
		classE: invalidTransition,
		classOther: invalidTransition,
	},
	stateExponent3: {
		classSpace: simpleT(stateOk),
		classWhitespace: simpleT(stateOk),
		classBraceOpen: invalidTransition,
		classBraceClose: complexT(evtBraceClose),
		classBracketOpen: invalidTransition,
		classBracketClose: complexT(evtBracketClose),
		classColon: invalidTransition,
		classComma: complexT(evtComma),
		classQuote: invalidTransition,
		classBackslash: invalidTransition,
		classSlash: invalidTransition,
		classPlus: invalidTransition,
		classMinus: invalidTransition,
		classDot: invalidTransition,
		classZero: simpleT(stateExponent3),
		classDigit: simpleT(stateExponent3),
		classLowA: invalidTransition,
		classLowB: invalidTransition,
		classLowC: invalidTransition,
		classLowD: invalidTransition,
		classLowE: invalidTransition,
		classLowF: invalidTransition,
		classLowL: invalidTransition,
		classLowN: invalidTransition,
		classLowR: invalidTransition,
		classLowS: invalidTransition,
		classLowT: invalidTransition,
		classLowU: invalidTransition,
		classAbcdf: invalidTransition,
		classE: invalidTransition,
		classOther: invalidTransition,
	},
	stateTrueTr: {
		classSpace: invalidTransition,
		classWhitespace: invalidTransition,
		classBraceOpen: invalidTransition,
		classBraceClose: invalidTransition,
		classBracketOpen: invalidTransition,
		classBracketClose: invalidTransition,
		classColon: invalidTransition,
		classComma: invalidTransition,
		classQuote: invalidTransition,
		classBackslash: invalidTransition,
		classSlash: invalidTransition,
		classPlus: invalidTransition,
		classMinus: invalidTransition,
		classDot: invalidTransition,
		classZero: invalidTransition,
		classDigit: invalidTransition,
		classLowA: invalidTransition,
		classLowB: invalidTransition,
		classLowC: invalidTransition,
		classLowD: invalidTransition,
		classLowE: invalidTransition,
		classLowF: invalidTransition,
		classLowL: invalidTransition,
		classLowN: invalidTransition,
		classLowR: simpleT(stateTrueTru),
		classLowS: invalidTransition,
		classLowT: invalidTransition,
		classLowU: invalidTransition,
		classAbcdf: invalidTransition,
		classE: invalidTransition,
		classOther: invalidTransition,
	},
	stateTrueTru: {
		classSpace: invalidTransition,
		classWhitespace: invalidTransition,
		classBraceOpen: invalidTransition,
		classBraceClose: invalidTransition,
		classBracketOpen: invalidTransition,
		classBracketClose: invalidTransition,
		classColon: invalidTransition,
		classComma: invalidTransition,
		classQuote: invalidTransition,
		classBackslash: invalidTransition,
		classSlash: invalidTransition,
		classPlus: invalidTransition,
		classMinus: invalidTransition,
		classDot: invalidTransition,
		classZero: invalidTransition,
		classDigit: invalidTransition,
		classLowA: invalidTransition,
		classLowB: invalidTransition,
		classLowC: invalidTransition,
		classLowD: invalidTransition,
		classLowE: invalidTransition,
		classLowF: invalidTransition,
		classLowL: invalidTransition,
		classLowN: invalidTransition,
		classLowR: invalidTransition,
		classLowS: invalidTransition,
		classLowT: invalidTransition,
		classLowU: simpleT(stateTrueTrue),
		classAbcdf: invalidTransition,
		classE: invalidTransition,
		classOther: invalidTransition,
	},
	stateTrueTrue: {
		classSpace: invalidTransition,
		classWhitespace: invalidTransition,
		classBraceOpen: invalidTransition,
		classBraceClose: invalidTransition,
		classBracketOpen: invalidTransition,
		classBracketClose: invalidTransition,
		classColon: invalidTransition,
		classComma: invalidTransition,
		classQuote: invalidTransition,
		classBackslash: invalidTransition,
		classSlash: invalidTransition,
		classPlus: invalidTransition,
		classMinus: invalidTransition,
		classDot: invalidTransition,
		classZero: invalidTransition,
		classDigit: invalidTransition,
		classLowA: invalidTransition,
		classLowB: invalidTransition,
		classLowC: invalidTransition,
		classLowD: invalidTransition,
		classLowE: simpleT(stateOk),
		classLowF: invalidTransition,
		classLowL: invalidTransition,
		classLowN: invalidTransition,
		classLowR: invalidTransition,
		classLowS: invalidTransition,
		classLowT: invalidTransition,
		classLowU: invalidTransition,
		classAbcdf: invalidTransition,
		classE: invalidTransition,
		classOther: invalidTransition,
	},
	stateFalseFa: {
		classSpace: invalidTransition,
		classWhitespace: invalidTransition,
		classBraceOpen: invalidTransition,
		classBraceClose: invalidTransition,
		classBracketOpen: invalidTransition,
		classBracketClose: invalidTransition,
		classColon: invalidTransition,
		classComma: invalidTransition,
		classQuote: invalidTransition,
		classBackslash: invalidTransition,
		classSlash: invalidTransition,
		classPlus: invalidTransition,
		classMinus: invalidTransition,
		classDot: invalidTransition,
		classZero: invalidTransition,
		classDigit: invalidTransition,
		classLowA: simpleT(stateFalseFal),
		classLowB: invalidTransition,
		classLowC: invalidTransition,
		classLowD: invalidTransition,
		classLowE: invalidTransition,
		classLowF: invalidTransition,
		classLowL: invalidTransition,
		classLowN: invalidTransition,
		classLowR: invalidTransition,
		classLowS: invalidTransition,
		classLowT: invalidTransition,
		classLowU: invalidTransition,
		classAbcdf: invalidTransition,
		classE: invalidTransition,
		classOther: invalidTransition,
	},
	stateFalseFal: {
		classSpace: invalidTransition,
		classWhitespace: invalidTransition,
		classBraceOpen: invalidTransition,
		classBraceClose: invalidTransition,
		classBracketOpen: invalidTransition,
		classBracketClose: invalidTransition,
		classColon: invalidTransition,
		classComma: invalidTransition,
		classQuote: invalidTransition,
		classBackslash: invalidTransition,
		classSlash: invalidTransition,
		classPlus: invalidTransition,
		classMinus: invalidTransition,
		classDot: invalidTransition,
		classZero: invalidTransition,
		classDigit: invalidTransition,
		classLowA: invalidTransition,
		classLowB: invalidTransition,
		classLowC: invalidTransition,
		classLowD: invalidTransition,
		classLowE: invalidTransition,
		classLowF: invalidTransition,
		classLowL: simpleT(stateFalseFals),
		classLowN: invalidTransition,
		classLowR: invalidTransition,
		classLowS: invalidTransition,
		classLowT: invalidTransition,
		classLowU: invalidTransition,
		classAbcdf: invalidTransition,
		classE: invalidTransition,
		classOther: invalidTransition,
	},
	stateFalseFals: {
		classSpace: invalidTransition,
		classWhitespace: invalidTransition,
		classBraceOpen: invalidTransition,
		classBraceClose: invalidTransition,
		classBracketOpen: invalidTransition,
		classBracketClose: invalidTransition,
		classColon: invalidTransition,
		classComma: invalidTransition,
		classQuote: invalidTransition,
		classBackslash: invalidTransition,
		classSlash: invalidTransition,
		classPlus: invalidTransition,
		classMinus: invalidTransition,
		classDot: invalidTransition,
		classZero: invalidTransition,
		classDigit: invalidTransition,
		classLowA: invalidTransition,
		classLowB: invalidTransition,
		classLowC: invalidTransition,
		classLowD: invalidTransition,
		classLowE: invalidTransition,
		classLowF: invalidTransition,
		classLowL: invalidTransition,
		classLowN: invalidTransition,
		classLowR: invalidTransition,
		classLowS: simpleT(stateFalseFalse),
		classLowT: invalidTransition,
		classLowU: invalidTransition,
		classAbcdf: invalidTransition,
		classE: invalidTransition,
		classOther: invalidTransition,
	},
	stateFalseFalse: {
		classSpace: invalidTransition,
		classWhitespace: invalidTransition,
		classBraceOpen: invalidTransition,
		classBraceClose: invalidTransition,
		classBracketOpen: invalidTransition,
		classBracketClose: invalidTransition,
		classColon: invalidTransition,
		classComma: invalidTransition,
		classQuote: invalidTransition,
		classBackslash: invalidTransition,
		classSlash: invalidTransition,
		classPlus: invalidTransition,
		classMinus: invalidTransition,
		classDot: invalidTransition,
		classZero: invalidTransition,
		classDigit: invalidTransition,
		classLowA: invalidTransition,
		classLowB: invalidTransition,
		classLowC: invalidTransition,
		classLowD: invalidTransition,
		classLowE: simpleT(stateOk),
		classLowF: invalidTransition,
		classLowL: invalidTransition,
		classLowN: invalidTransition,
		classLowR: invalidTransition,
		classLowS: invalidTransition,
		classLowT: invalidTransition,
		classLowU: invalidTransition,
		classAbcdf: invalidTransition,
		classE: invalidTransition,
		classOther: invalidTransition,
	},
	stateNullNu: {
		classSpace: invalidTransition,
		classWhitespace: invalidTransition,
		classBraceOpen: invalidTransition,
		classBraceClose: invalidTransition,
		classBracketOpen: invalidTransition,
		classBracketClose: invalidTransition,
		classColon: invalidTransition,
		classComma: invalidTransition,
		classQuote: invalidTransition,
		classBackslash: invalidTransition,
		classSlash: invalidTransition,
		classPlus: invalidTransition,
		classMinus: invalidTransition,
		classDot: invalidTransition,
		classZero: invalidTransition,
		classDigit: invalidTransition,
		classLowA: invalidTransition,
		classLowB: invalidTransition,
		classLowC: invalidTransition,
		classLowD: invalidTransition,
		classLowE: invalidTransition,
		classLowF: invalidTransition,
		classLowL: invalidTransition,
		classLowN: invalidTransition,
		classLowR: invalidTransition,
		classLowS: invalidTransition,
		classLowT: invalidTransition,
		classLowU: simpleT(stateNullNul),
		classAbcdf: invalidTransition,
		classE: invalidTransition,
		classOther: invalidTransition,
	},
	stateNullNul: {
		classSpace: invalidTransition,
		classWhitespace: invalidTransition,
		classBraceOpen: invalidTransition,
		classBraceClose: invalidTransition,
		classBracketOpen: invalidTransition,
		classBracketClose: invalidTransition,
		classColon: invalidTransition,
		classComma: invalidTransition,
		classQuote: invalidTransition,
		classBackslash: invalidTransition,
		classSlash: invalidTransition,
		classPlus: invalidTransition,
		classMinus: invalidTransition,
		classDot: invalidTransition,
		classZero: invalidTransition,
		classDigit: invalidTransition,
		classLowA: invalidTransition,
		classLowB: invalidTransition,
		classLowC: invalidTransition,
		classLowD: invalidTransition,
		classLowE: invalidTransition,
		classLowF: invalidTransition,
		classLowL: simpleT(stateNullNull),
		classLowN: invalidTransition,
		classLowR: invalidTransition,
		classLowS: invalidTransition,
		classLowT: invalidTransition,
		classLowU: invalidTransition,
		classAbcdf: invalidTransition,
		classE: invalidTransition,
		classOther: invalidTransition,
	},
	stateNullNull: {
		classSpace: invalidTransition,
		classWhitespace: invalidTransition,
		classBraceOpen: invalidTransition,
		classBraceClose: invalidTransition,
		classBracketOpen: invalidTransition,
		classBracketClose: invalidTransition,
		classColon: invalidTransition,
		classComma: invalidTransition,
		classQuote: invalidTransition,
		classBackslash: invalidTransition,
		classSlash: invalidTransition,
		classPlus: invalidTransition,
		classMinus: invalidTransition,
		classDot: invalidTransition,
		classZero: invalidTransition,
		classDigit: invalidTransition,
		classLowA: invalidTransition,
		classLowB: invalidTransition,
		classLowC: invalidTransition,
		classLowD: invalidTransition,
		classLowE: invalidTransition,
		classLowF: invalidTransition,
		classLowL: simpleT(stateOk),
		classLowN: invalidTransition,
		classLowR: invalidTransition,
		classLowS: invalidTransition,
		classLowT: invalidTransition,
		classLowU: invalidTransition,
		classAbcdf: invalidTransition,
		classE: invalidTransition,
		classOther: invalidTransition,
	},
}
