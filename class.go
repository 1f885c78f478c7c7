package jsonrepair

// charClass is the "column" of the transition table: the equivalence class
// a single input byte belongs to. The order of these constants must stay in
// lockstep with the column order baked into transitionTable — the table is
// indexed positionally, not by name.
type charClass uint8

const (
	classSpace charClass = iota
	classWhitespace
	classBraceOpen
	classBraceClose
	classBracketOpen
	classBracketClose
	classColon
	classComma
	classQuote
	classBackslash
	classSlash
	classPlus
	classMinus
	classDot
	classZero
	classDigit
	classLowA
	classLowB
	classLowC
	classLowD
	classLowE
	classLowF
	classLowL
	classLowN
	classLowR
	classLowS
	classLowT
	classLowU
	classAbcdf
	classE
	classOther

	// numClasses is both the count of real classes above and the sentinel
	// value byteClass returns for bytes that can never extend a JSON
	// document (the control characters below space other than tab/CR/LF).
	numClasses
)

// byteClass maps an ASCII byte (0-127) to its charClass. Bytes >= 128 are
// UTF-8 continuation bytes and never reach this table; see Verifier.Update.
func byteClass(b byte) charClass {
	return byteClasses[b]
}

var byteClasses = [128]charClass{
	numClasses, numClasses, numClasses, numClasses, numClasses, numClasses, numClasses, numClasses,
	numClasses, classWhitespace, classWhitespace, numClasses, numClasses, classWhitespace, numClasses, numClasses,
	numClasses, numClasses, numClasses, numClasses, numClasses, numClasses, numClasses, numClasses,
	numClasses, numClasses, numClasses, numClasses, numClasses, numClasses, numClasses, numClasses,
	classSpace, classOther, classQuote, classOther, classOther, classOther, classOther, classOther,
	classOther, classOther, classOther, classPlus, classComma, classMinus, classDot, classSlash,
	classZero, classDigit, classDigit, classDigit, classDigit, classDigit, classDigit, classDigit,
	classDigit, classDigit, classColon, classOther, classOther, classOther, classOther, classOther,
	classOther, classAbcdf, classAbcdf, classAbcdf, classAbcdf, classE, classAbcdf, classOther,
	classOther, classOther, classOther, classOther, classOther, classOther, classOther, classOther,
	classOther, classOther, classOther, classOther, classOther, classOther, classOther, classOther,
	classOther, classOther, classOther, classBracketOpen, classBackslash, classBracketClose, classOther, classOther,
	classOther, classLowA, classLowB, classLowC, classLowD, classLowE, classLowF, classOther,
	classOther, classOther, classOther, classOther, classLowL, classOther, classLowN, classOther,
	classOther, classOther, classLowR, classLowS, classLowT, classLowU, classOther, classOther,
	classOther, classOther, classOther, classBraceOpen, classOther, classBraceClose, classOther, classOther,
}
