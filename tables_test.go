package jsonrepair

import (
	"encoding/json"
	"testing"
)

// TestTransitionTableWellFormed enumerates every (state, class) cell and
// checks it names a reachable state or a real structural event — a typo
// in the table (e.g. an out-of-range target state) would otherwise only
// surface as a mysterious panic deep inside some unrelated test.
func TestTransitionTableWellFormed(t *testing.T) {
	for s := parseState(0); s < numStates; s++ {
		for c := charClass(0); c < numClasses; c++ {
			tr := transitionTable[s][c]
			switch tr.kind {
			case trError:
			case trSimple:
				if tr.state >= numStates {
					t.Errorf("state %d class %d: simple transition targets out-of-range state %d", s, c, tr.state)
				}
			case trComplex:
				if tr.event > evtColon {
					t.Errorf("state %d class %d: complex transition has out-of-range event %d", s, c, tr.event)
				}
			default:
				t.Errorf("state %d class %d: unknown transition kind %d", s, c, tr.kind)
			}
		}
	}
}

func TestByteClassTableCoversASCII(t *testing.T) {
	for b := 0; b < 128; b++ {
		c := byteClass(byte(b))
		if c > numClasses {
			t.Errorf("byte %d: class %d out of range", b, c)
		}
	}
}

// TestVerifierAgreesWithEncodingJSON cross-checks full-document validity
// against the standard library's own JSON grammar, per values spanning
// every literal, container, and number form this automaton recognizes.
func TestVerifierAgreesWithEncodingJSON(t *testing.T) {
	valid := []string{
		`{}`,
		`{ }`,
		`[]`,
		`{"a":1}`,
		`{"a": [1, 2, 3]}`,
		`{"a": "b\"c"}`,
		`{"a": -12.5e+10}`,
		`{"a": null, "b": true, "c": false}`,
		`{"a": {"b": {"c": []}}}`,
		`{ "users": [{ "id": 1, "name": "Miguel", "verified_at": null }] }`,
	}

	for _, doc := range valid {
		if !json.Valid([]byte(doc)) {
			t.Fatalf("test bug: %q is not actually valid per encoding/json", doc)
		}

		v := NewVerifier()
		var failed error
		for i := 0; i < len(doc); i++ {
			if err := v.Update(doc[i]); err != nil {
				failed = err
				break
			}
		}
		if failed != nil {
			t.Errorf("Verifier rejected valid document %q: %v", doc, failed)
			continue
		}
		if v.Status() != StatusValid {
			t.Errorf("Verifier did not reach StatusValid for complete document %q", doc)
		}
	}
}

func TestVerifierRejectsInvalidDocuments(t *testing.T) {
	invalid := []string{
		`{,}`,
		`{"a":}`,
		`{"a" "b"}`,
		`[1,]`,
		`{"a": 01}`,
		`{'a': 1}`,
	}

	for _, doc := range invalid {
		if json.Valid([]byte(doc)) {
			t.Fatalf("test bug: %q is actually valid per encoding/json", doc)
		}

		v := NewVerifier()
		rejected := false
		for i := 0; i < len(doc); i++ {
			if err := v.Update(doc[i]); err != nil {
				rejected = true
				break
			}
		}
		if !rejected {
			t.Errorf("Verifier accepted every byte of invalid document %q (status %v)", doc, v.Status())
		}
	}
}
