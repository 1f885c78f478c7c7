package jsonrepair

import "testing"

func TestVerifierStatusTracksCompletion(t *testing.T) {
	v := NewVerifier()
	input := `{ "name": "annie", "value": 1 }`

	for i := 0; i < len(input); i++ {
		c := input[i]
		if err := v.Update(c); err != nil {
			t.Fatalf("Update(%q) at %d: %v", c, i, err)
		}

		want := StatusContinue
		if c == '}' {
			want = StatusValid
		}
		if got := v.Status(); got != want {
			t.Errorf("after byte %q: Status() = %v, want %v", c, got, want)
		}
	}
}

func TestVerifierRejectsBareTopLevelValue(t *testing.T) {
	v := NewVerifier()
	if err := v.Update('"'); err == nil {
		t.Fatal("expected top-level quote to be rejected, got nil error")
	}
}

func TestVerifierUpdateFailureLeavesStateUnchanged(t *testing.T) {
	v := NewVerifier()
	for _, c := range []byte(`{ "a": 1`) {
		if err := v.Update(c); err != nil {
			t.Fatalf("unexpected error on %q: %v", c, err)
		}
	}

	lenBefore := v.Len()
	if err := v.Update(':'); err == nil {
		t.Fatal("expected ':' to be rejected after a digit")
	}
	if v.Len() != lenBefore {
		t.Errorf("Len() changed after a failed Update: got %d, want %d", v.Len(), lenBefore)
	}

	// The verifier must still accept whatever a valid continuation is,
	// exactly as if the bad byte had never been offered.
	if err := v.Update(','); err != nil {
		t.Fatalf("Update(',') after a rejected byte: %v", err)
	}
}

func TestVerifierMaximumDepthExceeded(t *testing.T) {
	v := NewVerifierWithMaximumDepth(1)
	if err := v.Update('{'); err != nil {
		t.Fatalf("first '{': %v", err)
	}
	if err := v.Update('"'); err != nil {
		t.Fatalf("key quote: %v", err)
	}
	for _, c := range []byte(`a": `) {
		if err := v.Update(c); err != nil {
			t.Fatalf("unexpected error on %q: %v", c, err)
		}
	}

	err := v.Update('[')
	if err == nil {
		t.Fatal("expected nesting past the maximum depth to fail")
	}
	var repairErr *RepairError
	if !asRepairError(err, &repairErr) || repairErr.Kind() != KindExceeded {
		t.Errorf("expected a KindExceeded error, got %v", err)
	}
}

func TestNewVerifierWithMaximumDepthZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected NewVerifierWithMaximumDepth(0) to panic")
		}
	}()
	NewVerifierWithMaximumDepth(0)
}

func TestVerifierResetRestoresInitialState(t *testing.T) {
	v := NewVerifier()
	for _, c := range []byte(`{ "a": 1 }`) {
		if err := v.Update(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if v.Status() != StatusValid {
		t.Fatal("expected a valid document before Reset")
	}

	v.Reset()
	if !v.IsEmpty() {
		t.Error("expected IsEmpty() after Reset")
	}
	if v.Status() != StatusContinue {
		t.Error("expected StatusContinue after Reset")
	}
}

func asRepairError(err error, target **RepairError) bool {
	re, ok := err.(*RepairError)
	if ok {
		*target = re
	}
	return ok
}
