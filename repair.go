package jsonrepair

// Repair is the one-shot convenience wrapper: feed input through a fresh
// Builder and return the completed, syntactically valid JSON string.
func Repair(input []byte) (string, error) {
	b := NewBuilder(WithCapacity(len(input)))
	if err := b.Update(input); err != nil {
		return "", err
	}
	return b.CompletedString()
}

// RepairString is Repair for a string input.
func RepairString(input string) (string, error) {
	return Repair([]byte(input))
}
