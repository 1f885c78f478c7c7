package jsonrepair

import "unicode/utf8"

// Option configures a Builder at construction time, following this
// package's functional-options idiom.
type Option func(*buildConfig)

type buildConfig struct {
	maximumDepth    int
	initialCapacity int
}

func defaultBuildConfig() buildConfig {
	return buildConfig{maximumDepth: -1, initialCapacity: 512}
}

// WithMaximumDepth caps nesting depth. depth must be greater than 0;
// WithMaximumDepth(0) (or any non-positive depth) panics when called,
// mirroring NewVerifierWithMaximumDepth's single documented abort — there
// is no "0 means unbounded" sentinel in this package.
func WithMaximumDepth(depth int) Option {
	if depth <= 0 {
		panic("jsonrepair: maximum depth must be greater than 0")
	}
	return func(c *buildConfig) { c.maximumDepth = depth }
}

// WithCapacity pre-allocates the Builder's internal buffer. It is only a
// sizing hint, never a hard ceiling on input length.
func WithCapacity(capacity int) Option {
	return func(c *buildConfig) { c.initialCapacity = capacity }
}

// Builder appends bytes to an internal buffer while driving an embedded
// Verifier, and can produce a syntactically repaired copy of that buffer
// on demand.
//
// Unlike Verifier, once a Builder has rejected a byte it stays invalid
// permanently — further Update calls keep failing even if the bytes they
// carry would otherwise have been acceptable. Call Reset to start over.
type Builder struct {
	data     []byte
	invalid  bool
	verifier Verifier
}

// NewBuilder creates a Builder. Without options it has unbounded nesting
// depth and a default initial capacity; WithMaximumDepth and WithCapacity
// override these.
func NewBuilder(opts ...Option) *Builder {
	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var v *Verifier
	if cfg.maximumDepth <= 0 {
		v = NewVerifier()
	} else {
		v = NewVerifierWithMaximumDepth(cfg.maximumDepth)
	}

	return &Builder{
		data:     make([]byte, 0, cfg.initialCapacity),
		verifier: *v,
	}
}

// Len reports how many bytes this Builder has accepted.
func (b *Builder) Len() int { return len(b.data) }

// IsEmpty reports whether this Builder has accepted any bytes yet.
func (b *Builder) IsEmpty() bool { return len(b.data) == 0 }

// Status reports the embedded Verifier's status.
func (b *Builder) Status() Status { return b.verifier.Status() }

// Reset rewinds the Builder to its initial, empty, valid state.
func (b *Builder) Reset() {
	b.invalid = false
	b.data = b.data[:0]
	b.verifier.Reset()
}

// Update appends source to the buffer, byte by byte, stopping at (and
// reporting) the first byte that would make the document invalid. Once a
// Builder has latched invalid, Update always fails without inspecting
// source, per the type's own doc comment.
func (b *Builder) Update(source []byte) error {
	if b.invalid {
		return newRepairError(KindInvalid, -1, nil)
	}

	for _, c := range source {
		if err := b.verifier.Update(c); err != nil {
			b.invalid = true
			return err
		}
		b.data = append(b.data, c)
	}
	return nil
}

// UpdateString is Update for a string source.
func (b *Builder) UpdateString(source string) error {
	return b.Update([]byte(source))
}

// UpdateByte is Update for a single byte.
func (b *Builder) UpdateByte(c byte) error {
	return b.Update([]byte{c})
}

// Bytes returns the accepted bytes as-is, uncompleted, or an error if the
// Builder is invalid.
func (b *Builder) Bytes() ([]byte, error) {
	if b.invalid {
		return nil, newRepairError(KindInvalid, -1, nil)
	}
	return b.data, nil
}

// String is Bytes, converted to a string.
//
// Returns an error with KindUtf8 if the accepted bytes are not valid
// UTF-8 (this package otherwise never checks UTF-8 well-formedness; see
// Verifier.Update's continuation-byte handling).
func (b *Builder) String() (string, error) {
	data, err := b.Bytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", newRepairError(KindUtf8, -1, nil)
	}
	return string(data), nil
}

// CompletedBytes returns the accepted bytes rewritten into a complete,
// syntactically valid JSON document: truncated back to the last
// known-good point and closed out, per Verifier.Complete.
func (b *Builder) CompletedBytes() ([]byte, error) {
	if b.invalid {
		return nil, newRepairError(KindInvalid, -1, nil)
	}

	if b.verifier.Status() != StatusContinue {
		return b.data, nil
	}

	until, suffix := b.verifier.Complete()
	out := b.data
	if until != nil {
		cut := *until
		if cut == 0 {
			cut = 1
		}
		if cut > len(out) {
			cut = len(out)
		}
		out = out[:cut]
	}
	out = append(append([]byte(nil), out...), suffix...)
	return out, nil
}

// CompletedString is CompletedBytes, converted to a string. Returns an
// error with KindUtf8 if the result is not valid UTF-8.
func (b *Builder) CompletedString() (string, error) {
	data, err := b.CompletedBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", newRepairError(KindUtf8, -1, nil)
	}
	return string(data), nil
}

// NewBuilderFromVerifier wraps an already-advanced Verifier in a fresh
// Builder, for callers who validated a prefix with a standalone Verifier
// and now want to complete it.
//
// Hazard: the returned Builder's byte buffer starts empty — it has no
// record of the bytes that produced verifier's state. CompletedBytes will
// compute a correct suffix (it only depends on verifier's internal state)
// but truncation offsets refer to a buffer the Builder was never given.
// Only use this when you separately retain the exact byte sequence fed to
// verifier and intend to reconstruct the final document yourself from
// that sequence plus the suffix; prefer driving a Builder directly when
// possible.
func NewBuilderFromVerifier(v Verifier) *Builder {
	return &Builder{verifier: v}
}
