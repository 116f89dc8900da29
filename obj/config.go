package obj

// WordSize is the native register width of the target machine, in bits.
type WordSize int

const (
	WORD_SIZE_32 = WordSize(32) // Registers are Tetra values.
	WORD_SIZE_64 = WordSize(64) // Registers are Octa values.
)

// Config describes the target machine of a value graph.
type Config struct {
	WordSize WordSize
}

// DefaultConfig is a 64-bit target.
var DefaultConfig = Config{WordSize: WORD_SIZE_64}

// RegKind returns the kind of a native register.
func (cfg Config) RegKind() Kind {
	switch cfg.WordSize {
	case WORD_SIZE_32:
		return KIND_TETRA
	case WORD_SIZE_64:
		return KIND_OCTA
	}
	violation("reg", KIND_NONE, ErrWordSize)
	return KIND_NONE
}

// SetReg overwrites a value with a native register value.
func (cfg Config) SetReg(value uint64, v *Value) {
	kind := cfg.RegKind()
	if value&^kind.mask() != 0 {
		violation("reg", kind, ErrRegRange)
	}
	v.setInteger(kind, value)
}

// NewReg creates a native register value.
func (cfg Config) NewReg(value uint64) (v *Value) {
	v = &Value{}
	cfg.SetReg(value, v)
	return
}

// Reg returns the payload of a native register value.
func (cfg Config) Reg(v *Value) uint64 {
	v.expect("reg", cfg.RegKind())
	return v.u
}

// ZeroExtendToReg widens any integer value that fits into a native register.
func (cfg Config) ZeroExtendToReg(v *Value) uint64 {
	kind := kindOf(v)
	if !kind.Integer() {
		violation("zero_extend_to_reg", kind, ErrKindUnsupported)
	}
	if kind.bits() > uint(cfg.WordSize) {
		violation("zero_extend_to_reg", kind, ErrRegRange)
	}
	return v.u
}
