package obj

// AluOp is a binary ALU operation.
type AluOp int

//go:generate go tool stringer -linecomment -type=AluOp
const (
	ALU_OP_ADD = AluOp(0) // add
	ALU_OP_SUB = AluOp(1) // sub
	ALU_OP_AND = AluOp(2) // and
	ALU_OP_OR  = AluOp(3) // or
	ALU_OP_XOR = AluOp(4) // xor
)

// doAlu performs the requested ALU action on 64-bit operands. The caller
// truncates to the operand width.
func doAlu(op AluOp, a, b uint64) (output uint64) {
	switch op {
	case ALU_OP_ADD:
		output = a + b
	case ALU_OP_SUB:
		output = a + ((^b) + 1)
	case ALU_OP_AND:
		output = a & b
	case ALU_OP_OR:
		output = a | b
	case ALU_OP_XOR:
		output = a ^ b
	default:
		violation(op.String(), KIND_NONE, ErrKindUnsupported)
	}
	return
}

// operands checks that a and b are integers of the same kind.
func operands(op string, a, b *Value) Kind {
	kind := kindOf(a)
	if !kind.Integer() {
		violation(op, kind, ErrKindUnsupported)
	}
	if kindOf(b) != kind {
		violation(op, kindOf(b), ErrKindMismatch)
	}
	return kind
}

// Alu writes (a op b) into result, wrapping at the width of the operands.
// Both operands must be of the same integer kind. result may be a or b.
func Alu(op AluOp, a, b *Value, result *Value) {
	kind := operands(op.String(), a, b)
	result.setInteger(kind, doAlu(op, a.u, b.u))
}

// Add writes a+b into result.
func Add(a, b *Value, result *Value) {
	Alu(ALU_OP_ADD, a, b, result)
}

// Sub writes a-b into result.
func Sub(a, b *Value, result *Value) {
	Alu(ALU_OP_SUB, a, b, result)
}

// And writes a&b into result.
func And(a, b *Value, result *Value) {
	Alu(ALU_OP_AND, a, b, result)
}

// Or writes a|b into result.
func Or(a, b *Value, result *Value) {
	Alu(ALU_OP_OR, a, b, result)
}

// Xor writes a^b into result.
func Xor(a, b *Value, result *Value) {
	Alu(ALU_OP_XOR, a, b, result)
}

// Not writes the bitwise complement of a into result.
func Not(a *Value, result *Value) {
	value := a.integer("not")
	result.setInteger(a.kind, ^value)
}

// Neg writes the two's complement negation of a into result.
func Neg(a *Value, result *Value) {
	value := a.integer("neg")
	result.setInteger(a.kind, -value)
}

// signed returns the two's complement reading of an integer payload.
func signed(kind Kind, value uint64) int64 {
	shift := 64 - kind.bits()
	return int64(value<<shift) >> shift
}

func compare[T int64 | uint64 | float64](a, b T) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// Compare returns -1, 0 or 1 as a is less than, equal to or greater than b.
// Integers compare as signed two's complement values. Doubles compare by
// value.
func Compare(a, b *Value) int {
	if kindOf(a) == KIND_DOUBLE {
		if kindOf(b) != KIND_DOUBLE {
			violation("compare", kindOf(b), ErrKindMismatch)
		}
		return compare(a.d, b.d)
	}
	kind := operands("compare", a, b)
	return compare(signed(kind, a.u), signed(kind, b.u))
}

// CompareUnsigned is Compare for integers read as unsigned values.
func CompareUnsigned(a, b *Value) int {
	operands("compare_unsigned", a, b)
	return compare(a.u, b.u)
}

// SarShift writes a, arithmetically shifted right by n bits, into out.
func SarShift(a *Value, n uint8, out *Value) {
	value := a.integer("sar")
	out.setInteger(a.kind, uint64(signed(a.kind, value)>>n))
}

// AndWith masks an integer value in place with a byte.
func AndWith(v *Value, mask uint8) {
	v.u = v.integer("and_with") & uint64(mask)
}

// Increment adds one to an integer value in place.
func Increment(v *Value) {
	v.setInteger(v.kind, v.integer("increment")+1)
}

// Decrement subtracts one from an integer value in place.
func Decrement(v *Value) {
	v.setInteger(v.kind, v.integer("decrement")-1)
}
