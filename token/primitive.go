package token

import "strings"

// PortKind distinguishes an input port from an output port.
type PortKind int

const (
	Input PortKind = iota
	Output
)

// Register is one of the four 8-bit low registers.
type Register int

const (
	RegB Register = iota
	RegC
	RegD
	RegE
)

// String returns the register's assembly spelling.
func (r Register) String() string {
	switch r {
	case RegB:
		return "bl"
	case RegC:
		return "cl"
	case RegD:
		return "dl"
	default:
		return "el"
	}
}

// PrimitiveKind tags which field of a Primitive is meaningful.
type PrimitiveKind int

const (
	PNumber PrimitiveKind = iota
	PPort
	PRegister
	PAccumulator
	PMemory
	PDynamicMemory
	PDynamicMemoryAccumulator
	PLabel
)

// Primitive is an operand value: a literal, a port, a register, the
// accumulator, a memory form, or an unresolved label reference.
type Primitive struct {
	Kind     PrimitiveKind
	Number   uint8
	PortKind PortKind
	PortNum  uint8
	Reg      Register
	Mem      uint16
	Label    string
}

func numberPrimitive(b uint8) Primitive { return Primitive{Kind: PNumber, Number: b} }

// ParsePrimitive parses a raw, already-lowercased operand string into a
// Primitive, applying the priority cascade spec'd for operand parsing.
func ParsePrimitive(src string) (Primitive, error) {
	if src == "" {
		return Primitive{}, UnknownToken
	}

	if first := src[0]; first == '+' || first == '-' || isASCIIDigit(first) {
		n, ok := parseNumberLiteral(src)
		if !ok {
			return Primitive{}, BadNumber
		}
		return numberPrimitive(n), nil
	}

	if n, ok := parseCharLiteral(src); ok {
		return numberPrimitive(n), nil
	}

	switch src {
	case "rax", "eax", "ax":
		return Primitive{}, BadArchitecture
	case "ah":
		return Primitive{}, HighByte
	case "al":
		return Primitive{Kind: PAccumulator}, nil
	}

	if strings.HasPrefix(src, "[") && strings.HasSuffix(src, "]") && len(src) >= 2 {
		inner, err := ParsePrimitive(src[1 : len(src)-1])
		if err != nil {
			return Primitive{}, BadMemory
		}
		switch inner.Kind {
		case PNumber:
			return Primitive{Kind: PMemory, Mem: uint16(inner.Number)}, nil
		case PRegister:
			return Primitive{Kind: PDynamicMemory, Reg: inner.Reg}, nil
		case PAccumulator:
			return Primitive{Kind: PDynamicMemoryAccumulator}, nil
		default:
			return Primitive{}, BadMemory
		}
	}

	if p, err := parsePort(src); err == nil {
		return p, nil
	} else if err == BadPort {
		return Primitive{}, BadPort
	}

	if p, err := parseRegister(src); err == nil {
		return p, nil
	} else if err != UnknownToken {
		return Primitive{}, err
	}

	if isLabel(src) {
		return Primitive{Kind: PLabel, Label: src}, nil
	}
	return Primitive{}, BadLabel
}

// parsePort recognizes "in0".."in3" and "out0".."out3". It returns BadPort
// for any src whose last character is a digit 4..9, whatever its prefix
// (so "in9" and "loop4" alike); otherwise it returns UnknownToken when src
// isn't port-shaped, so the caller can keep trying other primitive forms.
func parsePort(src string) (Primitive, error) {
	if src == "" {
		return Primitive{}, UnknownToken
	}
	last := src[len(src)-1]
	var num uint8
	switch {
	case last >= '0' && last <= '3':
		num = last - '0'
	case last >= '4' && last <= '9':
		return Primitive{}, BadPort
	default:
		return Primitive{}, UnknownToken
	}
	switch src[:len(src)-1] {
	case "in":
		return Primitive{Kind: PPort, PortKind: Input, PortNum: num}, nil
	case "out":
		return Primitive{Kind: PPort, PortKind: Output, PortNum: num}, nil
	default:
		return Primitive{}, UnknownToken
	}
}

// parseRegister recognizes bl/cl/dl/el plus the wider-architecture names
// that must be rejected with a specific error rather than falling through
// to "unknown label".
func parseRegister(src string) (Primitive, error) {
	switch src {
	case "rbx", "rcx", "rdx", "rex", "ebx", "ecx", "edx", "eex", "bx", "cx", "dx", "ex":
		return Primitive{}, BadArchitecture
	case "bh", "ch", "dh", "eh":
		return Primitive{}, HighByte
	case "bl":
		return Primitive{Kind: PRegister, Reg: RegB}, nil
	case "cl":
		return Primitive{Kind: PRegister, Reg: RegC}, nil
	case "dl":
		return Primitive{Kind: PRegister, Reg: RegD}, nil
	case "el":
		return Primitive{Kind: PRegister, Reg: RegE}, nil
	default:
		return Primitive{}, UnknownToken
	}
}

func isASCIIDigit(c byte) bool { return c >= '0' && c <= '9' }

// isLabel reports whether src is a label-legal identifier: a leading ASCII
// letter or underscore, followed by alphanumerics or underscores.
func isLabel(src string) bool {
	if src == "" {
		return false
	}
	first := src[0]
	if !((first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z') || first == '_') {
		return false
	}
	for i := 1; i < len(src); i++ {
		c := src[i]
		if !(isASCIIDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_') {
			return false
		}
	}
	return true
}

// parseCharLiteral recognizes "x" or 'x' where x is a single ASCII byte.
func parseCharLiteral(src string) (uint8, bool) {
	if len(src) != 3 {
		return 0, false
	}
	quote := src[0]
	if (quote != '"' && quote != '\'') || src[2] != quote {
		return 0, false
	}
	if src[1] >= 0x80 {
		return 0, false
	}
	return src[1], true
}

// parseNumberLiteral parses the accepted number forms (decimal, "<n>d",
// "<n>h", "0x<n>", "<n>b", "0b<n>"), applying a leading sign as two's
// complement negation. Returns false when the shape or value is invalid.
func parseNumberLiteral(src string) (uint8, bool) {
	negate := false
	switch {
	case strings.HasPrefix(src, "-"):
		negate = true
		src = src[1:]
	case strings.HasPrefix(src, "+"):
		src = src[1:]
	}

	var val int
	var ok bool
	switch {
	case strings.HasPrefix(src, "0x"):
		val, ok = foldDigits(src[2:], 16)
	case len(src) > 0 && src[len(src)-1] == 'b':
		val, ok = foldDigits(src[:len(src)-1], 2)
	case len(src) > 0 && src[len(src)-1] == 'd':
		val, ok = foldDigits(src[:len(src)-1], 10)
	case len(src) > 0 && src[len(src)-1] == 'h':
		val, ok = foldDigits(src[:len(src)-1], 16)
	case strings.HasPrefix(src, "0b"):
		val, ok = foldDigits(src[2:], 2)
	default:
		val, ok = foldDigits(src, 10)
	}
	if !ok {
		return 0, false
	}

	b := uint8(val)
	if negate {
		b = -b
	}
	return b, true
}

// foldDigits folds a run of digit characters in the given radix into an
// integer, failing on an invalid digit or on overflowing a byte.
func foldDigits(src string, radix int) (int, bool) {
	if src == "" {
		return 0, false
	}
	num := 0
	for i := 0; i < len(src); i++ {
		d, ok := digitValue(src[i], radix)
		if !ok {
			return 0, false
		}
		num = num*radix + d
		if num > 255 {
			return 0, false
		}
	}
	return num, true
}

func digitValue(c byte, radix int) (int, bool) {
	var d int
	switch {
	case c >= '0' && c <= '9':
		d = int(c - '0')
	case c >= 'a' && c <= 'f':
		d = int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		d = int(c-'A') + 10
	default:
		return 0, false
	}
	if d >= radix {
		return 0, false
	}
	return d, true
}
