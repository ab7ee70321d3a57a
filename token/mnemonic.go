package token

import "strings"

// Mnemonic is one of the closed set of recognized opcodes.
type Mnemonic int

const (
	Add Mnemonic = iota
	Sub
	Or
	And
	Xor
	Not
	Mov
	Inc
	Jmp
	Jmpc
	Jmpz
	Call
	Ret
	Push
	Pop
	Pusha
	Popa
)

var mnemonicNames = map[string]Mnemonic{
	"add":   Add,
	"sub":   Sub,
	"or":    Or,
	"and":   And,
	"xor":   Xor,
	"not":   Not,
	"mov":   Mov,
	"inc":   Inc,
	"jmp":   Jmp,
	"jmpc":  Jmpc,
	"jc":    Jmpc,
	"jmpz":  Jmpz,
	"je":    Jmpz,
	"jz":    Jmpz,
	"call":  Call,
	"ret":   Ret,
	"push":  Push,
	"pop":   Pop,
	"pusha": Pusha,
	"popa":  Popa,
}

// String returns the canonical spelling of a mnemonic.
func (m Mnemonic) String() string {
	switch m {
	case Add:
		return "add"
	case Sub:
		return "sub"
	case Or:
		return "or"
	case And:
		return "and"
	case Xor:
		return "xor"
	case Not:
		return "not"
	case Mov:
		return "mov"
	case Inc:
		return "inc"
	case Jmp:
		return "jmp"
	case Jmpc:
		return "jmpc"
	case Jmpz:
		return "jmpz"
	case Call:
		return "call"
	case Ret:
		return "ret"
	case Push:
		return "push"
	case Pop:
		return "pop"
	case Pusha:
		return "pusha"
	case Popa:
		return "popa"
	default:
		return "?"
	}
}

// ParseMnemonic parses a raw identifier (already lowercased by the lexer)
// into a Mnemonic, accepting the alternate spellings jc/je/jz.
func ParseMnemonic(src string) (Mnemonic, bool) {
	m, ok := mnemonicNames[strings.ToLower(src)]
	return m, ok
}

// OperandsRequired reports how many operands a statement using this
// mnemonic must have.
func (m Mnemonic) OperandsRequired() int {
	switch m {
	case Add, Sub, Or, And, Xor, Not, Mov, Inc:
		return 2
	case Jmp, Jmpc, Jmpz, Call, Push, Pop:
		return 1
	default: // Ret, Pusha, Popa
		return 0
	}
}
