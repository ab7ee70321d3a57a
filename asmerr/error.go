package asmerr

import "github.com/adolfohw/m8asm/token"

// AssemblyError pairs the offending token with a structured ErrorCode. The
// first error observed by either the lexer or the parser aborts assembly;
// no partial output is produced.
type AssemblyError struct {
	Token token.Token
	Code  ErrorCode
}

// New wraps a token and error code into an AssemblyError.
func New(tok token.Token, code ErrorCode) *AssemblyError {
	return &AssemblyError{Token: tok, Code: code}
}

func (e *AssemblyError) Error() string {
	return e.Code.Error()
}

func (e *AssemblyError) Unwrap() error {
	if e.Code.Kind == IOErr {
		return e.Code.Cause
	}
	return nil
}
