package asm

import (
	"fmt"
	"strings"
)

// ToLogisim rewrites the assembly's internal buffer in place into the
// Logisim "v2.0 raw" hex container: the literal header, then each byte
// as unpadded lowercase hex followed by a space.
func (a *Assembly) ToLogisim() {
	var b strings.Builder
	b.WriteString("v2.0 raw\r\n")
	for _, by := range a.data {
		fmt.Fprintf(&b, "%x ", by)
	}
	a.data = []byte(b.String())
}
