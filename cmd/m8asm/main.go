// Command m8asm assembles m8 assembly source into its ISA's raw byte
// encoding, or optionally a Logisim "v2.0 raw" hex container.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/adolfohw/m8asm/asm"
	"github.com/adolfohw/m8asm/asmerr"
)

var (
	outputFile = flag.String("o", "", "Output file path. Prints a hex dump to stdout if omitted.")
	logisim    = flag.Bool("logisim", false, "Write the Logisim v2.0 raw hex container instead of raw bytes.")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	if flag.NArg() != 1 {
		log.Println("Usage: m8asm [options] <sourcefile>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	sourcePath := flag.Arg(0)

	program, err := asm.FromPath(sourcePath)
	if err != nil {
		reportError(sourcePath, err)
		os.Exit(1)
	}

	if *logisim {
		program.ToLogisim()
	}

	if *outputFile == "" {
		hexDump(program.Bytes())
		return
	}

	program.SaveOnClose(*outputFile)
	if err := program.Close(); err != nil {
		log.Fatalf("Error writing output file: %v", err)
	}
	fmt.Printf("Assembled %d bytes to %s\n", len(program.Bytes()), *outputFile)
}

// reportError renders a structured AssemblyError against the original
// source when possible, falling back to a plain message otherwise (for
// example an I/O error, which has no meaningful source span).
func reportError(sourcePath string, err error) {
	var asmErr *asmerr.AssemblyError
	if !errors.As(err, &asmErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	src, readErr := os.ReadFile(sourcePath)
	if readErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	asmerr.Render(os.Stderr, string(src), sourcePath, asmErr, nil)
}

// hexDump prints code as uppercase hex pairs, sixteen to a line, mirroring
// the plain-text inspection dump used when no output path is given.
func hexDump(code []byte) {
	for i, b := range code {
		fmt.Printf("%02X ", b)
		if (i+1)%16 == 0 {
			fmt.Println()
		}
	}
	fmt.Println()
}
