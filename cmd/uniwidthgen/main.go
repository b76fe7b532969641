// Command uniwidthgen is the standalone build-time generator described
// by spec section 6: it runs the three-stage TableBuilder against the
// built-in PropertyOracle and writes the resulting Go source artifact
// to stdout (or -output), exiting non-zero on overflow or oracle
// failure. It also offers a -dump mode useful while developing the
// oracle's range tables, printing a colorized class/width listing for
// a codepoint range instead of generating code.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/clarete/uniwidth"
	"github.com/clarete/uniwidth/ascii"
)

func main() {
	var (
		outputPath  = flag.String("output", "/dev/stdout", "Path to write the generated Go source to")
		packageName = flag.String("package", "uniwidth", "Package name for the generated file")
		dump        = flag.Bool("dump", false, "Print a colorized class/width dump instead of generating code")
		dumpFrom    = flag.Int("from", 0x0, "First codepoint of the -dump range (inclusive)")
		dumpTo      = flag.Int("to", 0x7F, "Last codepoint of the -dump range (inclusive)")
	)
	flag.Parse()

	if *dump {
		dumpRange(rune(*dumpFrom), rune(*dumpTo))
		return
	}

	stage1, stage2, stage3, err := uniwidth.NewTableBuilder(uniwidth.NewConfig()).Build(uniwidth.NewBuiltinOracle())
	if err != nil {
		log.Fatalf("uniwidthgen: build failed: %s", err)
	}

	source := uniwidth.NewEmitter(*packageName).Emit(stage1, stage2, stage3)

	if err := os.WriteFile(*outputPath, []byte(source), 0644); err != nil {
		log.Fatalf("uniwidthgen: can't write output: %s", err)
	}
}

func dumpRange(from, to rune) {
	oracle := uniwidth.NewBuiltinOracle()
	for cp := from; cp <= to; cp++ {
		rec, err := oracle.Classify(cp)
		if err != nil {
			fmt.Println(ascii.Color(ascii.Red, "U+%04X error: %s", cp, err))
			continue
		}
		fmt.Printf(
			"%s %s\n",
			ascii.Color(ascii.Cyan, "U+%04X", cp),
			ascii.Color(ascii.Gray245, "width=%d class=%s", rec.Width, rec.Class),
		)
	}
}
