package uniwidth

import (
	"fmt"
	"strings"
)

// Emitter serializes a built three-stage table into a Go source
// artifact that cmd/uniwidthgen writes out. Nothing in this package
// reads the emitted arrays: Width and GraphemeBreak always build their
// tables at process start from the built-in oracle (see tables.go). It
// preserves index-exact equivalence with the in-memory arrays and
// declares their lengths so a consumer can length-check on load.
type Emitter struct {
	PackageName string
}

// NewEmitter creates an Emitter that writes `package PackageName`.
func NewEmitter(packageName string) *Emitter {
	return &Emitter{PackageName: packageName}
}

// Emit writes stage1/stage2/stage3 as Go var declarations, with a
// header comment naming their lengths, mirroring the
// triegen/CodepointWidthDetector generators this module is modeled on
// (// Generated by ... on <timestamp>, from <source>, N bytes), just
// targeting Go var declarations instead of C++ constexpr arrays.
// stage3 is emitted as packedRecord bytes, the same dense
// representation TableReader holds at runtime.
func (e *Emitter) Emit(stage1, stage2 []uint16, stage3 []packedRecord) string {
	var buf strings.Builder

	totalBytes := len(stage1)*2 + len(stage2)*2 + len(stage3)

	fmt.Fprintf(&buf, "// Code generated by cmd/uniwidthgen. DO NOT EDIT.\n")
	fmt.Fprintf(&buf, "// stage1=%d stage2=%d stage3=%d, %d bytes\n\n", len(stage1), len(stage2), len(stage3), totalBytes)
	fmt.Fprintf(&buf, "package %s\n\n", e.PackageName)

	e.emitUint16Array(&buf, "stage1", stage1)
	e.emitUint16Array(&buf, "stage2", stage2)
	e.emitStage3(&buf, stage3)

	return buf.String()
}

func (e *Emitter) emitUint16Array(buf *strings.Builder, name string, values []uint16) {
	fmt.Fprintf(buf, "var %s = [%d]uint16{", name, len(values))
	for i, v := range values {
		if i%16 == 0 {
			buf.WriteString("\n\t")
		}
		fmt.Fprintf(buf, "0x%04x, ", v)
	}
	buf.WriteString("\n}\n\n")
}

func (e *Emitter) emitStage3(buf *strings.Builder, records []packedRecord) {
	fmt.Fprintf(buf, "var stage3 = [%d]packedRecord{", len(records))
	for i, r := range records {
		if i%16 == 0 {
			buf.WriteString("\n\t")
		}
		fmt.Fprintf(buf, "0x%02x, ", byte(r))
	}
	buf.WriteString("\n}\n")
}
