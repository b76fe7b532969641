package uniwidth

import "fmt"

// BlockTooLargeError is returned when a stage3 index would not fit in
// a uint16, i.e. the oracle produced more than 65535 distinct property
// records. Only possible if PropertyRecord's field layout is expanded
// carelessly.
type BlockTooLargeError struct {
	RecordCount int
}

func (e BlockTooLargeError) Error() string {
	return fmt.Sprintf("stage3 holds %d distinct records, more than fit in a uint16 index", e.RecordCount)
}

// Stage2TooLargeError is returned when the aggregate stage2 entries
// exceed 65535, i.e. the record set is too varied to compress with
// uint16 offsets.
type Stage2TooLargeError struct {
	EntryCount int
}

func (e Stage2TooLargeError) Error() string {
	return fmt.Sprintf("stage2 holds %d entries, more than fit in a uint16 offset", e.EntryCount)
}

// OracleFailureError wraps a failure from the property oracle while
// classifying a specific codepoint.
type OracleFailureError struct {
	Codepoint rune
	Cause     error
}

func (e OracleFailureError) Error() string {
	return fmt.Sprintf("oracle failed to classify U+%04X: %s", e.Codepoint, e.Cause)
}

func (e OracleFailureError) Unwrap() error {
	return e.Cause
}

// isFatal reports whether err should abort a TableBuilder.Build call
// under the given Config. Builder errors are always fatal to the
// build step itself; cfg.FailOnOracleError only controls whether an
// OracleFailureError is tolerated (codepoint classified as invalid and
// the build continues) or propagated.
func isFatal(err error, cfg *Config) bool {
	if err == nil {
		return false
	}
	if _, ok := err.(OracleFailureError); ok {
		return cfg.FailOnOracleError
	}
	return true
}
