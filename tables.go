package uniwidth

import "sync"

var (
	defaultTablesOnce sync.Once
	defaultReader     *TableReader
	defaultBuildErr   error
)

// ensureDefaultTables lazily builds the three-stage tables from the
// built-in PropertyOracle, exactly once per process. This is the
// stage-table analogue of the BreakTable's one-shot initializer. The
// tables are always built here at process start; arrays written by
// Emitter and cmd/uniwidthgen are not read by this package.
func ensureDefaultTables() {
	defaultTablesOnce.Do(func() {
		s1, s2, s3, err := NewTableBuilder(NewConfig()).Build(newBuiltinOracle())
		if err != nil {
			defaultBuildErr = err
			return
		}
		defaultReader = NewTableReader(s1, s2, s3)
	})
}

// defaultTableReader returns the process-wide TableReader, building it
// on first use. It panics if the built-in oracle ever fails to build
// its own tables, which would indicate a bug in builtin_oracle.go
// rather than a runtime condition callers can recover from.
func defaultTableReader() *TableReader {
	ensureDefaultTables()
	if defaultBuildErr != nil {
		panic(defaultBuildErr)
	}
	return defaultReader
}
