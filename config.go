package uniwidth

// Config carries the handful of knobs TableBuilder branches on. Unlike
// the teacher's open-ended typed settings map (built for a grammar
// compiler's sprawling, user-extensible configuration surface), this
// module only ever needs two fixed values, so they are plain struct
// fields rather than a generic key/value store.
type Config struct {
	// BlockSize is the number of codepoints per stage1 block.
	// TableReader.Get hardcodes the >>8/&0xFF split implied by the
	// default of 256; changing BlockSize without updating that split
	// desynchronizes builder and reader.
	BlockSize int

	// FailOnOracleError aborts TableBuilder.Build on the first
	// OracleFailureError instead of substituting a placeholder record
	// for the offending codepoint and continuing.
	FailOnOracleError bool
}

// NewConfig returns the defaults this module builds with.
func NewConfig() *Config {
	return &Config{
		BlockSize:         256,
		FailOnOracleError: true,
	}
}
