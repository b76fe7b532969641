package uniwidth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, 256, cfg.BlockSize)
	assert.True(t, cfg.FailOnOracleError)
}

func TestConfigFieldsAreIndependentlyMutable(t *testing.T) {
	cfg := NewConfig()
	cfg.BlockSize = 512
	cfg.FailOnOracleError = false
	assert.Equal(t, 512, cfg.BlockSize)
	assert.False(t, cfg.FailOnOracleError)
}
