package filterconfig

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("FILTER_BITMASK_ABSOLUTE_WORD_CEILING")
	os.Unsetenv("FILTER_BITMASK_WORDS_PER_SET_BIT")

	cfg := Load()
	assert.Equal(t, int64(32), cfg.BitmaskAbsoluteWordCeiling)
	assert.Equal(t, int64(4), cfg.BitmaskWordsPerSetBit)
}

func TestLoadFromEnv(t *testing.T) {
	os.Setenv("FILTER_BITMASK_ABSOLUTE_WORD_CEILING", "64")
	defer os.Unsetenv("FILTER_BITMASK_ABSOLUTE_WORD_CEILING")

	cfg := Load()
	assert.Equal(t, int64(64), cfg.BitmaskAbsoluteWordCeiling)
}

func TestSetOverridesGet(t *testing.T) {
	Get() // prime the lazy env-backed default before overriding it below
	defer Set(defaultConfig())

	Set(Config{BitmaskAbsoluteWordCeiling: 1, BitmaskWordsPerSetBit: 1})
	assert.Equal(t, int64(1), Get().BitmaskAbsoluteWordCeiling)
}
