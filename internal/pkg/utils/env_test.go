package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("BALANCE_RANKER_TEST_SET", "config/prod.yml")
	t.Setenv("BALANCE_RANKER_TEST_BLANK", "  ")

	assert.Equal(t, "config/prod.yml", GetEnv("BALANCE_RANKER_TEST_SET", "config/config.yml"))
	assert.Equal(t, "config/config.yml", GetEnv("BALANCE_RANKER_TEST_BLANK", "config/config.yml"))
	assert.Equal(t, "config/config.yml", GetEnv("BALANCE_RANKER_TEST_UNSET", "config/config.yml"))
}
