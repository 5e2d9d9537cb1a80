package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_RedisAddr(t *testing.T) {
	t.Setenv("REDIS_ADDR", "redis:6380")
	assert.Equal(t, "redis:6380", Load().RedisAddr)

	t.Setenv("REDIS_ADDR", "")
	assert.Equal(t, "", Load().RedisAddr, "explicitly empty address selects the in-memory store")

	os.Unsetenv("REDIS_ADDR")
	assert.Equal(t, "localhost:6379", Load().RedisAddr)
}
