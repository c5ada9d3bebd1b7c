package mocks

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

// MockRedisClient covers the commands used by scripts and health checks.
type MockRedisClient struct {
	mock.Mock
	redis.UniversalClient
}

func (m *MockRedisClient) EvalSha(ctx context.Context, sha1 string, keys []string, args ...interface{}) *redis.Cmd {
	callArgs := append([]interface{}{ctx, sha1, keys}, args...)
	result := m.Called(callArgs...)
	return result.Get(0).(*redis.Cmd)
}

func (m *MockRedisClient) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	callArgs := append([]interface{}{ctx, script, keys}, args...)
	result := m.Called(callArgs...)
	return result.Get(0).(*redis.Cmd)
}

func (m *MockRedisClient) Ping(ctx context.Context) *redis.StatusCmd {
	args := m.Called(ctx)
	return args.Get(0).(*redis.StatusCmd)
}
