package suite

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

const (
	containerTTL = 120
	startTimeout = 120 * time.Second
)

const (
	redisPort        = "6379/tcp"
	redisRepository  = "redis"
	defaultRedisTag  = "alpine"
	redisTagVariable = "SUITE_REDIS_TAG"
)

type Suite struct {
	*testing.T
	Logger *zap.SugaredLogger

	Storage *redis.Client
}

// New starts a throwaway Redis container for the test. It is skipped in -short mode
// and when no docker daemon is reachable.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), startTimeout)
	t.Cleanup(cancel)

	logger := zaptest.NewLogger(t).Sugar()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("could not construct docker pool: %v", err)
	}

	if err = pool.Client.Ping(); err != nil {
		t.Skipf("could not connect to docker: %v", err)
	}

	client := startRedis(ctx, t, pool)
	logger.Debugw("redis container ready", "addr", client.Options().Addr)

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Storage: client,
	}
}

// startRedis runs a Redis container, waits until it answers PING and returns an empty database.
func startRedis(ctx context.Context, t *testing.T, pool *dockertest.Pool) *redis.Client {
	t.Helper()

	tag := os.Getenv(redisTagVariable)
	if tag == "" {
		tag = defaultRedisTag
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: redisRepository,
		Tag:        tag,
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start redis %s: %v", tag, err)
	}

	t.Cleanup(func() {
		if purgeErr := pool.Purge(resource); purgeErr != nil {
			t.Errorf("could not purge redis container: %v", purgeErr)
		}
	})

	_ = resource.Expire(containerTTL)

	client := redis.NewClient(&redis.Options{
		Addr: resource.GetHostPort(redisPort),
	})
	t.Cleanup(func() {
		_ = client.Close()
	})

	pool.MaxWait = startTimeout
	if err = pool.Retry(func() error {
		return client.Ping(ctx).Err()
	}); err != nil {
		t.Fatalf("redis did not become ready: %v", err)
	}

	if err = client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("could not flush redis: %v", err)
	}

	return client
}
