package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
)

const (
	containerExpireSeconds = 120
	maxWaitDuration        = 120 * time.Second
)

const (
	redisPort  = "6379/tcp"
	redisImage = "redis"
	redisTag   = "alpine"
)

// Suite - a test bound to its own throwaway Redis container.
type Suite struct {
	*testing.T
	Logger *slog.Logger

	Storage *redis.Client
}

// New starts Redis in docker and skips the test when docker is unavailable.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(cancel)

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker is not available: %v", err)
	}

	if err = pool.Client.Ping(); err != nil {
		t.Skipf("docker is not reachable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag,
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start redis container: %v", err)
	}

	// hard kill in case the cleanup never runs
	_ = resource.Expire(containerExpireSeconds)

	t.Cleanup(func() {
		if purgeErr := pool.Purge(resource); purgeErr != nil {
			t.Logf("could not purge redis container: %v", purgeErr)
		}
	})

	addr := resource.GetHostPort(redisPort)
	pool.MaxWait = maxWaitDuration

	var client *redis.Client
	if err = pool.Retry(func() error {
		client = redis.NewClient(&redis.Options{Addr: addr})
		if pingErr := client.Ping(ctx).Err(); pingErr != nil {
			_ = client.Close()
			return pingErr
		}
		return nil
	}); err != nil {
		t.Fatalf("could not connect to redis at %s: %v", addr, err)
	}

	t.Cleanup(func() {
		_ = client.Close()
	})

	if err = client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("could not flush database: %v", err)
	}

	return ctx, &Suite{
		T:       t,
		Logger:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
		Storage: client,
	}
}
