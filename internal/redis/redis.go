package redis

import (
	"context"
	"log/slog"
	"time"

	"github.com/friendsofgo/errors"
	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

// InitRedis connects the shared client. A failed ping leaves Client nil so
// that callers fall back to uncached scoring.
func InitRedis(addr string) error {
	c := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "",
		DB:       0,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return errors.Wrapf(err, "redis ping %s", addr)
	}

	Client = c
	slog.Info("connected", "component", "redis", "addr", addr)
	return nil
}

func CloseRedis() {
	if Client != nil {
		if err := Client.Close(); err != nil {
			slog.Error("error closing connection", "component", "redis", "err", err)
		} else {
			slog.Info("connection closed", "component", "redis")
		}
		Client = nil
	}
}
