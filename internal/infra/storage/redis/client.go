// Package redis implements the relay's Redis backed stores.
package redis

import (
	"context"
	"fmt"

	redis "github.com/redis/go-redis/v9"
)

// defaultNamespace prefixes every key written by the relay.
const defaultNamespace = "relay"

type config struct {
	username  string
	password  string
	db        int
	namespace string
}

// Option configures the client.
type Option func(*config)

// WithCredentials authenticates with Redis ACL credentials. An empty username
// authenticates as the default user.
func WithCredentials(username, password string) Option {
	return func(c *config) {
		c.username = username
		c.password = password
	}
}

func WithDB(db int) Option {
	return func(c *config) {
		c.db = db
	}
}

// WithNamespace replaces the "relay" key prefix, so relays sharing a Redis
// instance do not overwrite each other's heads.
func WithNamespace(ns string) Option {
	return func(c *config) {
		c.namespace = ns
	}
}

type client struct {
	conn      *redis.Client
	namespace string
}

func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to Redis and pings it once before returning.
func NewClient(ctx context.Context, addr string, opts ...Option) (*client, error) {
	cfg := config{namespace: defaultNamespace}
	for _, opt := range opts {
		opt(&cfg)
	}

	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", addr, err)
	}

	return &client{
		conn:      conn,
		namespace: cfg.namespace,
	}, nil
}
