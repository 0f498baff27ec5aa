package redis

import (
	"context"
	"net"
	"strconv"
	"strings"

	"github.com/hyp3rd/ewrap"
	"github.com/redis/go-redis/v9"

	"github.com/hyp3rd/basicstats/internal/constants"
	"github.com/hyp3rd/basicstats/internal/sentinel"
	"github.com/hyp3rd/basicstats/pkg/source"
)

// Store keeps samples in Redis, one list per sample, one float per member.
type Store struct {
	Client *redis.Client
}

// New creates a store with a new Redis client configured from the defaults and the given options.
func New(opts ...Option) (*Store, error) {
	// Setup redis client
	opt := &redis.Options{
		Dialer: func(ctx context.Context, network, addr string) (net.Conn, error) {
			dialer := &net.Dialer{
				Timeout: constants.RedisDialTimeout,
			}

			return dialer.DialContext(ctx, network, addr)
		},
		DB:           0,
		MaxRetries:   constants.RedisClientMaxRetries,
		DialTimeout:  constants.RedisDialTimeout,
		ReadTimeout:  constants.RedisClientReadTimeout,
		WriteTimeout: constants.RedisClientWriteTimeout,
		PoolSize:     constants.RedisClientPoolSize,
		MinIdleConns: constants.RedisClientMinIdleConns,
		PoolTimeout:  constants.RedisClientPoolTimeout,
	}

	ApplyOptions(opt, opts...)

	if strings.TrimSpace(opt.Addr) == "" {
		return nil, ewrap.Wrap(sentinel.ErrParamCannotBeEmpty, "redis address")
	}

	return &Store{Client: redis.NewClient(opt)}, nil
}

// NewFromClient wraps an existing client.
func NewFromClient(client *redis.Client) (*Store, error) {
	if client == nil {
		return nil, sentinel.ErrNilClient
	}

	return &Store{Client: client}, nil
}

// Load reads the sample stored under key. A missing key is an empty sample.
func (s *Store) Load(ctx context.Context, key string) ([]float64, error) {
	if key == "" {
		return nil, ewrap.Wrap(sentinel.ErrParamCannotBeEmpty, "key")
	}

	members, err := s.Client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, ewrap.Wrapf(err, "loading sample %s", key)
	}

	sample, err := source.ParseStrings(members)
	if err != nil {
		return nil, ewrap.Wrapf(err, "decoding sample %s", key)
	}

	return sample, nil
}

// Save replaces the sample stored under key.
func (s *Store) Save(ctx context.Context, key string, sample []float64) error {
	if key == "" {
		return ewrap.Wrap(sentinel.ErrParamCannotBeEmpty, "key")
	}

	pipe := s.Client.TxPipeline()
	pipe.Del(ctx, key)

	if len(sample) > 0 {
		pipe.RPush(ctx, key, formatMembers(sample)...)
	}

	_, err := pipe.Exec(ctx)
	if err != nil {
		return ewrap.Wrapf(err, "saving sample %s", key)
	}

	return nil
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.Client.Close()
}

// formatMembers renders each value with the shortest representation that parses back to the same float.
func formatMembers(sample []float64) []any {
	members := make([]any, len(sample))
	for i, v := range sample {
		members[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return members
}
