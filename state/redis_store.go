package state

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "monta:cursor:"

// saveIfHigher sets KEYS[1] to ARGV[1] unless the stored value is already
// greater or equal.
var saveIfHigher = redis.NewScript(`
local current = tonumber(redis.call("GET", KEYS[1]) or "-1")
local id = tonumber(ARGV[1])
if id > current then
	redis.call("SET", KEYS[1], ARGV[1])
end
return 0
`)

// redisStore implements a Store shared between hosts through Redis.
type redisStore struct {
	r   *redis.Client
	ctx context.Context
}

// openRedis connects to the Redis server at url (redis://[:password@]host:port/db).
func openRedis(url string) (Store, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	store := &redisStore{
		r:   redis.NewClient(opts),
		ctx: context.Background(),
	}

	ctx, cancel := context.WithTimeout(store.ctx, 5*time.Second)
	defer cancel()
	if err := store.r.Ping(ctx).Err(); err != nil {
		store.r.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return store, nil
}

// Close closes the Redis connection pool.
func (s *redisStore) Close() error {
	return s.r.Close()
}

// Cursor reads the stored id for stream.
func (s *redisStore) Cursor(stream string) (int64, error) {
	id, err := s.r.Get(s.ctx, redisKeyPrefix+stream).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read cursor for %s: %w", stream, err)
	}
	return id, nil
}

// SaveCursor stores id for stream unless a higher id is already stored.
func (s *redisStore) SaveCursor(stream string, id int64) error {
	if id < 0 {
		return fmt.Errorf("negative cursor %d for %s", id, stream)
	}
	if err := saveIfHigher.Run(s.ctx, s.r, []string{redisKeyPrefix + stream}, id).Err(); err != nil {
		return fmt.Errorf("save cursor for %s: %w", stream, err)
	}
	return nil
}
