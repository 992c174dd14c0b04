package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisKeyPrefix = "agenda"

// Collection hash names, one hash per collection with the record key as field.
const (
	redisClientsKey       = "clientes"
	redisProfessionalsKey = "profissionais"
	redisServicesKey      = "servicos"
	redisAppointmentsKey  = "agendamentos"
	redisUsersKey         = "usuarios"
)

// replaceIfExists overwrites a hash field only when it is already present.
var replaceIfExistsScript = redis.NewScript(`
if redis.call("HEXISTS", KEYS[1], ARGV[1]) == 1 then
  redis.call("HSET", KEYS[1], ARGV[1], ARGV[2])
  return 1
end
return 0
`)

// redisCollection keeps one JSON document per record in a single hash.
// R is the stored shape; most entities are stored as themselves.
type redisCollection[E any, R any] struct {
	rdb        redis.UniversalClient
	key        string
	toRecord   func(E) R
	fromRecord func(R) E
	keyOf      func(E) string
	createdAt  func(E) time.Time
}

func newRedisCollection[E any](rdb redis.UniversalClient, name string, keyOf func(E) string, createdAt func(E) time.Time) redisCollection[E, E] {
	same := func(e E) E { return e }
	return redisCollection[E, E]{
		rdb:        rdb,
		key:        redisKey(name),
		toRecord:   same,
		fromRecord: same,
		keyOf:      keyOf,
		createdAt:  createdAt,
	}
}

func redisKey(name string) string {
	prefix := strings.TrimSpace(getenvDefault("REDIS_KEY_PREFIX", defaultRedisKeyPrefix))
	return prefix + ":" + name
}

func (c redisCollection[E, R]) create(ctx context.Context, e E) (bool, error) {
	raw, err := json.Marshal(c.toRecord(e))
	if err != nil {
		return false, err
	}
	return c.rdb.HSetNX(ctx, c.key, c.keyOf(e), raw).Result()
}

func (c redisCollection[E, R]) get(ctx context.Context, field string) (E, error) {
	var zero E
	raw, err := c.rdb.HGet(ctx, c.key, field).Bytes()
	if errors.Is(err, redis.Nil) {
		return zero, nil
	}
	if err != nil {
		return zero, err
	}
	var r R
	if err := json.Unmarshal(raw, &r); err != nil {
		return zero, err
	}
	return c.fromRecord(r), nil
}

func (c redisCollection[E, R]) update(ctx context.Context, e E) (bool, error) {
	raw, err := json.Marshal(c.toRecord(e))
	if err != nil {
		return false, err
	}
	n, err := replaceIfExistsScript.Run(ctx, c.rdb, []string{c.key}, c.keyOf(e), string(raw)).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (c redisCollection[E, R]) delete(ctx context.Context, field string) (bool, error) {
	n, err := c.rdb.HDel(ctx, c.key, field).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// list returns every record ordered by creation time, then key; hash order is unspecified.
func (c redisCollection[E, R]) list(ctx context.Context) ([]E, error) {
	all, err := c.rdb.HGetAll(ctx, c.key).Result()
	if err != nil {
		return nil, err
	}
	out := make([]E, 0, len(all))
	for _, raw := range all {
		var r R
		if err := json.Unmarshal([]byte(raw), &r); err != nil {
			return nil, err
		}
		out = append(out, c.fromRecord(r))
	}
	sort.SliceStable(out, func(i, j int) bool {
		ci, cj := c.createdAt(out[i]), c.createdAt(out[j])
		if !ci.Equal(cj) {
			return ci.Before(cj)
		}
		return c.keyOf(out[i]) < c.keyOf(out[j])
	})
	return out, nil
}
