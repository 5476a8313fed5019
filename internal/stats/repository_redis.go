package stats

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type redisRepo struct {
	rdb *redis.Client
}

// NewRedisRepo 返回 Redis 实现。key 约定：
//
//	string: casino:stats:hands        -> 总局数
//	string: casino:stats:biggest_pot  -> 最大底池
//	zset  : casino:stats:wins         -> member=昵称 score=胜场数
func NewRedisRepo(rdb *redis.Client) Repo {
	return &redisRepo{rdb: rdb}
}

const (
	handsKey   = "casino:stats:hands"
	biggestKey = "casino:stats:biggest_pot"
	winsKey    = "casino:stats:wins"
)

// 只在新底池更大时覆盖，脚本保证原子
// KEYS[1] = biggestKey, ARGV[1] = pot
const maxScript = `
    local cur = tonumber(redis.call("GET", KEYS[1]) or "0")
    local pot = tonumber(ARGV[1])
    if pot > cur then
        redis.call("SET", KEYS[1], pot)
    end
    return 1
`

func (r *redisRepo) RecordHand(ctx context.Context, winner string, pot int64) error {
	p := r.rdb.Pipeline()
	p.Incr(ctx, handsKey)
	p.ZIncrBy(ctx, winsKey, 1, winner)
	p.Eval(ctx, maxScript, []string{biggestKey}, pot)
	_, err := p.Exec(ctx)
	return err
}

func (r *redisRepo) Summary(ctx context.Context) (Summary, error) {
	out := Summary{TopWinners: make(map[string]int64)}

	hands, err := r.rdb.Get(ctx, handsKey).Int64()
	if err != nil && err != redis.Nil {
		return out, err
	}
	out.HandsPlayed = hands

	biggest, err := r.rdb.Get(ctx, biggestKey).Int64()
	if err != nil && err != redis.Nil {
		return out, err
	}
	out.BiggestPot = biggest

	top, err := r.rdb.ZRevRangeWithScores(ctx, winsKey, 0, 9).Result()
	if err != nil {
		return out, err
	}
	for _, z := range top {
		if name, ok := z.Member.(string); ok {
			out.TopWinners[name] = int64(z.Score)
		}
	}
	return out, nil
}
