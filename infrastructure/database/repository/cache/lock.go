package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"safiri.io/application/utils"
	"safiri.io/infrastructure/logger"
)

// Release only deletes the lease if the holder token still matches, so an
// expired lease cannot delete a successor's.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// AcquireLock takes a short lease on key. Used to serialize the callback and
// status-query paths resolving the same checkout request id. Returns false
// when the lease is held elsewhere.
func (redisRepo *RedisRepository) AcquireLock(key string, ttl time.Duration) (func(), bool) {
	redisRepo.preRequest()
	ctx := context.Background()

	token := utils.GenerateULIDString()
	acquired, err := redisRepo.Client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		logger.Error("redis error occured while running AcquireLock", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "key",
			Data: key,
		})
		return nil, false
	}
	if !acquired {
		return nil, false
	}
	release := func() {
		releaseScript.Run(context.Background(), redisRepo.Client, []string{key}, token)
	}
	return release, true
}
