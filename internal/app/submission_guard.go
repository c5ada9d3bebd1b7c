package app

import (
	"context"
	"fmt"

	"github.com/ecopoints/movie-booking/internal/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var acquireSubmissionLockScript = redis.NewScript(`
	-- KEYS[1] = submission lock key, ARGV = [owner token, ttl in ms]
	if redis.call("SET", KEYS[1], ARGV[1], "NX", "PX", ARGV[2]) then
		return 1
	end

	return 0
`)

var releaseSubmissionLockScript = redis.NewScript(`
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	end

	return 0
`)

func submissionLockKey(userID uuid.UUID) string {
	return fmt.Sprintf("booking_submission:%s", userID)
}

// acquireSubmissionLock makes sure a user has at most one purchase in flight
// across requests. It returns the owner token needed for the release.
func (app *Application) acquireSubmissionLock(ctx context.Context, userID uuid.UUID) (string, error) {
	token := uuid.NewString()
	ttl := app.config.Booking.SubmissionLockTTL.Milliseconds()

	acquired, err := acquireSubmissionLockScript.Run(ctx, app.redis, []string{submissionLockKey(userID)}, token, ttl).Int()
	if err != nil {
		return "", fmt.Errorf("failed to run acquireSubmissionLock script: %w", err)
	}

	if acquired == 0 {
		return "", domain.ErrSubmissionInFlight
	}

	return token, nil
}

func (app *Application) releaseSubmissionLock(ctx context.Context, userID uuid.UUID, token string) {
	err := releaseSubmissionLockScript.Run(ctx, app.redis, []string{submissionLockKey(userID)}, token).Err()
	if err != nil {
		app.loggerFrom(ctx).Error("failed to release submission lock", "error", err)
	}
}
