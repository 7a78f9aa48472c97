package leaderboard

import "errors"

var (
	ErrMissingUser     = errors.New("leaderboard: snapshot has no user id")
	ErrUnknownCategory = errors.New("leaderboard: unknown category")
)
