package repository

import "github.com/google/uuid"

const (
	usersKey       = "all_users"
	currentUserKey = "current_user"
)

func HabitsKey(uid uuid.UUID) string {
	return "habits:" + uid.String()
}

func HistoryKey(uid uuid.UUID) string {
	return "habit_history:" + uid.String()
}
