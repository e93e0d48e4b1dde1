package model

import "time"

type Session struct {
	ID           string
	UserID       int
	RefreshToken string // Хранится хэш, не сам токен
	ExpiresAt    time.Time
}
