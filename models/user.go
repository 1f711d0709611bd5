package models

import "time"

// TokenRecord stores a user's Google OAuth tokens. One record per email.
type TokenRecord struct {
	UserEmail    string    `bson:"userEmail" json:"userEmail"`
	AccessToken  string    `bson:"accessToken" json:"-"`
	RefreshToken string    `bson:"refreshToken" json:"-"`
	TokenType    string    `bson:"tokenType" json:"-"`
	Expiry       time.Time `bson:"expiry" json:"-"`
	Name         string    `bson:"name" json:"name"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// SessionUser is the authenticated identity attached to a request.
type SessionUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TelegramLink ties a Telegram chat to an app user.
type TelegramLink struct {
	ChatID    int64     `bson:"chatId" json:"chatId"`
	UserEmail string    `bson:"userEmail" json:"userEmail"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
