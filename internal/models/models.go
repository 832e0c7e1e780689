package models

import (
	"time"
)

type User struct {
	UserID                 string    `json:"userId" db:"user_id"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	RefreshToken           string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"-" db:"refresh_token_expiry_time"`
}

type CaptionSession struct {
	SessionID      string    `json:"sessionId" db:"session_id"`
	UserID         string    `json:"userId" db:"user_id"`
	Name           string    `json:"name" db:"name"`
	Description    *string   `json:"description,omitempty" db:"description"`
	CoreMessage    *string   `json:"coreMessage,omitempty" db:"core_message"`
	TargetAudience *string   `json:"targetAudience,omitempty" db:"target_audience"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

type Caption struct {
	CaptionID    string  `json:"captionId" db:"caption_id"`
	SessionID    string  `json:"sessionId" db:"session_id"`
	Platform     *string `json:"platform,omitempty" db:"platform"`
	Tone         *string `json:"tone,omitempty" db:"tone"`
	VariantLabel *string `json:"variantLabel,omitempty" db:"variant_label"`
	CaptionText  string  `json:"captionText" db:"caption_text"`
	// hashtags is an opaque string, the client may keep a json array here
	Hashtags  *string   `json:"hashtags,omitempty" db:"hashtags"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type CaptionTemplate struct {
	TemplateID string `json:"templateId" db:"template_id"`
	// nil user_id means a global template visible to everyone
	UserID    *string   `json:"userId,omitempty" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Platform  *string   `json:"platform,omitempty" db:"platform"`
	Tone      *string   `json:"tone,omitempty" db:"tone"`
	Body      string    `json:"body" db:"body"`
	IsSystem  bool      `json:"isSystem" db:"is_system"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Media struct {
	MediaID   string    `json:"mediaId" db:"media_id"`
	SessionID string    `json:"sessionId" db:"session_id"`
	MediaURL  string    `json:"mediaUrl" db:"media_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
