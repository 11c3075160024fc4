package models

import (
	"crypto/md5"
	"fmt"
	"strings"
	"time"
)

// BeforeCreate sets up any necessary fields before creation
func (u *User) BeforeCreate() {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
}

// GravatarURL derives the avatar reference for an email address. The same
// email always yields the same URL (s=200, pg-rated, "mystery man" fallback).
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", hash)
}
