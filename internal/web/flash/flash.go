// Package flash carries one-shot notifications across a redirect via a
// short-lived cookie, popped and rendered by the next page.
package flash

import (
	"encoding/base64"
	"net/http"
	"strings"
)

const cookieName = "alphadash_flash"

// Notification levels.
const (
	LevelSuccess = "success"
	LevelError   = "error"
	LevelInfo    = "info"
)

// Message is a transient notification shown once.
type Message struct {
	Level string
	Text  string
}

// Set queues a notification for the next rendered page.
func Set(w http.ResponseWriter, level, text string) {
	value := base64.URLEncoding.EncodeToString([]byte(level + "|" + text))
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Success queues a success notification.
func Success(w http.ResponseWriter, text string) { Set(w, LevelSuccess, text) }

// Error queues an error notification.
func Error(w http.ResponseWriter, text string) { Set(w, LevelError, text) }

// Pop returns the pending notification, if any, and clears it so it is
// shown exactly once.
func Pop(w http.ResponseWriter, r *http.Request) *Message {
	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	level, text, ok := strings.Cut(string(decoded), "|")
	if !ok || text == "" {
		return nil
	}
	return &Message{Level: level, Text: text}
}
