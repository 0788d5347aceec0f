// Package flash carries one-shot notification messages across a redirect,
// using an HTTPOnly cookie. Messages written during one request are read
// and cleared by the next page render.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
)

const cookieName = "bms_flash"

const (
	LevelSuccess = "success"
	LevelError   = "error"
)

type Message struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

// Success queues a success notification for the next render.
func Success(c *fiber.Ctx, text string) {
	add(c, Message{Level: LevelSuccess, Text: text})
}

// Error queues an error notification for the next render.
func Error(c *fiber.Ctx, text string) {
	add(c, Message{Level: LevelError, Text: text})
}

// Errors queues one error notification per text.
func Errors(c *fiber.Ctx, texts []string) {
	for _, t := range texts {
		add(c, Message{Level: LevelError, Text: t})
	}
}

func add(c *fiber.Ctx, msg Message) {
	pending := pendingMessages(c)
	pending = append(pending, msg)
	c.Locals(cookieName, pending)

	raw, _ := json.Marshal(pending)
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Expires:  time.Now().Add(5 * time.Minute),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

// Drain returns the queued messages and clears the cookie. Renders call
// this exactly once; an empty slice is returned when nothing is queued.
func Drain(c *fiber.Ctx) []Message {
	encoded := c.Cookies(cookieName)
	if encoded == "" {
		return []Message{}
	}

	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return []Message{}
	}
	var messages []Message
	if err := json.Unmarshal(raw, &messages); err != nil {
		return []Message{}
	}
	return messages
}

func pendingMessages(c *fiber.Ctx) []Message {
	if existing, ok := c.Locals(cookieName).([]Message); ok {
		return existing
	}
	return nil
}
