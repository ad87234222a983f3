package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"chat-hub/errors"
)

// MessageType is a closed enumeration. Image and file messages carry an
// Attachment reference; system messages are produced by membership
// operations, never by clients directly.
type MessageType string

const (
	MessageText   MessageType = "text"
	MessageImage  MessageType = "image"
	MessageFile   MessageType = "file"
	MessageSystem MessageType = "system"
)

func ParseMessageType(s string) (MessageType, bool) {
	switch MessageType(s) {
	case MessageText, MessageImage, MessageFile, MessageSystem:
		return MessageType(s), true
	}
	return "", false
}

const (
	// MaxContentLength caps message content, counted in runes.
	MaxContentLength = 2000

	// EditWindow is the period after creation during which the sender
	// may still edit a message.
	EditWindow = 15 * time.Minute

	// DeletedPlaceholder replaces the content of a soft-deleted message.
	DeletedPlaceholder = "This message has been deleted"
)

// Attachment is a borrowed reference to externally stored bytes.
type Attachment struct {
	Name     string
	MimeType string
	Size     uint64
}

// EditRecord is one entry of a message's ordered edit history.
type EditRecord struct {
	Content  string
	EditedAt time.Time
}

// Message is the durable chat record. Reactions map an emoji to the set
// of reacting user ids; a user holds at most one membership per emoji.
type Message struct {
	ID          string
	RoomID      string
	SenderID    string
	Type        MessageType
	Content     string
	Attachment  *Attachment
	CreatedAt   time.Time
	EditedAt    time.Time
	EditHistory []EditRecord
	Reactions   map[string][]string
	ReadBy      map[string]time.Time
	Deleted     bool
	DeletedBy   string
	DeletedAt   time.Time
}

// ValidContent rejects blank content and content above the rune cap.
func ValidContent(content string) bool {
	return strings.TrimSpace(content) != "" && utf8.RuneCountInString(content) <= MaxContentLength
}

// EditableBy reports whether editorID may edit the message at instant now.
// Only the original sender, only while not deleted, only inside EditWindow.
func (m *Message) EditableBy(editorID string, now time.Time) error {
	if m.Deleted {
		return errors.ErrMessageDeleted
	}
	if m.SenderID != editorID {
		return errors.ErrForbidden
	}
	if now.Sub(m.CreatedAt) > EditWindow {
		return errors.ErrEditWindowExpired
	}
	return nil
}

// HasReaction reports whether userID already reacted with emoji.
func (m *Message) HasReaction(userID, emoji string) bool {
	for _, id := range m.Reactions[emoji] {
		if id == userID {
			return true
		}
	}
	return false
}
