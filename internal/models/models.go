package models

import (
	"encoding/json"
	"time"
)

type UserType string

const (
	UserTypeGuest   UserType = "guest"
	UserTypeRegular UserType = "regular"
)

// User represents an account; guests have a generated email and a random password hash.
type User struct {
	ID           string  `db:"id" json:"id"`
	Email        string  `db:"email" json:"email"`
	PasswordHash *string `db:"password" json:"-"`
}

// Session is what the authentication boundary hands to the handlers.
type Session struct {
	UserID string   `json:"id"`
	Type   UserType `json:"type"`
}

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

func (v Visibility) Valid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

// Chat is a conversation owned by one user. LastContext is the latest usage snapshot.
type Chat struct {
	ID          string          `db:"id" json:"id"`
	CreatedAt   time.Time       `db:"createdat" json:"createdAt"`
	Title       string          `db:"title" json:"title"`
	UserID      string          `db:"userid" json:"userId"`
	Visibility  Visibility      `db:"visibility" json:"visibility"`
	LastContext json.RawMessage `db:"lastcontext" json:"lastContext"`
}

// Message is one entry of a chat; Parts and Attachments are persisted verbatim.
type Message struct {
	ID          string          `db:"id" json:"id"`
	ChatID      string          `db:"chatid" json:"chatId"`
	Role        string          `db:"role" json:"role"`
	Parts       json.RawMessage `db:"parts" json:"parts"`
	Attachments json.RawMessage `db:"attachments" json:"attachments"`
	CreatedAt   time.Time       `db:"createdat" json:"createdAt"`
}

type VoteType string

const (
	VoteUp   VoteType = "up"
	VoteDown VoteType = "down"
)

func (v VoteType) Valid() bool {
	return v == VoteUp || v == VoteDown
}

type Vote struct {
	ChatID    string `db:"chatid" json:"chatId"`
	MessageID string `db:"messageid" json:"messageId"`
	IsUpvoted bool   `db:"isupvoted" json:"isUpvoted"`
}

type ArtifactKind string

const (
	KindText  ArtifactKind = "text"
	KindCode  ArtifactKind = "code"
	KindImage ArtifactKind = "image"
	KindSheet ArtifactKind = "sheet"
)

func (k ArtifactKind) Valid() bool {
	switch k {
	case KindText, KindCode, KindImage, KindSheet:
		return true
	}
	return false
}

// Document is one version of an artifact; (ID, CreatedAt) identifies the version.
type Document struct {
	ID        string       `db:"id" json:"id"`
	CreatedAt time.Time    `db:"createdat" json:"createdAt"`
	Title     string       `db:"title" json:"title"`
	Content   *string      `db:"content" json:"content"`
	Kind      ArtifactKind `db:"text" json:"kind"`
	UserID    string       `db:"userid" json:"userId"`
}

// Suggestion references a specific document version.
type Suggestion struct {
	ID                string    `db:"id" json:"id"`
	DocumentID        string    `db:"documentid" json:"documentId"`
	DocumentCreatedAt time.Time `db:"documentcreatedat" json:"documentCreatedAt"`
	OriginalText      string    `db:"originaltext" json:"originalText"`
	SuggestedText     string    `db:"suggestedtext" json:"suggestedText"`
	Description       *string   `db:"description" json:"description"`
	IsResolved        bool      `db:"isresolved" json:"isResolved"`
	UserID            string    `db:"userid" json:"userId"`
	CreatedAt         time.Time `db:"createdat" json:"createdAt"`
}

type Stream struct {
	ID        string    `db:"id" json:"id"`
	ChatID    string    `db:"chatid" json:"chatId"`
	CreatedAt time.Time `db:"createdat" json:"createdAt"`
}

// ChatPageQuery selects one page of chats. At most one cursor may be set.
type ChatPageQuery struct {
	Limit         int
	StartingAfter string
	EndingBefore  string
}

type ChatPage struct {
	Chats   []Chat `json:"chats"`
	HasMore bool   `json:"hasMore"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// ChatDetail is a chat with everything needed to render it.
type ChatDetail struct {
	Chat      *Chat     `json:"chat"`
	Messages  []Message `json:"messages"`
	Votes     []Vote    `json:"votes"`
	StreamIDs []string  `json:"streamIds"`
}

// Attachment is an uploaded file as referenced from message attachments.
type Attachment struct {
	URL         string `json:"url"`
	Pathname    string `json:"pathname"`
	ContentType string `json:"contentType"`
}

type Entitlements struct {
	UserType          UserType `json:"userType"`
	MaxMessagesPerDay int      `json:"maxMessagesPerDay"`
	UsedLast24h       int      `json:"usedLast24h"`
	Remaining         int      `json:"remaining"`
}
