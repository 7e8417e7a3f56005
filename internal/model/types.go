package model

import "time"

// AttachmentKind discriminates the media type of an attachment.
type AttachmentKind string

const (
	AttachmentImage AttachmentKind = "image"
	AttachmentAudio AttachmentKind = "audio"
)

// Attachment references binary content held by the blob store. The locator is
// owned by the store that produced it and is opaque to the rest of the system.
type Attachment struct {
	Kind    AttachmentKind `json:"kind"`
	Locator string         `json:"locator"`
}

// DiaryEntry is a single immutable journaling record. Entries are created once
// by the assembler and never mutated afterwards. Attachments are kept in upload
// order: image before audio when both are present.
type DiaryEntry struct {
	ID          string       `json:"id"`
	Text        string       `json:"text"`
	Attachments []Attachment `json:"attachments"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// Identity is the verified claim set returned by the token verifier.
type Identity struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
}
