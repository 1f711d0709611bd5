package models

import "time"

// KnowledgeEntry is a user's markdown knowledge base. One entry per email.
type KnowledgeEntry struct {
	UserEmail string    `bson:"userEmail" json:"userEmail"`
	Content   string    `bson:"content" json:"content"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// KnowledgeBackup is a snapshot taken before each knowledge base update.
type KnowledgeBackup struct {
	ID        string    `bson:"id" json:"id"`
	UserEmail string    `bson:"userEmail" json:"userEmail"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Reminder categories.
const (
	ReminderPersonal     = "personal"
	ReminderProfessional = "professional"
)

// Reminder is a standing daily reminder surfaced in briefs and chat.
// Unique per (user, category, text).
type Reminder struct {
	ID        string `bson:"id" json:"id"`
	UserEmail string `bson:"userEmail" json:"userEmail"`
	Category  string `bson:"category" json:"category"` // "personal" or "professional"
	Text      string `bson:"text" json:"text"`
}

// CrucialEvent is a yearly recurring date the user must never miss
// (birthday, anniversary, holiday). Date holds the compact descriptor form,
// "MM-DD" or "MM-{ordinal}-{weekday}" (e.g. "05-2nd-sun").
type CrucialEvent struct {
	ID        string `bson:"id" json:"id"`
	UserEmail string `bson:"userEmail" json:"userEmail"`
	Name      string `bson:"name" json:"name"`
	Date      string `bson:"date" json:"date"`
}
