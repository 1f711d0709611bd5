package knowledge

import (
	"context"

	crucialRepo "aide/database/repository/crucial"
	knowledgeRepo "aide/database/repository/knowledge"
	remindersRepo "aide/database/repository/reminders"
	"aide/models"
	"aide/services/calendar"
)

type KnowledgeService interface {
	// Get returns the user's knowledge base, creating it from the template
	// on first access.
	Get(ctx context.Context, email, name string) (*models.KnowledgeEntry, error)
	// Update replaces the document. The previous content is backed up first.
	Update(ctx context.Context, email, content string) error
	// Append adds content to one of the fixed sections.
	Append(ctx context.Context, email, section, content string) error
	// Search finds matches with surrounding context lines.
	SearchEntries(ctx context.Context, email, query string) ([]SearchHit, error)

	// Reminders.
	AddReminder(ctx context.Context, email, category, text string) (string, error)
	ListReminders(ctx context.Context, email, category string) ([]models.Reminder, error)
	RemoveReminder(ctx context.Context, email, category, text string) error

	// Crucial dates. Adding one also materialises a yearly all-day event on
	// the user's calendar.
	AddCrucialEvent(ctx context.Context, email, name, date string) (string, error)
	ListCrucialEvents(ctx context.Context, email string) ([]models.CrucialEvent, error)
	RemoveCrucialEvent(ctx context.Context, email, name string) error
}

// DefaultKnowledgeService is the production implementation.
type DefaultKnowledgeService struct {
	Repo      knowledgeRepo.KnowledgeRepository
	Reminders remindersRepo.ReminderRepository
	Crucial   crucialRepo.CrucialEventRepository
	Calendar  calendar.CalendarService
}
