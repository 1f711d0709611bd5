package knowledge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aide/config"
	"aide/models"
	"aide/services/calendar"
	"aide/services/schedule"
	"aide/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const searchContextLines = 2

// Get returns the user's knowledge base, creating it from the template on
// first access.
func (s *DefaultKnowledgeService) Get(ctx context.Context, email, name string) (*models.KnowledgeEntry, error) {
	entry, err := s.Repo.Get(ctx, email)
	if err == nil {
		return entry, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("load knowledge base: %w", err)
	}

	fresh := models.KnowledgeEntry{
		UserEmail: email,
		Content:   DefaultTemplate(name),
	}
	if err := s.Repo.Save(ctx, fresh); err != nil {
		return nil, fmt.Errorf("create knowledge base: %w", err)
	}
	utils.GetLogger().Info("Created knowledge base", zap.String("email", email))
	return &fresh, nil
}

// Update replaces the document, backing up the previous content first.
func (s *DefaultKnowledgeService) Update(ctx context.Context, email, content string) error {
	if existing, err := s.Repo.Get(ctx, email); err == nil {
		if _, err := s.Repo.Backup(ctx, *existing); err != nil {
			return fmt.Errorf("backup knowledge base: %w", err)
		}
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("load knowledge base: %w", err)
	}
	return s.Repo.Save(ctx, models.KnowledgeEntry{UserEmail: email, Content: content})
}

// Append adds content to one of the fixed sections.
func (s *DefaultKnowledgeService) Append(ctx context.Context, email, section, content string) error {
	entry, err := s.Get(ctx, email, "")
	if err != nil {
		return err
	}
	updated, err := AppendToSection(entry.Content, section, content)
	if err != nil {
		return err
	}
	return s.Update(ctx, email, updated)
}

// SearchEntries finds matches with two context lines on each side.
func (s *DefaultKnowledgeService) SearchEntries(ctx context.Context, email, query string) ([]SearchHit, error) {
	entry, err := s.Get(ctx, email, "")
	if err != nil {
		return nil, err
	}
	return Search(entry.Content, query, searchContextLines), nil
}

// AddReminder stores a reminder in one of the two categories.
func (s *DefaultKnowledgeService) AddReminder(ctx context.Context, email, category, text string) (string, error) {
	if category != models.ReminderPersonal && category != models.ReminderProfessional {
		return "", fmt.Errorf("unknown reminder category %q", category)
	}
	if text == "" {
		return "", errors.New("reminder text is empty")
	}
	return s.Reminders.Add(ctx, models.Reminder{
		UserEmail: email,
		Category:  category,
		Text:      text,
	})
}

// ListReminders returns reminders, optionally filtered by category.
func (s *DefaultKnowledgeService) ListReminders(ctx context.Context, email, category string) ([]models.Reminder, error) {
	if category == "" {
		return s.Reminders.GetByEmail(ctx, email)
	}
	return s.Reminders.GetByCategory(ctx, email, category)
}

// RemoveReminder deletes a reminder by category and exact text.
func (s *DefaultKnowledgeService) RemoveReminder(ctx context.Context, email, category, text string) error {
	return s.Reminders.Remove(ctx, email, category, text)
}

// AddCrucialEvent validates and stores a crucial date descriptor, then
// materialises it as a yearly all-day calendar event starting at the next
// occurrence.
func (s *DefaultKnowledgeService) AddCrucialEvent(ctx context.Context, email, name, date string) (string, error) {
	desc, ok := schedule.ParseRecurrence(date)
	if !ok {
		return "", fmt.Errorf("unrecognised date descriptor %q (want MM-DD or MM-{1st..5th}-{sun..sat})", date)
	}

	id, err := s.Crucial.Add(ctx, models.CrucialEvent{
		UserEmail: email,
		Name:      name,
		Date:      date,
	})
	if err != nil {
		return "", err
	}

	loc := calendar.Location(config.AppConfig.Timezone)
	if first, ok := nextOccurrence(desc, time.Now().In(loc), loc); ok {
		if _, err := s.Calendar.CreateYearlyAllDay(ctx, email, name, first); err != nil {
			// The stored descriptor still drives briefs; the calendar copy
			// is a convenience.
			utils.GetLogger().Warn("Failed to create calendar event for crucial date",
				zap.String("email", email), zap.String("name", name), zap.Error(err))
		}
	}
	return id, nil
}

// nextOccurrence resolves the descriptor for this year, moving to next year
// when the date already passed or does not exist this year.
func nextOccurrence(desc models.RecurrenceDescriptor, now time.Time, loc *time.Location) (time.Time, bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	for year := now.Year(); year <= now.Year()+1; year++ {
		if d, ok := schedule.ResolveDate(desc, year, loc); ok && !d.Before(today) {
			return d, true
		}
	}
	return time.Time{}, false
}

// ListCrucialEvents returns the user's crucial dates.
func (s *DefaultKnowledgeService) ListCrucialEvents(ctx context.Context, email string) ([]models.CrucialEvent, error) {
	return s.Crucial.GetByEmail(ctx, email)
}

// RemoveCrucialEvent deletes a crucial date by name.
func (s *DefaultKnowledgeService) RemoveCrucialEvent(ctx context.Context, email, name string) error {
	return s.Crucial.Remove(ctx, email, name)
}
