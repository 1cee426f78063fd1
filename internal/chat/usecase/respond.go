package usecase

import (
	"fmt"
	"strings"
	"time"

	"schedula/internal/booking"
)

const greeting = "I'm Schedula, your AI scheduling assistant! I can help you book training sessions and view your calendar. What would you like to do?"

func generalSuggestions() []string {
	return []string{
		"Book a training session tomorrow at 2 PM",
		"Show me my calendar for July 12",
		"Schedule a meeting for today",
		"What sessions do I have this week?",
	}
}

func bookedSuggestions() []string {
	return []string{
		"Show me my updated calendar",
		"Book another session this week",
		"Schedule a follow-up meeting",
		"What's my availability tomorrow?",
	}
}

func bookFailedSuggestions() []string {
	return []string{
		"Try a different time slot",
		"Book for tomorrow instead",
		"Show me my calendar first",
		"Schedule for next week",
	}
}

func deletedSuggestions() []string {
	return []string{
		"Show me my updated calendar",
		"Book a new session",
		"Check my availability",
		"View next week's schedule",
	}
}

func deleteFailedSuggestions() []string {
	return []string{
		"Show me my calendar first",
		"Try specifying a date",
		"Cancel a specific session",
		"Clear a different date",
	}
}

func updatedSuggestions() []string {
	return []string{
		"Show me my updated calendar",
		"Make another change",
		"Book a new session",
		"Check my availability",
	}
}

func updateFailedSuggestions() []string {
	return []string{
		"Show me my calendar first",
		"Try a different time",
		"Specify the date to update",
		"Book a new session instead",
	}
}

func querySuggestions() []string {
	return []string{
		"Book another session",
		"Show me next week's calendar",
		"Schedule a meeting for tomorrow",
		"Check my availability",
	}
}

func queryEmptySuggestions() []string {
	return []string{
		"Book a training session tomorrow",
		"Schedule a meeting for this week",
		"Set up a consultation call",
		"Plan a team workshop",
	}
}

// clockText renders "2:00 PM"; dateText renders "Sun Jul 06 2025".
func clockText(t time.Time) string {
	return t.Format("3:04 PM")
}

func dateText(t time.Time) string {
	return t.Format("Mon Jan 02 2006")
}

// bookedResponse confirms a created booking with its resolved slot.
func bookedResponse(b booking.Booking) string {
	return fmt.Sprintf("Perfect! I've booked your %s for %s from %s to %s. The booking is confirmed!",
		b.Title, dateText(b.StartTime), clockText(b.StartTime), clockText(b.EndTime))
}

func updatedResponse(updated, original booking.Booking) string {
	return fmt.Sprintf("Perfect! I've updated your %q session from %s to %s at %s - %s. The update is confirmed!",
		updated.Title, dateText(original.StartTime), dateText(updated.StartTime),
		clockText(updated.StartTime), clockText(updated.EndTime))
}

func deletedResponse(deleted []booking.Booking, date time.Time) string {
	if len(deleted) == 0 {
		return fmt.Sprintf("No sessions found to delete on %s. Your calendar is already clear for that date.", dateText(date))
	}

	plural := ""
	if len(deleted) > 1 {
		plural = "s"
	}
	titles := make([]string, len(deleted))
	for i, b := range deleted {
		titles[i] = b.Title
	}
	return fmt.Sprintf("Successfully deleted %d session%s from %s. Your calendar has been updated!\n\nDeleted sessions: %s",
		len(deleted), plural, dateText(date), strings.Join(titles, ", "))
}

// queryResponse renders the schedule as a plain-text listing, one line
// per session, oldest first.
func queryResponse(bookings []booking.Booking, rangeText string) string {
	if len(bookings) == 0 {
		return fmt.Sprintf("You don't have any sessions scheduled for %s. Would you like to book something?", rangeText)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Here are your scheduled sessions for %s:\n", rangeText)
	for _, b := range bookings {
		category := b.Category
		if category == "" {
			category = "General"
		}
		client := b.ClientName
		if client == "" {
			client = "Not specified"
		}
		fmt.Fprintf(&sb, "\n- %s | %s | %s - %s | %s | %s",
			b.Title, dateText(b.StartTime), clockText(b.StartTime), clockText(b.EndTime), client, category)
	}
	fmt.Fprintf(&sb, "\n\nTotal sessions: %d", len(bookings))
	return sb.String()
}
