package usecase

import (
	"strings"

	"schedula/internal/chat"
)

// classifyIntent runs the keyword tiers in priority order and returns the
// first hit with its confidence weight. Delete outranks update so "remove"
// never falls through to the update tier via "move".
func classifyIntent(lower string) (chat.Intent, int) {
	switch {
	case containsAny(lower, chat.ConfirmationKeywords):
		return chat.IntentBook, chat.WeightConfirmation
	case containsAny(lower, chat.DeleteKeywords):
		return chat.IntentDelete, chat.WeightDelete
	case containsAny(lower, chat.UpdateKeywords):
		return chat.IntentUpdate, chat.WeightUpdate
	case containsAny(lower, chat.QueryKeywords):
		return chat.IntentQuery, chat.WeightQuery
	case containsAny(lower, chat.BookingKeywords):
		return chat.IntentBook, chat.WeightBooking
	}
	return chat.IntentGeneral, 0
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
