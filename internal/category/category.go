package category

import "strings"

// Keyword maps a message keyword to its category label.
type Keyword struct {
	Keyword string
	Label   string
}

// keywordTable is checked in declaration order; the first keyword found in a
// message wins. Order is part of the contract, so this is a slice, not a map.
var keywordTable = []Keyword{
	{Keyword: "training", Label: "Training"},
	{Keyword: "meeting", Label: "Meeting"},
	{Keyword: "azure", Label: "Azure"},
	{Keyword: "python", Label: "Python"},
}

// KeywordTable returns the ordered keyword→label table.
func KeywordTable() []Keyword {
	out := make([]Keyword, len(keywordTable))
	copy(out, keywordTable)
	return out
}

// Match returns the category label for the first table keyword contained in
// the lower-cased message.
func Match(lowerMessage string) (string, bool) {
	for _, k := range keywordTable {
		if strings.Contains(lowerMessage, k.Keyword) {
			return k.Label, true
		}
	}
	return "", false
}

// SessionType describes a bookable session type.
type SessionType struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	DurationMinutes int    `json:"duration"`
}

var sessionTypes = []SessionType{
	{ID: "1", Name: "Meeting", Description: "General business meetings and discussions", Category: "Business", DurationMinutes: 60},
	{ID: "2", Name: "Training", Description: "Professional development and learning sessions", Category: "Education", DurationMinutes: 120},
	{ID: "3", Name: "Consultation", Description: "Client consultations and advice sessions", Category: "Service", DurationMinutes: 60},
	{ID: "4", Name: "Workshop", Description: "Interactive learning and skill development", Category: "Education", DurationMinutes: 180},
	{ID: "5", Name: "Review", Description: "Performance reviews and feedback sessions", Category: "Business", DurationMinutes: 90},
}

// Types returns the bookable session types.
func Types() []SessionType {
	out := make([]SessionType, len(sessionTypes))
	copy(out, sessionTypes)
	return out
}
