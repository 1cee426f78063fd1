package chat

// Keyword tiers checked in priority order: confirmation, delete, update,
// query, booking. The first tier with a hit decides the intent; "remove"
// must classify as delete even when "move" would also match update, which
// is why delete outranks update.
var (
	BookingKeywords      = []string{"book", "schedule", "create", "add", "set up", "arrange", "plan", "reserve"}
	QueryKeywords        = []string{"show", "what", "when", "which", "sessions", "bookings", "check", "see", "display", "tell me", "find", "have", "do i have", "list", "view"}
	DeleteKeywords       = []string{"delete", "remove", "cancel", "clear", "cancel appointment", "cancel meeting", "clear calendar", "remove booking"}
	UpdateKeywords       = []string{"update", "change", "modify", "edit", "reschedule", "move", "shift", "adjust", "change time", "move to"}
	ConfirmationKeywords = []string{"yes", "yeah", "yep", "confirm", "correct", "right", "book it", "go ahead", "proceed"}
)

// Confidence contributed by the matched intent tier, plus the category
// bonus and the gate below which no action is taken.
const (
	WeightConfirmation = 80
	WeightDelete       = 70
	WeightUpdate       = 60
	WeightQuery        = 60
	WeightBooking      = 50

	WeightCategory = 10

	ConfidenceGate = 50
)
