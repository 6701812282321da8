package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Transition errors (E100-E199)
	// ============================================

	"E101": {
		Category: CategoryTransition,
		Message:  "Invalid transition step",
		Detail:   "Arithmetic transition rules require a step of at least 1.",
	},
	"E102": {
		Category: CategoryTransition,
		Message:  "Invalid transition cap",
		Detail:   "Wrapping and capping rules require a cap of at least 1.",
	},
	"E103": {
		Category: CategoryTransition,
		Message:  "Unknown transition rule",
		Detail:   "The rule tag is not one of the recognized transition policies.",
	},

	// ============================================
	// Config errors (E200-E299)
	// ============================================

	"E201": {
		Category: CategoryConfig,
		Message:  "Configuration file could not be read",
		Detail:   "The configuration file exists but could not be parsed.",
	},
	"E202": {
		Category: CategoryConfig,
		Message:  "Configuration failed validation",
		Detail:   "One or more configuration fields have invalid values.",
	},

	// ============================================
	// Session errors (E300-E399)
	// ============================================

	"E301": {
		Category: CategorySession,
		Message:  "Unknown binding reference",
		Detail:   "The event referenced a binding ID that is not registered in the scene.",
	},
	"E302": {
		Category: CategorySession,
		Message:  "Unknown event type",
		Detail:   "The binding exists but has no handler for this event type.",
	},
	"E303": {
		Category: CategorySession,
		Message:  "Session closed",
		Detail:   "The live session has been closed and no longer accepts events.",
	},

	// ============================================
	// Protocol errors (E400-E499)
	// ============================================

	"E401": {
		Category: CategoryProtocol,
		Message:  "Malformed frame",
		Detail:   "The websocket frame could not be decoded.",
	},
	"E402": {
		Category: CategoryProtocol,
		Message:  "Unsupported frame type",
		Detail:   "The frame type is not part of the live protocol.",
	},
}
