package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game loop to work with intents rather than raw input.
type Action int

const (
	ActionNone         Action = iota
	ActionUp                  // move cursor up
	ActionDown                // move cursor down
	ActionLeft                // move cursor left
	ActionRight               // move cursor right
	ActionNewPuzzle           // fresh random seed, same size
	ActionRetry               // same seed, same size
	ActionClearRecords        // erase best times and bookmarks
	ActionPrevSize            // previous size preset
	ActionNextSize            // next size preset
	ActionCustomSize          // prompt for a size
	ActionAddBookmark         // bookmark the current seed
	ActionBookmarks           // open the bookmark picker
	ActionHelp                // toggle full help
	ActionQuit                // exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionNewPuzzle:
		return "NewPuzzle"
	case ActionRetry:
		return "Retry"
	case ActionClearRecords:
		return "ClearRecords"
	case ActionPrevSize:
		return "PrevSize"
	case ActionNextSize:
		return "NextSize"
	case ActionCustomSize:
		return "CustomSize"
	case ActionAddBookmark:
		return "AddBookmark"
	case ActionBookmarks:
		return "Bookmarks"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the cursor delta for a movement action.
// ok is false for actions that do not move the cursor.
func (a Action) Direction() (dx, dy int, ok bool) {
	switch a {
	case ActionUp:
		return 0, -1, true
	case ActionDown:
		return 0, 1, true
	case ActionLeft:
		return -1, 0, true
	case ActionRight:
		return 1, 0, true
	default:
		return 0, 0, false
	}
}
