package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck   = "" // check
	IconX       = "" // x
	IconCursor  = "" // chevron-right
	IconLayout  = "" // clone/stack
	IconPane    = "" // columns
	IconSplitH  = "" // bars
	IconSplitV  = "" // columns
	IconClock   = "" // clock
	IconRestore = "" // rotate-left
)
