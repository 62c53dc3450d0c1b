package domain

// Icon is an opaque glyph key resolved by the rendering layer.
type Icon string

const (
	IconBookOpen        Icon = "book-open"
	IconMessageSquare   Icon = "message-square"
	IconMegaphone       Icon = "megaphone"
	IconFileText        Icon = "file-text"
	IconBell            Icon = "bell"
	IconLayoutDashboard Icon = "layout-dashboard"
	IconClock           Icon = "clock"
)

var knownIcons = map[Icon]struct{}{
	IconBookOpen:        {},
	IconMessageSquare:   {},
	IconMegaphone:       {},
	IconFileText:        {},
	IconBell:            {},
	IconLayoutDashboard: {},
	IconClock:           {},
}

// Known reports whether the icon key is one the UI can render.
func (i Icon) Known() bool {
	_, ok := knownIcons[i]
	return ok
}
