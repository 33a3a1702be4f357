package gateway

import "context"

// Notification is a human-readable confirmation delivered to a channel on
// the chat platform.
type Notification struct {
	Title string
	Body  string
}

// Notifier delivers notifications best-effort. A delivery failure must not
// roll back the grant or purchase it confirms.
type Notifier interface {
	Send(ctx context.Context, channelKey string, notification Notification) error
}

// MemberDirectory resolves display usernames against the roster of known
// members in the surrounding platform context.
type MemberDirectory interface {
	// FindByUsername resolves a username case-insensitively to an external
	// identity string
	//
	// Possible errors:
	// - ErrMemberNotFound: If no member carries the username
	FindByUsername(ctx context.Context, username string) (string, error)
}
