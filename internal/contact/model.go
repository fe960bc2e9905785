package contact

import "time"

// Message is one visitor contact submission.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// Inbox is the admin listing: all messages plus the unread count.
type Inbox struct {
	Messages []Message `json:"messages"`
	Unread   int       `json:"unread"`
}
