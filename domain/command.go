package domain

// PostMessageCommand is a sending intent arriving from the REST boundary.
// Kind is the raw wire value; the service validates it.
type PostMessageCommand struct {
	ChatID  ChatID
	Sender  string
	Content string
	Kind    string
}

// CreateChatCommand describes a new conversation. Creator is implicitly a
// participant; Name is only honored for group chats.
type CreateChatCommand struct {
	Creator      string
	Participants []string
	Name         string
}
