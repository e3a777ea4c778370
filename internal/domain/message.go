package domain

type MessageStatus string

const (
	MessageStatusNew     MessageStatus = "new"
	MessageStatusRead    MessageStatus = "read"
	MessageStatusReplied MessageStatus = "replied"
)

func (s MessageStatus) IsValid() bool {
	switch s {
	case MessageStatusNew, MessageStatusRead, MessageStatusReplied:
		return true
	}
	return false
}

// ContactMessage é uma mensagem enviada pelo formulário de contato do site
type ContactMessage struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Email   string        `json:"email"`
	Phone   string        `json:"phone"`
	Subject string        `json:"subject"`
	Message string        `json:"message"`
	Date    string        `json:"date"`
	Status  MessageStatus `json:"status"`
}
