//go:generate go run go.uber.org/mock/mockgen -source=message_service.go -destination=../mocks/mock_message_service.go -package=mocks
package services

import "sync"

// IMessageService is the status log read by the UI layer.
type IMessageService interface {
	AddMessage(message string)
	Clear()
	Messages() []string
	Len() int
}

// MessageService keeps user-facing status messages in call order.
// It is created once at startup and shared by every component that reports status.
type MessageService struct {
	mu       sync.Mutex
	messages []string
}

func NewMessageService() *MessageService {
	return &MessageService{}
}

func (s *MessageService) AddMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, message)
}

func (s *MessageService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
}

// Messages returns a copy, callers may keep it while new messages arrive.
func (s *MessageService) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.messages...)
}

func (s *MessageService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}
