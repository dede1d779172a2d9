package state

// NotificationState holds the one-line message shown in the status bar.
type NotificationState struct {
	message string
	isError bool
}

// NewNotificationState creates an empty NotificationState.
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Info shows a neutral message.
func (s *NotificationState) Info(msg string) {
	s.message = msg
	s.isError = false
}

// Error shows an error message.
func (s *NotificationState) Error(msg string) {
	s.message = msg
	s.isError = true
}

// Clear removes the current message.
func (s *NotificationState) Clear() {
	s.message = ""
	s.isError = false
}

// Message returns the current message and whether it is an error.
func (s *NotificationState) Message() (string, bool) {
	return s.message, s.isError
}
