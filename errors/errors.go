package errors

import "fmt"

var (
	ErrOperationFailed  = fmt.Errorf("operation failed")
	ErrUnexpectedStatus = fmt.Errorf("unexpected http status")
	ErrMissingHeroID    = fmt.Errorf("hero has no id")
	ErrInvalidHero      = fmt.Errorf("invalid hero")
)
