package robot

import "errors"

// ErrInvalidInput matches every *InvalidInputError under errors.Is.
var ErrInvalidInput = errors.New("Invalid Input")

// InvalidInputError reports a bad direction or instruction character.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	if e.Message == "" {
		return ErrInvalidInput.Error()
	}
	return e.Message
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
