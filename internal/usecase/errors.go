package usecase

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

var (
	ErrPhoneRequired = &DomainError{Code: "phone_required", Message: "Phone number is required"}
	ErrInvalidPhone  = &DomainError{Code: "invalid_phone", Message: "Invalid phone number format"}
)
