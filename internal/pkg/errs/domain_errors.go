package errs

// Sentinels shared by the usecase layer; handlers map them to HTTP statuses.
var (
	ErrPromotionNotFound    = New("pending promotion not found")
	ErrNotificationNotFound = New("notification not found")
	ErrDomainValidation     = New("domain validation error")
)
