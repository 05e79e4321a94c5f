package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	InternalServerErrorCode = 500
	TooManyRequestsCode     = 429
)

const (
	// DateFormat renders calendar dates without a time component.
	DateFormat = "2006-01-02"
	// ClockFormat renders a time of day without a date.
	ClockFormat = "15:04"
	// DateTimeFormat renders full timestamps.
	DateTimeFormat = "2006-01-02 15:04:05"
)
