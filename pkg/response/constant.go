package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	ValidationErrorCode     = 1
	TooManyRequestsCode     = 429
	InternalServerErrorCode = 500
)
