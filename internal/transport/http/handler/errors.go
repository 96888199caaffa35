package handler

const (
	errInternalServer    = "Internal server error"
	errUsernameTaken     = "Username already registered"
	errBadCredentials    = "Incorrect username or password"
	errInvalidPagination = "skip and limit must be non-negative"

	msgUserCreated = "User created successfully"
)
