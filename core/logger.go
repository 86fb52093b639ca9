package core

// Logger is any service that can log messages.
// args may carry an error, a map[string]interface{} of extra data and the StaffUser on the request.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}

// StaffUser is the username of the signed-in staff member, attached to log entries.
type StaffUser string
