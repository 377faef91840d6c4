package http

var (
	StatusOf                = statusOf
	LoggingMiddleware       = loggingMiddleware
	PanicRecoveryMiddleware = panicRecoveryMiddleware
	AuthMiddleware          = authMiddleware
)
