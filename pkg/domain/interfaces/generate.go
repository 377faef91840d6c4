package interfaces

//go:generate go tool moq -out ../mock/adaptor.go -pkg mock . TimetableClient AuditRecorder Broadcaster Authenticator SlackClient
