package errs

import "github.com/m-mizutani/goerr/v2"

var (
	// Client errors (4xx)
	TagNotFound     = goerr.NewTag("not_found")    // 404
	TagValidation   = goerr.NewTag("validation")   // 400
	TagUnauthorized = goerr.NewTag("unauthorized") // 401
	TagConflict     = goerr.NewTag("conflict")     // 409

	// Server errors (5xx)
	TagInternal = goerr.NewTag("internal") // 500
	TagExternal = goerr.NewTag("external") // 502
	TagDatabase = goerr.NewTag("database") // 500

	TagInvalidState = goerr.NewTag("invalid_state")

	// Roll-call
	TagRollCallRunning  = goerr.NewTag("rollcall_running")
	TagTimetableAuth    = goerr.NewTag("timetable_auth")
	TagTimetableTeacher = goerr.NewTag("timetable_teachers")
	TagTimetableClass   = goerr.NewTag("timetable_classes")
	TagTimetableRoom    = goerr.NewTag("timetable_rooms")
	TagTimetableLesson  = goerr.NewTag("timetable_lessons")
	TagNoOngoingClasses = goerr.NewTag("no_ongoing_classes")
	TagPersistence      = goerr.NewTag("persistence")

	// Post edit
	TagAlertArchived  = goerr.NewTag("alert_archived")
	TagInvalidEdit    = goerr.NewTag("invalid_edit")
	TagPrivacyName    = goerr.NewTag("privacy_name")
	TagPrivacyDate    = goerr.NewTag("privacy_date")
	TagPrivacyKeyword = goerr.NewTag("privacy_keyword")
	TagCommentTooLong = goerr.NewTag("comment_too_long")
)
