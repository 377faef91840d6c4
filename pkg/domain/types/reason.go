package types

// FailureReason is the machine readable code sent with operationFailed
// events and HTTP error bodies.
type FailureReason string

const (
	ReasonUnknown          FailureReason = "unknown"
	ReasonUnauthorized     FailureReason = "unauthorized"
	ReasonRollCallRunning  FailureReason = "rollcall_running"
	ReasonTimetableAuth    FailureReason = "timetable_auth"
	ReasonTimetableTeacher FailureReason = "timetable_teachers"
	ReasonTimetableClass   FailureReason = "timetable_classes"
	ReasonTimetableRoom    FailureReason = "timetable_rooms"
	ReasonTimetableLesson  FailureReason = "timetable_lessons"
	ReasonNoOngoingClasses FailureReason = "no_ongoing_classes"
	ReasonPersistence      FailureReason = "persistence"
	ReasonAlertArchived    FailureReason = "alert_archived"
	ReasonInvalidEdit      FailureReason = "invalid_edit"
	ReasonNotFound         FailureReason = "not_found"
	ReasonPrivacyName      FailureReason = "privacy_name"
	ReasonPrivacyDate      FailureReason = "privacy_date"
	ReasonPrivacyKeyword   FailureReason = "privacy_keyword"
	ReasonCommentTooLong   FailureReason = "comment_too_long"
	ReasonInvalidMessage   FailureReason = "invalid_message"
)

// IsPrivacy reports whether the reason can be overridden by acknowledging
// the privacy warning and resubmitting.
func (r FailureReason) IsPrivacy() bool {
	switch r {
	case ReasonPrivacyName, ReasonPrivacyDate, ReasonPrivacyKeyword:
		return true
	}
	return false
}

// IsTimetable reports whether the timetable system caused the failure.
func (r FailureReason) IsTimetable() bool {
	switch r {
	case ReasonTimetableAuth, ReasonTimetableTeacher, ReasonTimetableClass, ReasonTimetableRoom, ReasonTimetableLesson:
		return true
	}
	return false
}
