package errs

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
)

// ReasonOf maps err to the reason code reported to clients. Specific
// roll-call tags are checked before generic ones.
func ReasonOf(err error) types.FailureReason {
	switch {
	case err == nil:
		return ""
	case goerr.HasTag(err, TagRollCallRunning):
		return types.ReasonRollCallRunning
	case goerr.HasTag(err, TagTimetableAuth):
		return types.ReasonTimetableAuth
	case goerr.HasTag(err, TagTimetableTeacher):
		return types.ReasonTimetableTeacher
	case goerr.HasTag(err, TagTimetableClass):
		return types.ReasonTimetableClass
	case goerr.HasTag(err, TagTimetableRoom):
		return types.ReasonTimetableRoom
	case goerr.HasTag(err, TagTimetableLesson):
		return types.ReasonTimetableLesson
	case goerr.HasTag(err, TagNoOngoingClasses):
		return types.ReasonNoOngoingClasses
	case goerr.HasTag(err, TagAlertArchived):
		return types.ReasonAlertArchived
	case goerr.HasTag(err, TagPrivacyName):
		return types.ReasonPrivacyName
	case goerr.HasTag(err, TagPrivacyDate):
		return types.ReasonPrivacyDate
	case goerr.HasTag(err, TagPrivacyKeyword):
		return types.ReasonPrivacyKeyword
	case goerr.HasTag(err, TagCommentTooLong):
		return types.ReasonCommentTooLong
	case goerr.HasTag(err, TagInvalidEdit):
		return types.ReasonInvalidEdit
	case goerr.HasTag(err, TagPersistence):
		return types.ReasonPersistence
	case goerr.HasTag(err, TagUnauthorized):
		return types.ReasonUnauthorized
	case goerr.HasTag(err, TagNotFound):
		return types.ReasonNotFound
	case goerr.HasTag(err, TagValidation):
		return types.ReasonInvalidMessage
	default:
		return types.ReasonUnknown
	}
}

// IsRejection reports whether err is a declined operation caused by caller
// input or current state rather than a system fault. Rejections are not
// reported to Sentry.
func IsRejection(err error) bool {
	switch ReasonOf(err) {
	case types.ReasonRollCallRunning,
		types.ReasonNoOngoingClasses,
		types.ReasonAlertArchived,
		types.ReasonInvalidEdit,
		types.ReasonPrivacyName,
		types.ReasonPrivacyDate,
		types.ReasonPrivacyKeyword,
		types.ReasonCommentTooLong,
		types.ReasonUnauthorized,
		types.ReasonNotFound,
		types.ReasonInvalidMessage:
		return true
	}
	return false
}
