package errs_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/rollcall/pkg/domain/model/errs"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
)

func TestReasonOf(t *testing.T) {
	type testCase struct {
		err    error
		reason types.FailureReason
	}

	runTest := func(tc testCase) func(t *testing.T) {
		return func(t *testing.T) {
			gt.Equal(t, errs.ReasonOf(tc.err), tc.reason)
		}
	}

	t.Run("nil", runTest(testCase{err: nil, reason: ""}))
	t.Run("plain error", runTest(testCase{
		err:    errors.New("boom"),
		reason: types.ReasonUnknown,
	}))
	t.Run("tagged", runTest(testCase{
		err:    goerr.New("fetch failed", goerr.T(errs.TagTimetableRoom)),
		reason: types.ReasonTimetableRoom,
	}))
	t.Run("wrapped keeps tag", runTest(testCase{
		err:    goerr.Wrap(goerr.New("x", goerr.T(errs.TagAlertArchived)), "update failed"),
		reason: types.ReasonAlertArchived,
	}))
	t.Run("specific wins over generic", runTest(testCase{
		err:    goerr.New("x", goerr.T(errs.TagPersistence), goerr.T(errs.TagNoOngoingClasses)),
		reason: types.ReasonNoOngoingClasses,
	}))
}

func TestIsRejection(t *testing.T) {
	gt.True(t, errs.IsRejection(goerr.New("x", goerr.T(errs.TagPrivacyName))))
	gt.True(t, errs.IsRejection(goerr.New("x", goerr.T(errs.TagRollCallRunning))))
	gt.False(t, errs.IsRejection(goerr.New("x", goerr.T(errs.TagTimetableAuth))))
	gt.False(t, errs.IsRejection(errors.New("x")))
}
