package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

type AlertID string

func (x AlertID) String() string {
	return string(x)
}

func NewAlertID() AlertID {
	return AlertID(uuid.New().String())
}

const EmptyAlertID AlertID = ""

type PostID string

func (x PostID) String() string {
	return string(x)
}

func NewPostID() PostID {
	return PostID(uuid.New().String())
}

func (x PostID) Validate() error {
	if x == "" {
		return goerr.New("empty post ID")
	}
	return nil
}

type AuditID string

func (x AuditID) String() string {
	return string(x)
}

func NewAuditID() AuditID {
	return AuditID(uuid.New().String())
}

// PostStatus is the roll-call state of one class.
type PostStatus string

const (
	PostStatusUndefined  PostStatus = "undefined"
	PostStatusComplete   PostStatus = "complete"
	PostStatusIncomplete PostStatus = "incomplete"
)

func (s PostStatus) String() string {
	return string(s)
}

func (s PostStatus) Validate() error {
	switch s {
	case PostStatusUndefined, PostStatusComplete, PostStatusIncomplete:
		return nil
	}
	return goerr.New("invalid post status", goerr.V("status", s))
}

// PostStatusValues lists every storable status, in display order.
var PostStatusValues = []PostStatus{
	PostStatusUndefined,
	PostStatusComplete,
	PostStatusIncomplete,
}
