package services

import (
	"context"
	"errors"

	"makhana/pkg/sheets"
)

// ErrSubmissionFailed marks a form or order that the spreadsheet endpoint did
// not accept. The underlying sheets error is wrapped alongside it.
var ErrSubmissionFailed = errors.New("submission failed")

// Submitter forwards a typed payload to the spreadsheet endpoint.
// *sheets.Client satisfies it.
type Submitter interface {
	Submit(ctx context.Context, t sheets.Type, data any) (*sheets.Result, error)
}
