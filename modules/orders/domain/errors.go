package domain

import "errors"

var (
	ErrOrderPartNotFound     = errors.New("order part not found")
	ErrStageAlreadyComplete  = errors.New("stage already completed")
	ErrStageOutOfOrder       = errors.New("earlier stages are still incomplete")
	ErrWorkflowComplete      = errors.New("order part workflow already complete")
	ErrInvalidQuantity       = errors.New("quantity must be positive")
	ErrQuotationIncomplete   = errors.New("quotation requires both vendor and unit cost")
	ErrSampleNotSent         = errors.New("no sample was sent to the office")
	ErrSampleAlreadyReceived = errors.New("sample already received by office")
)
