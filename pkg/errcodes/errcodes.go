package errcodes

import "cancer_api/pkg/apperr"

const (
	InternalServerError apperr.ErrorCode = "InternalServerError"
	TimeoutExceeded     apperr.ErrorCode = "TimeoutExceeded"
	ValidationError     apperr.ErrorCode = "ValidationError"
	NotFound            apperr.ErrorCode = "NotFound"
	MethodNotAllowed    apperr.ErrorCode = "MethodNotAllowed"
	ServiceUnavailable  apperr.ErrorCode = "ServiceUnavailable"

	// Model and dataset.
	ModelUnavailable    apperr.ErrorCode = "ModelUnavailable"
	DatasetInvalid      apperr.ErrorCode = "DatasetInvalid"
	DatasetEmpty        apperr.ErrorCode = "DatasetEmpty"
	InvalidCell         apperr.ErrorCode = "InvalidCell"
	InvalidPaging       apperr.ErrorCode = "InvalidPaging"
	HistoryDisabled     apperr.ErrorCode = "HistoryDisabled"
	PredictionNotFound  apperr.ErrorCode = "PredictionNotFound"
	PredictionNotQueued apperr.ErrorCode = "PredictionNotQueued"
)
