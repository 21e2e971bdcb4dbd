package domain

import "errors"

var (
	// ErrExtractionFailed is the single user-facing failure for the
	// extraction path. All underlying causes (bad image encoding, upstream
	// API failure, undecodable response) collapse into it; the original
	// error goes to the diagnostic log only.
	ErrExtractionFailed = errors.New("발주 내역을 분석하지 못했습니다. 이미지가 선명한지 확인해주세요.")

	ErrEmptyInput          = errors.New("input is empty")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrInvalidSheet        = errors.New("workbook could not be read")
)
