package core

// error_messages.go maps pipeline errors to short messages with codes, so a
// failed run can be reported in one line and looked up here.
//
//	DIR001  - Quarter directory not found
//	          Action: Check the quarter paths (FAERS_QUARTERS or arguments)
//
//	FILE001 - No .txt data files in the quarter directory
//	          Action: Point at the extracted ASCII folder, not the zip or XML folder
//
//	FILE002 - One of DEMO, DRUG, INDI, OUTC, REAC, RPSR, THER is missing
//	          Action: Re-extract the quarter; all seven files are required
//
//	FILE003 - Two files match the same category
//	          Action: Remove the extra copy from the quarter directory
//
//	FILE004 - A data file is empty or has no header row
//	          Action: Re-download the quarter
//
//	COL001  - A column the pipeline reads is absent
//	          Action: Check the delimiter (FAERS_DELIMITER) and file version
//
//	RUN001  - Nothing was loaded
//	          Action: Check the quarter directories
//
//	RUN002  - The run was cancelled
//
//	CFG001  - A FAERS_* setting is invalid
//	          Action: Fix the setting named in the technical error
//
//	ERR000  - Anything else; the technical error is printed alongside

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened
	Action  string // What to do about it
	Code    string // Error code for reference
}

// errorKind maps a sentinel error to its user message.
type errorKind struct {
	target error
	msg    UserMessage
}

// errorKinds is checked in order with errors.Is; the first match wins.
// ErrDirectoryNotFound comes before fs.ErrNotExist so that a missing quarter
// directory is not reported as a missing data file.
var errorKinds = []errorKind{
	{
		target: ErrDirectoryNotFound,
		msg: UserMessage{
			Message: "Quarter directory not found",
			Action:  "Check the quarter paths (FAERS_QUARTERS or command arguments)",
			Code:    "DIR001",
		},
	},
	{
		target: ErrNoFilesFound,
		msg: UserMessage{
			Message: "No .txt data files found in the quarter directory",
			Action:  "Point at the extracted ASCII folder of the quarterly download",
			Code:    "FILE001",
		},
	},
	{
		target: ErrMissingRequiredFile,
		msg: UserMessage{
			Message: "A required FAERS data file is missing",
			Action:  "Re-extract the quarter; all seven data files are required",
			Code:    "FILE002",
		},
	},
	{
		target: ErrAmbiguousFile,
		msg: UserMessage{
			Message: "More than one file matches a FAERS category",
			Action:  "Remove the extra copy from the quarter directory",
			Code:    "FILE003",
		},
	},
	{
		target: ErrEmptyFile,
		msg: UserMessage{
			Message: "A data file is empty",
			Action:  "Re-download the quarter",
			Code:    "FILE004",
		},
	},
	{
		target: fs.ErrNotExist,
		msg: UserMessage{
			Message: "A data file could not be opened",
			Action:  "Check that the quarter directory is readable",
			Code:    "FILE004",
		},
	},
	{
		target: ErrMissingColumn,
		msg: UserMessage{
			Message: "An expected column is missing",
			Action:  "Check the field delimiter (FAERS_DELIMITER) and the file version",
			Code:    "COL001",
		},
	},
	{
		target: ErrEmptyResult,
		msg: UserMessage{
			Message: "No tables were loaded",
			Action:  "Check the quarter directories",
			Code:    "RUN001",
		},
	},
	{
		target: ErrInvalidConfig,
		msg: UserMessage{
			Message: "The configuration is invalid",
			Action:  "Fix the FAERS_* setting named below",
			Code:    "CFG001",
		},
	},
	{
		target: context.Canceled,
		msg: UserMessage{
			Message: "The run was cancelled",
			Action:  "Start the run again when ready",
			Code:    "RUN002",
		},
	},
}

// defaultMessage is returned when no kind matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "See the technical error below",
	Code:    "ERR000",
}

// MapError converts a pipeline error to a user message. It returns the
// zero UserMessage for a nil error and ERR000 when nothing matches.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.target) {
			return k.msg
		}
	}
	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	ue := NewUserError(err)
	if ue == nil {
		return ""
	}
	return ue.Summary()
}

// IsUserFacing reports whether err maps to a specific code rather than ERR000.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

// UserError pairs a technical error with its user message.
type UserError struct {
	Technical error
	User      UserMessage
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// Summary renders the user message as "Message (Code: XXX). Action".
func (e *UserError) Summary() string {
	return fmt.Sprintf("%s (Code: %s). %s", e.User.Message, e.User.Code, e.User.Action)
}

// NewUserError wraps err with its mapped user message. Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
