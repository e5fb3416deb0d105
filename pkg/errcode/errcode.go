package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Namespace errors
	RoleNotFoundError
	SubjectNotFoundError

	// Definition loading errors
	RoleDefinitionError
	SourceParseError

	// Conformance errors
	MissingMethodError
	SignatureMismatchError
	ConformanceError

	// Report errors
	ReportWriteError
)
