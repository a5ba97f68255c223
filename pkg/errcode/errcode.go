package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// Home directory and config file errors
	CreateDirError
	WriteConfigError
	ReadConfigError

	// Logging errors
	OpenLogFileError

	// Feed errors
	FeedRequestError
	FeedStatusError
	FeedReadError
	FeedParseError
	FeedEmptyError

	// Catalog errors
	NameNotFoundError

	// Content errors
	ContentLoadError
	PostNotFoundError

	// Favorites errors
	FavoritesOpenError
	FavoritesQueryError
	FavoritesInvalidIDError

	// Export errors
	ExportError

	// Server errors
	ServerError
)
