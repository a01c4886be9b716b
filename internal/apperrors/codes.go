package apperrors

import "net/http"

type ErrorType string

const (
	TypeBadRequest   ErrorType = "bad_request"
	TypeUnauthorized ErrorType = "unauthorized"
	TypeForbidden    ErrorType = "forbidden"
	TypeNotFound     ErrorType = "not_found"
	TypeRateLimit    ErrorType = "rate_limit"
	TypeOffline      ErrorType = "offline"
)

type Surface string

const (
	SurfaceChat        Surface = "chat"
	SurfaceAuth        Surface = "auth"
	SurfaceAPI         Surface = "api"
	SurfaceStream      Surface = "stream"
	SurfaceDatabase    Surface = "database"
	SurfaceHistory     Surface = "history"
	SurfaceVote        Surface = "vote"
	SurfaceDocument    Surface = "document"
	SurfaceSuggestions Surface = "suggestions"
	SurfaceFiles       Surface = "files"
)

// Code is "<type>:<surface>", e.g. "not_found:database".
type Code string

const (
	CodeBadRequestAPI           Code = "bad_request:api"
	CodeBadRequestDatabase      Code = "bad_request:database"
	CodeNotFoundDatabase        Code = "not_found:database"
	CodeBadRequestAuth          Code = "bad_request:auth"
	CodeUnauthorizedAuth        Code = "unauthorized:auth"
	CodeUnauthorizedChat        Code = "unauthorized:chat"
	CodeForbiddenChat           Code = "forbidden:chat"
	CodeNotFoundChat            Code = "not_found:chat"
	CodeRateLimitChat           Code = "rate_limit:chat"
	CodeUnauthorizedVote        Code = "unauthorized:vote"
	CodeForbiddenVote           Code = "forbidden:vote"
	CodeUnauthorizedDocument    Code = "unauthorized:document"
	CodeNotFoundDocument        Code = "not_found:document"
	CodeForbiddenDocument       Code = "forbidden:document"
	CodeBadRequestDocument      Code = "bad_request:document"
	CodeUnauthorizedSuggestions Code = "unauthorized:suggestions"
	CodeNotFoundSuggestion      Code = "not_found:suggestions"
	CodeBadRequestFiles         Code = "bad_request:files"
	CodeForbiddenFiles          Code = "forbidden:files"
	CodeNotFoundFiles           Code = "not_found:files"
	CodeOfflineFiles            Code = "offline:files"
)

var statusByType = map[ErrorType]int{
	TypeBadRequest:   http.StatusBadRequest,
	TypeUnauthorized: http.StatusUnauthorized,
	TypeForbidden:    http.StatusForbidden,
	TypeNotFound:     http.StatusNotFound,
	TypeRateLimit:    http.StatusTooManyRequests,
	TypeOffline:      http.StatusServiceUnavailable,
}

func defaultMessage(c Code) string {
	if Surface(c.surface()) == SurfaceDatabase {
		return "An error occurred while executing a database query."
	}

	switch c {
	case CodeBadRequestAPI:
		return "The request couldn't be processed. Please check your input and try again."
	case CodeUnauthorizedAuth:
		return "You need to sign in before continuing."
	case CodeUnauthorizedChat:
		return "You need to sign in to view this chat. Please sign in and try again."
	case CodeForbiddenChat:
		return "This chat belongs to another user. Please check the chat ID and try again."
	case CodeNotFoundChat:
		return "The requested chat was not found. Please check the chat ID and try again."
	case CodeRateLimitChat:
		return "You have exceeded your maximum number of messages for the day. Please try again later."
	case CodeUnauthorizedVote:
		return "You need to sign in to vote on messages."
	case CodeForbiddenVote:
		return "This message belongs to another user's chat."
	case CodeNotFoundDocument:
		return "The requested document was not found. Please check the document ID and try again."
	case CodeForbiddenDocument:
		return "This document belongs to another user. Please check the document ID and try again."
	case CodeOfflineFiles:
		return "File uploads are not available right now. Please try again later."
	}

	switch ErrorType(c.kind()) {
	case TypeNotFound:
		return "The requested resource was not found."
	case TypeForbidden:
		return "You do not have access to this resource."
	case TypeUnauthorized:
		return "You need to sign in to continue."
	}
	return "Something went wrong. Please try again later."
}
