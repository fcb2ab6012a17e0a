package storeerr

import (
	"context"
	"fmt"
	"strings"

	"github.com/deppfellow/games-api/internal/errs"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Code is a driver-independent category for store errors.
type Code string

const (
	Other        Code = "OTHER"
	NotFound     Code = "NOT_FOUND"
	DuplicateKey Code = "DUPLICATE_KEY"
	InvalidID    Code = "INVALID_ID"
	Timeout      Code = "TIMEOUT"
	Unavailable  Code = "UNAVAILABLE"
	Unclassified Code = "UNCLASSIFIED"
)

// ErrInvalidID marks identifiers that cannot be parsed into a store key.
var ErrInvalidID = errors.New("invalid identifier")

// Error is a classified store error that keeps the driver error for Unwrap.
type Error struct {
	Code       Code
	Collection string
	Message    string
	driverErr  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Message, e.Code, e.driverErr)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// Wrap classifies err and records which collection the operation ran against.
// A nil err returns nil.
func Wrap(err error, collection, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:       Classify(err),
		Collection: collection,
		Message:    message,
		driverErr:  err,
	}
}

// ErrCode reports the Code of a previously wrapped error, or Other.
func ErrCode(err error) Code {
	var storeErr *Error
	if errors.As(err, &storeErr) {
		return storeErr.Code
	}
	return Other
}

// Classify maps a raw driver error to a Code.
func Classify(err error) Code {
	switch {
	case err == nil:
		return Other
	case errors.Is(err, mongo.ErrNoDocuments):
		return NotFound
	case errors.Is(err, ErrInvalidID), errors.Is(err, primitive.ErrInvalidHex):
		return InvalidID
	case mongo.IsDuplicateKeyError(err):
		return DuplicateKey
	case mongo.IsTimeout(err), errors.Is(err, context.DeadlineExceeded):
		return Timeout
	case mongo.IsNetworkError(err), errors.Is(err, mongo.ErrClientDisconnected):
		return Unavailable
	}

	var storeErr *Error
	if errors.As(err, &storeErr) {
		return storeErr.Code
	}

	return Unclassified
}

// entityName turns a collection name into a human readable entity:
// "games" -> "Game", "high_scores" -> "High Score".
func entityName(collection string) string {
	if collection == "" {
		return "Record"
	}

	entity := collection
	if strings.HasSuffix(entity, "s") && len(entity) > 1 {
		entity = entity[:len(entity)-1]
	}

	return cases.Title(language.English).String(strings.ReplaceAll(entity, "_", " "))
}

// errorCode builds a machine-friendly code, e.g. GAME_ALREADY_EXISTS.
func errorCode(collection string, code Code) string {
	domain := strings.ToUpper(strings.ReplaceAll(entityName(collection), " ", "_"))

	action := "ERROR"
	switch code {
	case NotFound:
		action = "NOT_FOUND"
	case DuplicateKey:
		action = "ALREADY_EXISTS"
	case InvalidID:
		action = "INVALID_ID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// HandleError converts a store error into an application-level HTTP error.
//
// Output:
//   - *errs.HTTPError: returned unchanged
//   - no documents: 404
//   - duplicate key: 400
//   - everything else (including malformed ids, timeouts, network errors): 500
//
// The driver message is never copied into the returned error.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	collection := ""
	var storeErr *Error
	if errors.As(err, &storeErr) {
		collection = storeErr.Collection
	}

	switch Classify(err) {
	case NotFound:
		code := errorCode(collection, NotFound)
		return errs.NewNotFoundError(fmt.Sprintf("%s not found", entityName(collection)), true, &code)

	case DuplicateKey:
		code := errorCode(collection, DuplicateKey)
		message := fmt.Sprintf("A %s with this identifier already exists", strings.ToLower(entityName(collection)))
		return errs.NewBadRequestError(message, true, &code, nil, nil)
	}

	return errs.NewInternalServerError()
}
