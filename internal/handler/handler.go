// Package handler is the first layer after the router.
//
// It binds and validates requests through the validation package, calls the
// service layer and maps results and failures to HTTP responses.
package handler
