// Package storeerr handles document store driver errors.
//
// It classifies errors returned by the MongoDB driver and converts
// them into client-safe HTTP errors (e.g. a duplicate key becomes a
// "Bad Request", anything unexpected a generic 500).
package storeerr
