// Package repository handles all interactions with the document store.
//
// It contains the MongoDB queries used to fetch, persist and delete
// records, abstracting driver details away from the service layer.
package repository
