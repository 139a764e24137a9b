// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to store sealed blob metadata together
// with the ciphertext produced by the block cryptor.
package persistence
