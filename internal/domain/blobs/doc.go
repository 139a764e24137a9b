// Package blobs defines the sealed blob entity and the contracts for storing and opening
// data encrypted with the block cryptor.
package blobs
