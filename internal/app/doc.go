// Package app wires the block cryptor to the sealed blob repository.
package app
