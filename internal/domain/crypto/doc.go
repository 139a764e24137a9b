// Package crypto defines the core types and contracts for independent-block AES-256 encryption,
// such as the 32-byte key, the 16-byte block, the padding error taxonomy and the block cryptor interface.

package crypto
