package crypto

// AlgorithmAES256 represents the AES-256 block cipher
const AlgorithmAES256 = "AES-256"

// ModeIndependentBlock represents encryption where every block is transformed on its own (ECB-like)
const ModeIndependentBlock = "independent-block"

// BlockSize is the size in bytes of one cipher block
const BlockSize = 16

// KeySize is the size in bytes of an AES-256 key
const KeySize = 32

// FullPaddingByte is the value of every byte in a dedicated padding block
const FullPaddingByte byte = BlockSize

// DefaultParallelThreshold is the block count from which block transforms are spread over workers
const DefaultParallelThreshold = 4096
