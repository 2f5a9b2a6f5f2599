// Package ucode models the microcode ROM address space and decodes raw
// micro-op and sequence words into mnemonic text.
//
// The ROM is addressed linearly in [0, ROM_SIZE). Addresses group into
// triads of four consecutive slots: three hold micro-op words, the fourth
// is structurally unused and never disassembled. Each triad shares one
// sequence word controlling synchronization, execution flow, and jumps
// around its three micro-ops.
//
// Decoding is pure and total: every representable word at every valid
// address yields some text, degrading to unk_NNN or seqw_NNNNNNNN
// placeholders for encodings the tables do not classify.
package ucode
