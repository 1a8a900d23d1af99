// Package toyrsa defines the key material, transcripts and contracts of the
// textbook RSA walkthrough. Values are int64 and deliberately tiny; nothing
// in this package is fit for real cryptography.
package toyrsa
