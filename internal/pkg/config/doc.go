// Package config provides the validated settings for the RSA walkthrough.
//
// Settings are plain structs populated from command-line flags and checked
// with validator struct tags plus a few cross-field rules that tags cannot
// express.
package config
