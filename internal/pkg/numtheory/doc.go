// Package numtheory provides the integer arithmetic behind the RSA walkthrough:
// primality testing, greatest common divisors, modular inverses and modular
// exponentiation on int64 values. Every multiplication that feeds a modulo
// reduction is overflow checked, so a result is either exact or an error.
package numtheory
