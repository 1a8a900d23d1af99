package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/MGTheTrain/rsa-demo/internal/domain/toyrsa"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const banner = `
    ____  _____ ___
   / __ \/ ___//   |
  / /_/ /\__ \/ /| |
 / _, _/___/ / ___ |
/_/ |_|/____/_/  |_|

----------------------------------
NOTE: This is an oversimplified RSA encryption and decryption demo.
      It is not secure for production use. At all.
----------------------------------
`

const rule = "-------------------------------"

var decimalPrinter = message.NewPrinter(language.BritishEnglish)

// WriteTerse writes the encrypted and decrypted values as hex, one per line.
func WriteTerse(w io.Writer, t *toyrsa.Transcript) error {
	_, err := fmt.Fprintf(w, "Encrypted message (as hex): %s\nDecrypted message (as hex): %s\n",
		FormatHex(t.Ciphertext), FormatHex(t.Decrypted))
	return err
}

// WriteVerbose writes the banner, the key derivation diagram, the step tables
// of the extended Euclidean algorithm and both exponentiations, and the keys.
func WriteVerbose(w io.Writer, t *toyrsa.Transcript) error {
	ew := &errWriter{w: w}
	k := t.Keys

	ew.printf("%s\n", banner)
	ew.printf("Run ID = %s\n", t.RunID)
	ew.printf("Message = %s\n", FormatHex(t.Message))
	ew.printf("Message as int = %s\n", dec(t.Message))
	ew.printf("%s\n\n", rule)

	ew.printf("     Generate prime numbers:\n")
	ew.printf("     p = %d ------- q = %d\n", k.P, k.Q)
	ew.printf("                |\n")
	ew.printf("                |--> n   = p x q = %s\n", dec(k.N))
	ew.printf("                |--> phi = (%d-1) x (%d-1) = %s\n", k.P, k.Q, dec(k.Phi))
	ew.printf("                |--> e   = %s, a coprime of phi\n", dec(k.E))
	ew.printf("                |--> d   = e^-1 mod phi = %s\n", dec(k.D))
	if k.SamePrimes() {
		ew.printf("     WARNING: p = q, n is a perfect square and trivially factorable\n")
	}
	ew.printf("\n")

	ew.printf("Extended Euclid for d (t ends as d before reduction into [0, phi)):\n")
	ew.table(func(tw io.Writer) {
		fmt.Fprintln(tw, "quotient\tr\tnewR\tt\tnewT\t")
		for _, s := range k.InverseSteps {
			fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t\n", s.Quotient, s.R, s.NewR, s.T, s.NewT)
		}
	})

	ew.printf("encrypt() = (message)^e mod n = %s^%s mod %s\n", dec(t.Message), dec(k.E), dec(k.N))
	ew.expTable(t.EncryptSteps)
	ew.printf("decrypt() = (ciphertext)^d mod n = %s^%s mod %s\n", dec(t.Ciphertext), dec(k.D), dec(k.N))
	ew.expTable(t.DecryptSteps)

	ew.printf("message:           %-12s ciphertext:        %s\n", FormatHex(t.Message), FormatHex(t.Ciphertext))
	ew.printf("message as int:    %-12s ciphertext as int: %s\n", dec(t.Message), dec(t.Ciphertext))
	ew.printf("encrypted message: %-12s decrypted message: %s\n", dec(t.Ciphertext), dec(t.Decrypted))
	ew.printf("encrypted (hex):   %-12s decrypted (hex):   %s\n", FormatHex(t.Ciphertext), FormatHex(t.Decrypted))
	if t.MessageWrapped() {
		ew.printf("WARNING: message is not below n and was reduced modulo n before encryption\n")
	}
	ew.printf("\n%s\n\n", rule)

	ew.printf("Public key (e, n): (%d, %d)\n", k.E, k.N)
	ew.printf("Private key (d, n): (%d, %d)\n", k.D, k.N)
	ew.printf("%s\n\n", rule)
	return ew.err
}

func dec(v int64) string {
	return decimalPrinter.Sprintf("%d", v)
}

// errWriter keeps the first write error and turns later writes into no-ops
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) table(rows func(tw io.Writer)) {
	if ew.err != nil {
		return
	}
	tw := tabwriter.NewWriter(ew.w, 0, 8, 2, ' ', tabwriter.AlignRight)
	rows(tw)
	if err := tw.Flush(); err != nil {
		ew.err = err
		return
	}
	ew.printf("\n")
}

func (ew *errWriter) expTable(steps []toyrsa.ExpStep) {
	ew.table(func(tw io.Writer) {
		fmt.Fprintln(tw, "exponent\tbit\tbase\tresult\t")
		for _, s := range steps {
			fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t\n", s.Exponent, s.Bit, s.Base, s.Result)
		}
	})
}
