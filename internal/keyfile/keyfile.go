// Package keyfile reads and writes the plain-text key file format: a
// title line giving the key size, then three labeled fields in
// big-endian hex, each preceded by a blank line. This is the "key-file
// text templating" collaborator the core cryptosystem treats as
// external per its scope — the core never parses or formats text, only
// BigUint values.
//
// Private key:
//
//	Private Key (<bits> bits)
//
//	PrimeModulus:   <hex p>
//
//	Generator:      <hex g>
//
//	Exponent:       <hex x>
//
// Public key is identical in shape with "Exponential:" and h replacing
// "Exponent:" and x.
package keyfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mindoftea/elgamal/internal/bigint"
)

// Parse failures, one per labeled field a key file must carry. Drivers
// map these to exit codes 3-6 as the external interface requires.
var (
	ErrMissingTitle        = errors.New("keyfile: missing title line")
	ErrMissingPrimeModulus = errors.New("keyfile: missing PrimeModulus field")
	ErrMissingGenerator    = errors.New("keyfile: missing Generator field")
	ErrMissingSecret       = errors.New("keyfile: missing Exponent/Exponential field")
)

// WritePrivate writes a private key file for the triple (p, g, x) at the
// given bit size.
func WritePrivate(w io.Writer, bits int, p, g, x bigint.BigUint) error {
	_, err := fmt.Fprintf(w, "Private Key (%d bits)\n\nPrimeModulus:\t%s\n\nGenerator:\t%s\n\nExponent:\t%s\n",
		bits, bigint.EncodeHex(p), bigint.EncodeHex(g), bigint.EncodeHex(x))
	return err
}

// WritePublic writes a public key file for the triple (p, g, h) at the
// given bit size.
func WritePublic(w io.Writer, bits int, p, g, h bigint.BigUint) error {
	_, err := fmt.Fprintf(w, "Public Key (%d bits)\n\nPrimeModulus:\t%s\n\nGenerator:\t%s\n\nExponential:\t%s\n",
		bits, bigint.EncodeHex(p), bigint.EncodeHex(g), bigint.EncodeHex(h))
	return err
}

// ReadPrivate parses a private key file, returning its declared bit size
// and the (p, g, x) triple.
func ReadPrivate(r io.Reader) (bits int, p, g, x bigint.BigUint, err error) {
	bits, p, g, secret, err := readKeyFile(r, "Exponent:")
	return bits, p, g, secret, err
}

// ReadPublic parses a public key file, returning its declared bit size
// and the (p, g, h) triple.
func ReadPublic(r io.Reader) (bits int, p, g, h bigint.BigUint, err error) {
	bits, p, g, secret, err := readKeyFile(r, "Exponential:")
	return bits, p, g, secret, err
}

func readKeyFile(r io.Reader, secretLabel string) (bits int, p, g, secret bigint.BigUint, err error) {
	scanner := bufio.NewScanner(r)

	title, ok := nextNonBlank(scanner)
	if !ok {
		return 0, p, g, secret, ErrMissingTitle
	}
	open := strings.IndexByte(title, '(')
	if open < 0 {
		return 0, p, g, secret, ErrMissingTitle
	}
	if _, scanErr := fmt.Sscanf(title[open:], "(%d bits)", &bits); scanErr != nil {
		return 0, p, g, secret, ErrMissingTitle
	}

	pField, ok := findField(scanner, "PrimeModulus:")
	if !ok {
		return 0, p, g, secret, ErrMissingPrimeModulus
	}
	p = bigint.DecodeHex(pField)

	gField, ok := findField(scanner, "Generator:")
	if !ok {
		return 0, p, g, secret, ErrMissingGenerator
	}
	g = bigint.DecodeHex(gField)

	secretField, ok := findField(scanner, secretLabel)
	if !ok {
		return 0, p, g, secret, ErrMissingSecret
	}
	secret = bigint.DecodeHex(secretField)

	return bits, p, g, secret, nil
}

// nextNonBlank returns the next non-empty (after trimming) line.
func nextNonBlank(scanner *bufio.Scanner) (string, bool) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			return line, true
		}
	}
	return "", false
}

// findField scans forward for a line beginning with label, skips the
// label (and any separating tab/spaces), and returns the remainder of
// the line up to its end.
func findField(scanner *bufio.Scanner, label string) (string, bool) {
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, label) {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, label)), true
		}
	}
	return "", false
}
