// Command decrypt reads a private key file and a file of ciphertext
// blocks produced by encrypt (c1 and c2 hex on their own line each, one
// blank line between blocks), and writes the recovered plaintext bytes.
package main

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/mindoftea/elgamal/internal/bigint"
	"github.com/mindoftea/elgamal/internal/diagnostics"
	"github.com/mindoftea/elgamal/internal/elgamal"
	"github.com/mindoftea/elgamal/internal/keyfile"
)

func main() {
	app := &cli.App{
		Name:      "decrypt",
		Usage:     "decrypt a file produced by encrypt under an ElGamal private key",
		ArgsUsage: "<private-key-file> <input-file> <output-file>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log at debug level",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		diagnostics.Fail("%v", err)
		if coder, ok := err.(cli.ExitCoder); ok {
			os.Exit(coder.ExitCode())
		}
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	log := diagnostics.Setup(c.Bool("verbose"))

	if c.Args().Len() != 3 {
		return cli.Exit("usage: decrypt <private-key-file> <input-file> <output-file>", 1)
	}
	keyPath, inPath, outPath := c.Args().Get(0), c.Args().Get(1), c.Args().Get(2)

	keyFile, err := os.Open(keyPath)
	if err != nil {
		return cli.Exit(err, 2)
	}
	defer keyFile.Close()

	bits, p, g, x, err := keyfile.ReadPrivate(keyFile)
	if err != nil {
		return cli.Exit(err, keyfileExitCode(err))
	}
	sk := &elgamal.PrivateKey{P: p, G: g, X: x}

	in, err := os.Open(inPath)
	if err != nil {
		return cli.Exit(err, 2)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return cli.Exit(err, 2)
	}
	defer out.Close()

	writer := bufio.NewWriter(out)
	defer writer.Flush()

	log.Infof("decrypting with a %d-bit key", bits)

	scanner := bufio.NewScanner(in)
	count := 0
	var c1Hex string
	haveC1 := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !haveC1 {
			c1Hex = line
			haveC1 = true
			continue
		}
		ct := elgamal.Ciphertext{
			C1: bigint.DecodeHex(c1Hex),
			C2: bigint.DecodeHex(line),
		}
		haveC1 = false
		m := sk.DecryptBlock(ct)
		if _, err := writer.Write(elgamal.UnpackBlock(m)); err != nil {
			return cli.Exit(err, 2)
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return cli.Exit(err, 2)
	}
	if haveC1 {
		return cli.Exit("decrypt: malformed ciphertext file: trailing c1 line with no matching c2", 2)
	}

	log.Noticef("wrote plaintext recovered from %d ciphertext block(s) to %s", count, outPath)
	return nil
}

func keyfileExitCode(err error) int {
	switch {
	case errors.Is(err, keyfile.ErrMissingTitle):
		return 3
	case errors.Is(err, keyfile.ErrMissingPrimeModulus):
		return 4
	case errors.Is(err, keyfile.ErrMissingGenerator):
		return 5
	case errors.Is(err, keyfile.ErrMissingSecret):
		return 6
	default:
		return 2
	}
}
