// Command encrypt reads a public key file and a plaintext file, and
// writes the ciphertext blocks in hex: c1 and c2 on their own line each,
// followed by a blank line separating blocks.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mindoftea/elgamal/internal/bigint"
	"github.com/mindoftea/elgamal/internal/block"
	"github.com/mindoftea/elgamal/internal/diagnostics"
	"github.com/mindoftea/elgamal/internal/elgamal"
	"github.com/mindoftea/elgamal/internal/keyfile"
)

func main() {
	app := &cli.App{
		Name:      "encrypt",
		Usage:     "encrypt a file under an ElGamal public key",
		ArgsUsage: "<public-key-file> <input-file> <output-file>",
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
		return cli.Exit("usage: encrypt <public-key-file> <input-file> <output-file>", 1)
	}
	keyPath, inPath, outPath := c.Args().Get(0), c.Args().Get(1), c.Args().Get(2)

	keyFile, err := os.Open(keyPath)
	if err != nil {
		return cli.Exit(err, 2)
	}
	defer keyFile.Close()

	bits, p, g, h, err := keyfile.ReadPublic(keyFile)
	if err != nil {
		return cli.Exit(err, keyfileExitCode(err))
	}
	pk := &elgamal.PublicKey{P: p, G: g, H: h}

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

	blockSize := block.Size(bits)
	log.Infof("encrypting with a %d-bit key, %d-byte blocks", bits, blockSize)

	count := 0
	for {
		data, n, err := block.Read(in, blockSize)
		if err == io.EOF {
			break
		}
		if err != nil {
			return cli.Exit(err, 2)
		}
		m := elgamal.PackBlock(data[:n])
		ct, err := pk.EncryptBlock(m)
		if err != nil {
			return cli.Exit(err, 2)
		}
		if _, err := fmt.Fprintf(writer, "%s\n%s\n\n", bigint.EncodeHex(ct.C1), bigint.EncodeHex(ct.C2)); err != nil {
			return cli.Exit(err, 2)
		}
		count++
	}

	log.Noticef("wrote %d ciphertext block(s) to %s", count, outPath)
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
