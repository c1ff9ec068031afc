// Command keygen generates an ElGamal key pair and writes a private and
// a public key file.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mindoftea/elgamal/internal/bigint"
	"github.com/mindoftea/elgamal/internal/diagnostics"
	"github.com/mindoftea/elgamal/internal/elgamal"
	"github.com/mindoftea/elgamal/internal/keyfile"
)

func main() {
	app := &cli.App{
		Name:      "keygen",
		Usage:     "generate an ElGamal key pair",
		ArgsUsage: "<bits> <private-key-file> <public-key-file>",
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
		return cli.Exit("usage: keygen <bits> <private-key-file> <public-key-file>", 1)
	}
	bits, err := parseBits(c.Args().Get(0))
	if err != nil {
		return cli.Exit(err, 1)
	}

	privPath := c.Args().Get(1)
	pubPath := c.Args().Get(2)

	log.Infof("generating a %d-bit key pair", bits)
	diagnostics.Warn("primitive-root search only verifies group membership (g^(p-1) = 1 mod p), " +
		"not true generator order; see the primitive-root documentation before relying on it beyond this tool's own use")

	seed, err := bigint.SeedFromEntropy()
	if err != nil {
		return cli.Exit(err, 2)
	}
	rng := rand.New(rand.NewSource(seed))
	sk, pk, err := elgamal.GenerateKeyPair(uint(bits), rng)
	if err != nil {
		return cli.Exit(err, 2)
	}

	privFile, err := os.Create(privPath)
	if err != nil {
		return cli.Exit(err, 2)
	}
	defer privFile.Close()
	if err := keyfile.WritePrivate(privFile, bits, sk.P, sk.G, sk.X); err != nil {
		return cli.Exit(err, 2)
	}

	pubFile, err := os.Create(pubPath)
	if err != nil {
		return cli.Exit(err, 2)
	}
	defer pubFile.Close()
	if err := keyfile.WritePublic(pubFile, bits, pk.P, pk.G, pk.H); err != nil {
		return cli.Exit(err, 2)
	}

	log.Noticef("wrote %s and %s", privPath, pubPath)
	return nil
}

func parseBits(s string) (int, error) {
	var bits int
	if _, err := fmt.Sscan(s, &bits); err != nil || bits <= 2 {
		return 0, cli.Exit("bits must be an integer greater than 2", 1)
	}
	return bits, nil
}
