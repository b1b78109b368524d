package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"math/big"

	"github.com/AlexanderYastrebov/ed25519core"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type scalarMultOptions struct {
	hex   bool
	point string
}

func newScalarMultCommand() *cobra.Command {
	opts := &scalarMultOptions{}

	cmd := &cobra.Command{
		Use:   "scalarmult SCALAR",
		Short: "Multiply the base point, or a given point, by a scalar",
		Long: `Multiply the base point, or the point given with --point, by SCALAR and
print the encoding of the result and its Montgomery u-coordinate.

SCALAR is a decimal integer below 2^256, or a 32-byte little-endian hex
string with --hex.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScalarMult(cmd.OutOrStdout(), opts, args[0])
		},
	}

	opts.addFlags(cmd.Flags())
	return cmd
}

func (o *scalarMultOptions) addFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&o.hex, "hex", false, "Read SCALAR as 32-byte little-endian hex")
	flags.StringVar(&o.point, "point", "", "Hex encoding of the point to multiply instead of the base point")
}

// parseScalar returns the 32-byte little-endian encoding of s.
func parseScalar(s string, isHex bool) ([]byte, error) {
	if isHex {
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, errors.Wrap(err, "decode scalar")
		}
		if len(b) != 32 {
			return nil, errors.Errorf("scalar must be 32 bytes, got %d", len(b))
		}
		return b, nil
	}

	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.Sign() < 0 || n.BitLen() > 256 {
		return nil, errors.Errorf("scalar must be a decimal integer in [0, 2^256), got %q", s)
	}
	var buf [32]byte
	n.FillBytes(buf[:])
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf[:], nil
}

func parsePoint(s string) (*ed25519core.Point, error) {
	enc, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "decode point")
	}
	p, err := new(ed25519core.Point).SetBytes(enc)
	if err != nil {
		return nil, errors.Wrap(err, "decode point")
	}
	return p, nil
}

func runScalarMult(w io.Writer, opts *scalarMultOptions, arg string) error {
	scalar, err := parseScalar(arg, opts.hex)
	if err != nil {
		return err
	}

	var p *ed25519core.Point
	if opts.point == "" {
		p, err = new(ed25519core.Point).ScalarBaseMult(scalar)
	} else {
		var q *ed25519core.Point
		q, err = parsePoint(opts.point)
		if err != nil {
			return err
		}
		p, err = new(ed25519core.Point).ScalarMult(scalar, q)
	}
	if err != nil {
		return errors.Wrap(err, "scalar multiplication")
	}

	logrus.WithField("scalar", hex.EncodeToString(scalar)).Debug("Multiplied")

	fmt.Fprintf(w, "point: %x\n", p.Bytes())
	fmt.Fprintf(w, "u:     %x\n", p.BytesMontgomery())
	return nil
}
