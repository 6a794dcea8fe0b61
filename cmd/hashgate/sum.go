package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sara-star-quant/hashgate/internal/constants"
	"github.com/sara-star-quant/hashgate/pkg/hashlib"
)

// errCheckFailed is returned when --check does not match.
var errCheckFailed = errors.New("digest mismatch")

type sumOptions struct {
	algorithm      string
	notForSecurity bool
	size           int
	key            string
	check          string
	format         string
}

// Output formats for sum.
const (
	formatGNU       = "gnu"       // <hex>  <file>
	formatReference = "reference" // <algorithm>:<hex>  <file>
)

func newSumCommand(a *app) *cobra.Command {
	o := &sumOptions{}

	cmd := &cobra.Command{
		Use:   "sum [flags] [file...]",
		Short: "Print digests of files, or of stdin when no file is given.",
		Example: `  hashgate sum -a sha3-256 go.mod
  hashgate sum -a md5 --not-for-security artifact.tar
  echo -n abc | hashgate sum -a blake2b --size 32
  hashgate sum -a sha256 --check ba7816bf... file
  hashgate sum --check sha256:ba7816bf... file
  hashgate sum --format reference -a sha512 image.tar`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSum(cmd, o, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&o.algorithm, "algorithm", "a", "", "digest algorithm (default from HASHGATE_ALGORITHM or sha256)")
	flags.BoolVar(&o.notForSecurity, "not-for-security", false, "declare the digest is not used for security (usedforsecurity=false)")
	flags.IntVar(&o.size, "size", 0, "output size in bytes for variable-length algorithms")
	flags.StringVar(&o.key, "key", "", "hex key for keyed blake2")
	flags.StringVar(&o.check, "check", "", "expected hex digest or algorithm:hex reference; requires a single input")
	flags.StringVar(&o.format, "format", formatGNU, "output format: gnu or reference")
	return cmd
}

func (o *sumOptions) digestOptions() ([]hashlib.Option, error) {
	var opts []hashlib.Option
	if o.notForSecurity {
		opts = append(opts, hashlib.UsedForSecurity(false))
	}
	if o.size != 0 {
		opts = append(opts, hashlib.WithSize(o.size))
	}
	if o.key != "" {
		key, err := hex.DecodeString(o.key)
		if err != nil {
			return nil, fmt.Errorf("invalid --key: %w", err)
		}
		opts = append(opts, hashlib.WithKey(key))
	}
	return opts, nil
}

func (a *app) runSum(cmd *cobra.Command, o *sumOptions, args []string) error {
	alg := a.cfg.Algorithm
	if o.algorithm != "" {
		alg = o.algorithm
	}

	switch o.format {
	case formatGNU, formatReference:
	default:
		return fmt.Errorf("invalid format: %s (use gnu or reference)", o.format)
	}

	opts, err := o.digestOptions()
	if err != nil {
		return err
	}

	var expected []byte
	if o.check != "" {
		if len(args) > 1 {
			return fmt.Errorf("--check takes a single input, got %d", len(args))
		}
		if alg, expected, err = o.expected(alg); err != nil {
			return err
		}
	}

	if len(args) == 0 {
		args = []string{"-"}
	}

	out := cmd.OutOrStdout()
	for _, name := range args {
		d, err := a.digestInput(cmd, name, alg, opts)
		if err != nil {
			if errors.Is(err, hashlib.ErrUsedForSecurity) {
				return fmt.Errorf("%w (use --not-for-security for non-security use)", err)
			}
			return err
		}

		if expected != nil {
			if !d.Equal(expected) {
				fmt.Fprintf(out, "%s: FAILED\n", name)
				return fmt.Errorf("%s: %w", name, errCheckFailed)
			}
			fmt.Fprintf(out, "%s: OK\n", name)
			continue
		}
		sum := d.HexDigest()
		if o.format == formatReference {
			sum = d.Reference()
		}
		fmt.Fprintf(out, "%s  %s\n", sum, name)
	}
	return nil
}

// expected decodes --check. A reference names its own algorithm, which
// must agree with -a when both are given.
func (o *sumOptions) expected(alg string) (string, []byte, error) {
	if !strings.Contains(o.check, ":") {
		sum, err := hex.DecodeString(o.check)
		if err != nil {
			return "", nil, fmt.Errorf("invalid --check: %w", err)
		}
		return alg, sum, nil
	}

	refAlg, sum, err := hashlib.ParseReference(o.check)
	if err != nil {
		return "", nil, fmt.Errorf("invalid --check: %w", err)
	}
	if o.algorithm != "" && constants.NormalizeAlgorithm(o.algorithm) != refAlg {
		return "", nil, fmt.Errorf("--check names %s but -a is %s", refAlg, o.algorithm)
	}
	return refAlg, sum, nil
}

func (a *app) digestInput(cmd *cobra.Command, name, alg string, opts []hashlib.Option) (*hashlib.Digest, error) {
	var rd io.Reader
	if name == "-" {
		rd = cmd.InOrStdin()
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		rd = f
	}
	return a.registry.FileDigest(cmd.Context(), rd, alg, opts...)
}
