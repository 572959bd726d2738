// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// prngdump emits values from one of the deterministic generators to stdout,
// for eyeballing sequences and feeding external statistical test suites.
package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/decred/prng"
	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"
)

var log = slog.Disabled

type config struct {
	Engine string `short:"e" long:"engine" description:"generator to run (one of: xorshift32, xorshift64, xorshift128p, xoshiro256ss, splitmix64, pcg32, randu, minstd, ranf, chacha, elite, mt19937, collatzweyl64, lfsr16)"`
	Seed   uint64 `short:"s" long:"seed" description:"seed value; truncated to the generator's seed width"`
	Count  uint64 `short:"n" long:"count" description:"number of values (bytes with -f hex) to emit"`
	Format string `short:"f" long:"format" description:"output format (one of: uint, float, hex)"`
	Debug  bool   `short:"d" long:"debug" description:"log generator details to stderr"`
}

// newSource constructs the named generator from the seed.
func newSource(name string, seed uint64) (prng.Source, error) {
	switch name {
	case "xorshift32":
		return prng.NewXorShift32(uint32(seed)), nil
	case "xorshift64":
		return prng.NewXorShift64(seed), nil
	case "xorshift128p":
		// Split the single seed into the two state words.
		return prng.NewXorShift128Plus(seed, seed>>32|seed<<32), nil
	case "xoshiro256ss":
		return prng.NewXoshiro256StarStarSeed(seed), nil
	case "splitmix64":
		return prng.NewSplitMix64(seed), nil
	case "pcg32":
		return prng.NewPCG32(seed, 0), nil
	case "randu":
		return prng.NewRANDU(uint32(seed)), nil
	case "minstd":
		return prng.NewMinStd(uint32(seed)), nil
	case "ranf":
		return prng.NewRANF(seed), nil
	case "chacha":
		return prng.NewChaCha(seed), nil
	case "elite":
		return prng.NewEliteLFG(uint32(seed)), nil
	case "mt19937":
		return prng.NewMT19937(uint32(seed)), nil
	case "collatzweyl64":
		return prng.NewCollatzWeyl64(seed), nil
	case "lfsr16":
		return prng.NewLFSR16(uint16(seed)), nil
	}
	return nil, fmt.Errorf("unknown engine %q", name)
}

// dump writes cfg.Count values from the source to w in the configured
// format.
func dump(cfg *config, src prng.Source, w io.Writer) error {
	switch cfg.Format {
	case "uint":
		for range cfg.Count {
			if _, err := fmt.Fprintln(w, src.Next()); err != nil {
				return err
			}
		}

	case "float":
		for range cfg.Count {
			if _, err := fmt.Fprintln(w, prng.Float64(src)); err != nil {
				return err
			}
		}

	case "hex":
		enc := hex.NewEncoder(w)
		_, err := io.CopyN(enc, prng.NewReader(src), int64(cfg.Count))
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}

	default:
		return fmt.Errorf("unknown format %q", cfg.Format)
	}
	return nil
}

func main() {
	cfg := config{
		Engine: "xoshiro256ss",
		Seed:   1,
		Count:  16,
		Format: "uint",
	}
	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if cfg.Debug {
		backend := slog.NewBackend(os.Stderr)
		log = backend.Logger("PDMP")
		log.SetLevel(slog.LevelDebug)
	}

	src, err := newSource(cfg.Engine, cfg.Seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Debugf("engine %s seeded with %d, native width %d bits", cfg.Engine,
		cfg.Seed, src.Bits())

	w := bufio.NewWriter(os.Stdout)
	if err := dump(&cfg, src, w); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Debugf("emitted %d values", cfg.Count)
}
