package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/vaultpass/pwgen-go/internal/crypto"
)

// Config holds the parsed CLI flags.
type Config struct {
	Length  int
	Count   int
	Symbols string
	Seed    uint64
	Hash    bool
}

// ParseFlags registers and parses command-line flags on fs.
func ParseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	defaults := crypto.DefaultRequest()
	cfg := Config{}

	fs.IntVar(&cfg.Length, "length", defaults.Length, "Password length (5-1000)")
	fs.IntVar(&cfg.Length, "l", defaults.Length, "Password length (shorthand)")

	fs.IntVar(&cfg.Count, "count", defaults.Count, "Number of passwords (1-1000)")
	fs.IntVar(&cfg.Count, "c", defaults.Count, "Number of passwords (shorthand)")

	fs.StringVar(&cfg.Symbols, "symbols", defaults.Symbols, "Symbol characters to include; repeats weight the draw")
	fs.StringVar(&cfg.Symbols, "s", defaults.Symbols, "Symbol characters (shorthand)")

	fs.Uint64Var(&cfg.Seed, "seed", 0, "Seed for reproducible output; 0 uses crypto/rand")
	fs.BoolVar(&cfg.Hash, "hash", false, "Print an argon2id hash after each password")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run generates a batch and writes one password per line to w.
func Run(cfg Config, w io.Writer) error {
	if err := crypto.CheckCeiling(cfg.Length, cfg.Count); err != nil {
		return err
	}

	var src crypto.Source = crypto.CryptoSource{}
	if cfg.Seed != 0 {
		src = crypto.NewSeededSource(cfg.Seed)
	}

	passwords, err := crypto.Generate(crypto.GenerationRequest{
		Length:  cfg.Length,
		Count:   cfg.Count,
		Symbols: cfg.Symbols,
	}, src)
	if err != nil {
		return err
	}

	var hashes []string
	if cfg.Hash {
		hashes, err = crypto.NewHasher(crypto.DefaultHashParams()).HashAll(passwords)
		if err != nil {
			return fmt.Errorf("hashing passwords: %w", err)
		}
	}

	for i, pw := range passwords {
		if hashes != nil {
			fmt.Fprintf(w, "%s\t%s\n", pw, hashes[i])
			continue
		}
		fmt.Fprintln(w, pw)
	}
	return nil
}

func main() {
	cfg, err := ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if err := Run(cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
