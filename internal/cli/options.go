// internal/cli/options.go
package cli

import (
	"github.com/spf13/pflag"
	"github.com/zeebo/errs"

	"github.com/lologar1/big-collatz/core/bignum"
	"github.com/lologar1/big-collatz/core/collatz"
	"github.com/lologar1/big-collatz/internal/config"
)

// ErrUsage marks option values the engine cannot run with.
var ErrUsage = errs.Class("usage")

// Options holds all CLI flags and the positional input path.
type Options struct {
	InputPath string // "" selects the synthetic stress value

	CapacityWords int
	HeadroomWords int
	PrintRate     uint64

	ConfigPath string
	Quiet      bool
	Debug      bool
}

// Register declares every flag on fs with its default.
func Register(fs *pflag.FlagSet, o *Options) {
	fs.IntVar(&o.CapacityWords, "capacity-words", bignum.DefaultCapacityWords,
		"64-bit words available to the starting value")
	fs.IntVar(&o.HeadroomWords, "headroom-words", bignum.DefaultHeadroomWords,
		"extra words absorbing growth between compactions")
	fs.Uint64Var(&o.PrintRate, "print-rate", collatz.DefaultPrintRate,
		"minimum steps between progress lines (0 disables)")
	fs.StringVar(&o.ConfigPath, "config", "", "YAML config file")
	fs.BoolVar(&o.Quiet, "quiet", false, "suppress banners and progress lines")
	fs.BoolVar(&o.Debug, "debug", false, "debug diagnostics on stderr")
}

// ApplyConfig fills in config-file values for every flag the user left
// untouched; changed reports whether a flag was set explicitly.
func (o *Options) ApplyConfig(f config.File, changed func(string) bool) {
	if f.CapacityWords != nil && !changed("capacity-words") {
		o.CapacityWords = *f.CapacityWords
	}
	if f.HeadroomWords != nil && !changed("headroom-words") {
		o.HeadroomWords = *f.HeadroomWords
	}
	if f.PrintRate != nil && !changed("print-rate") {
		o.PrintRate = *f.PrintRate
	}
	if f.Quiet != nil && !changed("quiet") {
		o.Quiet = *f.Quiet
	}
}

// Validate rejects option values the engine cannot honor.
func (o *Options) Validate() error {
	if o.CapacityWords <= 0 {
		return ErrUsage.New("--capacity-words must be positive, got %d", o.CapacityWords)
	}
	if o.HeadroomWords < 2 {
		return ErrUsage.New("--headroom-words must be at least 2, got %d", o.HeadroomWords)
	}
	return nil
}
