package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	num "github.com/shabbyrobe/go-widenum"
)

// This prints the hex rendering of two values and of each bitwise operation
// applied to them. It's mostly useful for eyeballing the fixed-width
// behaviour of the shifts and the zero-extension of mismatched widths.

const usage = `Wide bitwise demo

Usage: widedemo [-shift <bits>] [-dump] [<hex1> <hex2>]`

const (
	sampleHex1 = "51bf608414ad5726a3c1bec098f77b1b54ffb2787f8d528a74c1d7fde6470ea4"
	sampleHex2 = "403db8ad88a3932a0b7e8189aed9eeffb8121dfac05c3512fdb396dd73f6331c"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var shift uint
	var dump bool

	fs := flag.NewFlagSet("widedemo", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	fs.UintVar(&shift, "shift", 64, "Number of bits to shift by")
	fs.BoolVar(&dump, "dump", false, "Dump the limbs of every result")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	hex1, hex2 := sampleHex1, sampleHex2
	if args := fs.Args(); len(args) == 2 {
		hex1, hex2 = args[0], args[1]
	} else if len(args) != 0 {
		fs.Usage()
		return fmt.Errorf("expected 0 or 2 args, found %d", len(args))
	}

	num1, err := num.WideFromHex(hex1)
	if err != nil {
		return err
	}

	num2, err := num.WideFromHex(hex2)
	if err != nil {
		return err
	}

	for _, r := range []struct {
		name string
		v    num.Wide
	}{
		{"num1", num1},
		{"num2", num2},
		{"INV(num1)", num1.Not()},
		{"XOR(num1, num2)", num1.Xor(num2)},
		{"OR(num1, num2)", num1.Or(num2)},
		{"AND(num1, num2)", num1.And(num2)},
		{fmt.Sprintf("ShiftR(num1, %d)", shift), num1.Rsh(shift)},
		{fmt.Sprintf("ShiftL(num1, %d)", shift), num1.Lsh(shift)},
	} {
		fmt.Printf("%s: %s\n", r.name, r.v.Hex())
		if dump {
			spew.Dump(r.v.Limbs())
		}
	}

	return nil
}
