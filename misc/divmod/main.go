package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	compat "github.com/shabbyrobe/go-compat"
)

// This is a small driver for poking at UDivMod64 from the shell while
// debugging a target that routes its 64-bit divides through this package.
// Results are checked against Go's own operators. A zero divisor prints the
// trap instead of crashing so its message can be compared with the runtime's.

const usage = `Unsigned 64-bit divide/modulo

Usage: <numer> <denom>

Operands accept Go integer literal syntax (0x.., 0b.., 0o.., 1_000).`

type result struct {
	Numer, Denom uint64
	Quo, Rem     uint64
	Mod          uint64
	Trap         interface{}
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 3 {
		fmt.Println(usage)
		return fmt.Errorf("missing args")
	}

	numer, err := strconv.ParseUint(os.Args[1], 0, 64)
	if err != nil {
		return err
	}

	denom, err := strconv.ParseUint(os.Args[2], 0, 64)
	if err != nil {
		return err
	}

	res := divide(numer, denom)
	spew.Dump(res)

	if res.Trap != nil {
		fmt.Printf("%d / %d trapped: %v\n", numer, denom, res.Trap)
		if _, ok := res.Trap.(compat.DivideError); !ok {
			return fmt.Errorf("unexpected trap value %T", res.Trap)
		}
		return nil
	}

	fmt.Printf("%d / %d == %d rem %d\n", numer, denom, res.Quo, res.Rem)

	if res.Quo != numer/denom || res.Rem != numer%denom || res.Mod != res.Rem {
		return fmt.Errorf("mismatch: builtin gives %d rem %d", numer/denom, numer%denom)
	}
	return nil
}

func divide(numer, denom uint64) (res result) {
	res.Numer, res.Denom = numer, denom

	defer func() {
		if r := recover(); r != nil {
			res.Trap = r
		}
	}()

	res.Quo = compat.UDivMod64(numer, denom, &res.Rem)
	res.Mod = compat.UMod64(numer, denom)
	return res
}
