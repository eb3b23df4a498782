package main

import (
	"flag"
	"log"

	"github.com/davecgh/go-spew/spew"
	"github.com/oakmund/cyclic"
	"github.com/pkg/profile"
)

var (
	enableProfiling bool
	enableDump      bool
)

func check(err error) {
	if err != nil {
		log.Panic(err)
	}
}

func main() {
	flag.BoolVar(&enableProfiling, "profile", false, "write a memory profile to the working directory")
	flag.BoolVar(&enableDump, "dump", false, "dump ring internals after the walkthrough")
	flag.Parse()

	if enableProfiling {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	a := cyclic.Filled(4, "11")
	b := cyclic.Of(3, 2, 1, 4)
	c := cyclic.New[float32](2)

	log.Printf("a: len %d, cap %d", a.Len(), a.Cap())
	log.Printf("b: len %d, cap %d", b.Len(), b.Cap())
	log.Printf("c: len %d, cap %d", c.Len(), c.Cap())

	vals := make([]int, 0, b.Len())
	for it := b.Begin(); it.Less(b.End()); it.Next() {
		vals = append(vals, it.Get())
	}
	log.Printf("b by iterator: %v", vals)

	cyclic.Sort(b.Begin(), b.End())
	log.Printf("b sorted: %v", b.Values())

	copied := cyclic.Of(12, 21, 11, 22)
	b.AssignRange(copied.Begin(), copied.End())
	log.Printf("b assigned from ring: %v", b.Values())

	b.Assign([]int{1, 2, 3})
	log.Printf("b assigned partial: %v", b.Values())

	log.Printf("b max len: %d", b.MaxLen())

	x := cyclic.GrowableOf("x1", "x2", "x3")
	check(x.InsertAt(1, "mid"))
	log.Printf("x after insert: %v (cap %d)", x.Values(), x.Cap())

	it, err := x.Erase(x.Begin().Plus(1))
	check(err)
	log.Printf("x after erase: %v, cursor now at %q", x.Values(), it.Get())

	if enableDump {
		spew.Dump(a, b, c, x)
	}
}
