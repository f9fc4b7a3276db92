// Profiling:
// go build ./profile/scan
// go tool pprof -http=":8000" -nodefraction=0.001 ./scan cpu.pprof

package main

import (
	"fmt"

	"github.com/pkg/profile"

	"dirpx.dev/idref/config"
	"dirpx.dev/idref/counter"
	"dirpx.dev/idref/pool"
	"dirpx.dev/idref/resolver"
)

func main() {
	rounds := 20
	entities := 2000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, entities)
	p.Stop()
}

func run(rounds, numEntities int) {
	cfg := config.DefaultConfig()
	for r := 0; r < rounds; r++ {
		pl := pool.New()
		pl.AddNamespace("main")
		ctr := counter.New(cfg, pl)
		res := resolver.New(cfg, pl, ctr)

		ids := make([]int64, 0, numEntities)
		for i := 0; i < numEntities; i++ {
			o, err := pl.Create("main", fmt.Sprintf("ob-%d", i))
			if err != nil {
				panic(err)
			}
			ids = append(ids, res.EnsureID(o))
		}
		for _, id := range ids {
			if _, ok := res.Resolve(id); !ok {
				panic("unresolved id")
			}
		}
	}
}
