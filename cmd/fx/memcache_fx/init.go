package memcache_fx

import (
	"go.uber.org/fx"
	mem "insureguide/pkg/memcache"
)

var Module = fx.Provide(provideReferenceStore)

func provideReferenceStore() mem.ReferenceStore {
	return mem.NewReferenceIDs()
}
