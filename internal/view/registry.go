package view

import "fmt"

// registry allocates overlay identities for one domain of one view
// instance. The counter starts at 0 and never reuses a value, so
// identities stay unique for the lifetime of the view even across
// deletions. All view operations are serialized by the caller, so no
// locking is needed.
type registry struct {
	domain string
	next   uint64
}

func newRegistry(domain string) registry {
	return registry{domain: domain}
}

// nextID returns "{Domain}_{n}" and advances the counter.
func (r *registry) nextID() string {
	id := fmt.Sprintf("%s_%d", r.domain, r.next)
	r.next++
	return id
}
