package builder

import (
	"time"

	"github.com/specialistvlad/schematic/internal/nodeid"
)

// Observer receives build events. ComponentFailed fires once, for the
// component where the failure originated.
type Observer interface {
	ComponentBuilt(ref nodeid.Ref, elapsed time.Duration)
	CacheHit(ref nodeid.Ref)
	ComponentFailed(ref nodeid.Ref, err error)
}

type nopObserver struct{}

func (nopObserver) ComponentBuilt(nodeid.Ref, time.Duration) {}
func (nopObserver) CacheHit(nodeid.Ref) {}
func (nopObserver) ComponentFailed(nodeid.Ref, error) {}
