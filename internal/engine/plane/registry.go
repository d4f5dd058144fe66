package plane

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/logger"
)

// Registry errors.
var (
	ErrInactive     = errors.New("plane is inactive")
	ErrUnknownPlane = errors.New("unknown plane")
)

// ID identifies a spawned plane.
type ID uint32

// Event is a request from the host.
type Event interface {
	event()
}

// SpawnRequested asks for a new plane to be built from Spec.
type SpawnRequested struct {
	Spec Spec
}

// SpecChanged replaces the spec of plane ID and asks for a rebuild.
type SpecChanged struct {
	ID   ID
	Spec Spec
}

func (SpawnRequested) event() {}
func (SpecChanged) event()    {}

// Output is what the host receives after a build: the mesh buffers to
// swap in and the world transform.
type Output struct {
	ID     ID
	Result *Result
}

// Registry tracks spawned planes. It does not drive itself; the host calls
// Handle whenever it has an event. Builds run outside the registry lock, so
// the host must not rebuild one plane from two goroutines at once.
type Registry struct {
	asm *Assembler

	mu     sync.Mutex
	nextID ID
	specs  map[ID]Spec
}

// NewRegistry creates an empty registry building with asm.
func NewRegistry(asm *Assembler) *Registry {
	return &Registry{
		asm:    asm,
		nextID: 1,
		specs:  make(map[ID]Spec),
	}
}

// Handle processes one event.
func (r *Registry) Handle(ev Event) (*Output, error) {
	switch ev := ev.(type) {
	case SpawnRequested:
		return r.Spawn(ev.Spec)
	case SpecChanged:
		return r.Update(ev.ID, ev.Spec)
	default:
		return nil, fmt.Errorf("unhandled event %T", ev)
	}
}

// Spawn builds spec and registers it under a new ID. Inactive specs are
// not spawned and return ErrInactive.
func (r *Registry) Spawn(spec Spec) (*Output, error) {
	if !spec.Active {
		logger.Debug("skipping inactive plane", zap.String("plane", spec.Name))
		return nil, fmt.Errorf("spawning %q: %w", spec.Name, ErrInactive)
	}

	result, err := r.asm.Build(spec)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.specs[id] = spec
	r.mu.Unlock()

	logger.Info("plane spawned",
		zap.Uint32("id", uint32(id)),
		zap.String("plane", spec.Name),
		zap.Int("vertices", result.Mesh.VertexCount()))

	return &Output{ID: id, Result: result}, nil
}

// Update replaces the spec of plane id and rebuilds it. The active flag
// does not prevent rebuilding an already spawned plane.
func (r *Registry) Update(id ID, spec Spec) (*Output, error) {
	if _, ok := r.Spec(id); !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlane, id)
	}

	result, err := r.asm.Build(spec)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	_, ok := r.specs[id]
	if ok {
		r.specs[id] = spec
	}
	r.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %d removed during rebuild", ErrUnknownPlane, id)
	}

	logger.Debug("plane rebuilt", zap.Uint32("id", uint32(id)), zap.String("plane", spec.Name))

	return &Output{ID: id, Result: result}, nil
}

// SpawnDocument spawns every active plane of doc in order. Inactive planes
// are skipped; the first build error stops the walk.
func (r *Registry) SpawnDocument(doc *Document) ([]Output, error) {
	var out []Output
	for _, spec := range doc.Planes {
		o, err := r.Spawn(spec)
		if errors.Is(err, ErrInactive) {
			continue
		}
		if err != nil {
			return out, err
		}
		out = append(out, *o)
	}
	return out, nil
}

// Remove forgets plane id.
func (r *Registry) Remove(id ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.specs[id]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownPlane, id)
	}
	delete(r.specs, id)
	return nil
}

// Spec returns the current spec of plane id.
func (r *Registry) Spec(id ID) (Spec, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.specs[id]
	return s, ok
}

// IDs returns the spawned plane IDs in ascending order.
func (r *Registry) IDs() []ID {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]ID, 0, len(r.specs))
	for id := range r.specs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Document returns the specs of every spawned plane, ordered by ID.
func (r *Registry) Document() *Document {
	ids := r.IDs()

	r.mu.Lock()
	defer r.mu.Unlock()

	doc := &Document{Planes: make([]Spec, 0, len(ids))}
	for _, id := range ids {
		if s, ok := r.specs[id]; ok {
			doc.Planes = append(doc.Planes, s)
		}
	}
	return doc
}
