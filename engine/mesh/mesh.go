package mesh

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/glade/engine/logger"
	"github.com/Carmen-Shannon/glade/engine/renderer"

	"go.uber.org/zap"
)

// MeshKind identifies a primitive mesh shape.
type MeshKind int

const (
	// MeshKindPlane is a unit quad in the XZ plane spanning [-1, 1] on both axes
	// with its normal along +Y.
	MeshKindPlane MeshKind = iota
	// MeshKindCylinder is a capped cylinder of radius 1 and height 1 with its
	// base on the XZ plane.
	MeshKindCylinder
	// MeshKindCone is a cone of base radius 1 and height 1 with its base on the
	// XZ plane and apex at (0, 1, 0).
	MeshKindCone
	// MeshKindSphere is a unit sphere centered at the origin.
	MeshKindSphere
)

// String returns the lowercase name of the mesh kind.
func (k MeshKind) String() string {
	switch k {
	case MeshKindPlane:
		return "plane"
	case MeshKindCylinder:
		return "cylinder"
	case MeshKindCone:
		return "cone"
	case MeshKindSphere:
		return "sphere"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

var (
	// ErrUnknownKind is returned for a mesh kind the provider cannot generate.
	ErrUnknownKind = errors.New("unknown mesh kind")
	// ErrNotLoaded is returned when drawing a mesh kind that was never loaded.
	ErrNotLoaded = errors.New("mesh kind not loaded")
)

// Provider generates primitive meshes and owns their GPU buffers. Each kind is
// generated and uploaded at most once regardless of how many times it is loaded
// or how many scene objects draw it.
type Provider interface {
	// Load generates and uploads the mesh for the given kind. Loading a kind
	// that is already resident is a no-op.
	//
	// Parameters:
	//   - kind: the mesh kind to load
	//
	// Returns:
	//   - error: ErrUnknownKind or an upload error
	Load(kind MeshKind) error

	// LoadAll loads every given kind, stopping at the first failure.
	//
	// Parameters:
	//   - kinds: the mesh kinds to load
	//
	// Returns:
	//   - error: the first load error encountered
	LoadAll(kinds ...MeshKind) error

	// Draw issues an indexed draw of the given kind's buffers.
	//
	// Parameters:
	//   - kind: the mesh kind to draw
	//
	// Returns:
	//   - error: ErrNotLoaded if the kind was never loaded
	Draw(kind MeshKind) error

	// Loaded reports whether the given kind is resident on the GPU.
	//
	// Parameters:
	//   - kind: the mesh kind to check
	//
	// Returns:
	//   - bool: true when the kind's buffers exist
	Loaded(kind MeshKind) bool

	// DestroyAll releases every mesh buffer held by the provider. Safe to call
	// more than once.
	DestroyAll()
}

type provider struct {
	ctx        renderer.RenderContext
	radialSegs int
	ringSegs   int
	meshes     map[MeshKind]renderer.MeshBuffers
}

var _ Provider = &provider{}

func (p *provider) Load(kind MeshKind) error {
	if _, ok := p.meshes[kind]; ok {
		return nil
	}

	var vertices []float32
	var indices []uint32
	switch kind {
	case MeshKindPlane:
		vertices, indices = planeMesh()
	case MeshKindCylinder:
		vertices, indices = cylinderMesh(p.radialSegs)
	case MeshKindCone:
		vertices, indices = coneMesh(p.radialSegs)
	case MeshKindSphere:
		vertices, indices = sphereMesh(p.radialSegs, p.ringSegs)
	default:
		return fmt.Errorf("cannot load mesh kind %d: %w", int(kind), ErrUnknownKind)
	}

	buffers, err := p.ctx.CreateMeshBuffers(vertices, indices)
	if err != nil {
		return fmt.Errorf("failed to upload %s mesh: %w", kind, err)
	}

	p.meshes[kind] = buffers
	logger.Log.Debug("mesh loaded",
		zap.Stringer("kind", kind),
		zap.Int32("indices", buffers.IndexCount))
	return nil
}

func (p *provider) LoadAll(kinds ...MeshKind) error {
	for _, kind := range kinds {
		if err := p.Load(kind); err != nil {
			return err
		}
	}
	return nil
}

func (p *provider) Draw(kind MeshKind) error {
	buffers, ok := p.meshes[kind]
	if !ok {
		return fmt.Errorf("cannot draw %s mesh: %w", kind, ErrNotLoaded)
	}
	p.ctx.DrawMesh(buffers)
	return nil
}

func (p *provider) Loaded(kind MeshKind) bool {
	_, ok := p.meshes[kind]
	return ok
}

func (p *provider) DestroyAll() {
	for kind, buffers := range p.meshes {
		p.ctx.DeleteMeshBuffers(buffers)
		delete(p.meshes, kind)
	}
}
