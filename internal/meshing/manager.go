package meshing

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"torusvox/internal/profiling"
	"torusvox/internal/world"
)

// ChunkKey identifies a meshed chunk by its (unbounded) chunk coordinates.
type ChunkKey struct {
	X, Z int
}

// EvictionPolicy decides which chunk meshes to drop after a load pass.
// RetainAll is the baseline behavior: meshes live for the process lifetime
// and memory grows as the player roams. DistanceEviction is the bounded
// alternative for hosts that care.
type EvictionPolicy interface {
	Evict(meshes map[ChunkKey]*ChunkMesh, center ChunkKey) int
}

// RetainAll never evicts.
type RetainAll struct{}

func (RetainAll) Evict(map[ChunkKey]*ChunkMesh, ChunkKey) int { return 0 }

// DistanceEviction drops meshes beyond a Chebyshev radius (in chunks) from
// the player's chunk.
type DistanceEviction struct {
	Radius int
}

func (p DistanceEviction) Evict(meshes map[ChunkKey]*ChunkMesh, center ChunkKey) int {
	removed := 0
	for key := range meshes {
		dx := key.X - center.X
		if dx < 0 {
			dx = -dx
		}
		dz := key.Z - center.Z
		if dz < 0 {
			dz = -dz
		}
		if dx > p.Radius || dz > p.Radius {
			delete(meshes, key)
			removed++
		}
	}
	return removed
}

// Manager tracks which chunks have been meshed and meshes the ones missing
// around the player. It owns the generated meshes. Single-threaded by
// design: the simulation tick is the only caller.
type Manager struct {
	hm     *world.HeightMap
	mesher *Mesher
	meshes map[ChunkKey]*ChunkMesh
	policy EvictionPolicy
}

// NewManager creates a chunk manager over the given heightmap and mesher.
func NewManager(hm *world.HeightMap, mesher *Mesher) *Manager {
	return &Manager{
		hm:     hm,
		mesher: mesher,
		meshes: make(map[ChunkKey]*ChunkMesh),
		policy: RetainAll{},
	}
}

// SetEvictionPolicy replaces the retention policy.
func (m *Manager) SetEvictionPolicy(p EvictionPolicy) {
	m.policy = p
}

// centerChunk computes the chunk containing a world position.
func centerChunk(pos mgl32.Vec3) ChunkKey {
	return ChunkKey{
		X: world.FloorDiv(int(math.Floor(float64(pos.X()))), world.ChunkSize),
		Z: world.FloorDiv(int(math.Floor(float64(pos.Z()))), world.ChunkSize),
	}
}

// EnsureLoaded meshes every chunk within the Chebyshev radius of the
// player's chunk that has not been meshed yet, then applies the eviction
// policy. Idempotent: present keys are skipped, so repeated calls from the
// same neighborhood do no redundant work. Returns the number of newly
// meshed chunks.
func (m *Manager) EnsureLoaded(pos mgl32.Vec3, radius int) int {
	defer profiling.Track("meshing.EnsureLoaded")()

	center := centerChunk(pos)
	built := 0
	for dz := -radius; dz <= radius; dz++ {
		for dx := -radius; dx <= radius; dx++ {
			key := ChunkKey{X: center.X + dx, Z: center.Z + dz}
			if _, ok := m.meshes[key]; ok {
				continue
			}
			m.meshes[key] = m.mesher.Mesh(m.hm, key.X, key.Z)
			built++
		}
	}

	m.policy.Evict(m.meshes, center)
	return built
}

// Has reports whether the chunk has been meshed.
func (m *Manager) Has(key ChunkKey) bool {
	_, ok := m.meshes[key]
	return ok
}

// Get returns the mesh for a chunk, or nil if absent (or meshed empty).
func (m *Manager) Get(key ChunkKey) *ChunkMesh {
	return m.meshes[key]
}

// Len returns the number of tracked chunk keys.
func (m *Manager) Len() int {
	return len(m.meshes)
}

// ForEach visits every meshed chunk. Empty meshes are skipped.
func (m *Manager) ForEach(fn func(ChunkKey, *ChunkMesh)) {
	for key, mesh := range m.meshes {
		if mesh == nil {
			continue
		}
		fn(key, mesh)
	}
}
