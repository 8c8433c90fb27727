package flocking

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/reef/components"
)

// Field owns the ambient fish entities and steps their steering each tick.
// Fish live in an ECS world; the field is their only writer.
type Field struct {
	world  *ecs.World
	mapper *ecs.Map3[components.Position, components.Velocity, components.Fish]
	filter *ecs.Filter3[components.Position, components.Velocity, components.Fish]

	grid    *spatialGrid
	current *CurrentField
	params  Params
	rng     *rand.Rand

	nextID uint32
	count  int

	// Reused per-tick scratch
	positions  []r3.Vec
	velocities []r3.Vec
	species    []components.Species
	posPtrs    []*components.Position
	velPtrs    []*components.Velocity
	fishPtrs   []*components.Fish
	queryBuf   []int
	boidBuf    []Boid
	sharks     []r3.Vec
}

// NewField creates an empty flocking field.
func NewField(params Params, queryCell float64, seed int64) *Field {
	world := ecs.NewWorld()
	return &Field{
		world:   world,
		mapper:  ecs.NewMap3[components.Position, components.Velocity, components.Fish](world),
		filter:  ecs.NewFilter3[components.Position, components.Velocity, components.Fish](world),
		grid:    newSpatialGrid(queryCell),
		current: NewCurrentField(seed, params.CurrentScale),
		params:  params,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Spawn creates n fish of the given species at random positions inside the
// bounds radius.
func (f *Field) Spawn(species components.Species, n int) {
	traits := species.Traits()
	for i := 0; i < n; i++ {
		f.nextID++

		pos := components.Position{Vec: f.randInBounds()}
		vel := components.Velocity{Vec: r3.Scale(traits.MaxSpeed*0.3, f.randUnit())}
		fish := components.Fish{
			ID:      f.nextID,
			Species: species,
			Phase:   f.rng.Float64() * 6.28,
		}
		f.mapper.NewEntity(&pos, &vel, &fish)
		f.count++
	}
}

// Remove destroys the fish with the given id, e.g. on a collection event.
// Returns false when no such fish exists.
func (f *Field) Remove(id uint32) bool {
	var target ecs.Entity
	found := false

	query := f.filter.Query()
	for query.Next() {
		// Must consume the entire query before structural changes
		_, _, fish := query.Get()
		if fish.ID == id {
			target = query.Entity()
			found = true
		}
	}

	if found {
		f.mapper.Remove(target)
		f.count--
	}
	return found
}

// Count returns the number of live fish.
func (f *Field) Count() int {
	return f.count
}

// Update advances all fish by dt seconds. viewpoint is the tracked camera
// position fish treat as a predator; sharks are a second avoidance source
// for the other species.
func (f *Field) Update(dt, elapsed float64, viewpoint r3.Vec) {
	f.snapshot()
	n := len(f.positions)
	if n == 0 {
		return
	}

	f.grid.clear()
	for i := 0; i < n; i++ {
		f.grid.insert(i, f.positions[i])
	}

	queryRadius := f.params.CohesionDistance
	if f.params.AlignmentDistance > queryRadius {
		queryRadius = f.params.AlignmentDistance
	}
	if f.params.SeparationDistance > queryRadius {
		queryRadius = f.params.SeparationDistance
	}

	for i := 0; i < n; i++ {
		pos := f.positions[i]
		vel := f.velocities[i]
		traits := f.species[i].Traits()

		f.queryBuf = f.grid.queryRadiusInto(f.queryBuf[:0], pos, queryRadius, i, f.positions)
		f.boidBuf = f.boidBuf[:0]
		for _, j := range f.queryBuf {
			f.boidBuf = append(f.boidBuf, Boid{Pos: f.positions[j], Vel: f.velocities[j]})
		}

		vel = r3.Add(vel, Steer(pos, f.boidBuf, f.params))
		vel = r3.Add(vel, r3.Scale(dt*f.params.CurrentStrength, f.current.At(pos, elapsed)))
		vel = r3.Add(vel, Avoid(pos, viewpoint, f.params))

		if f.species[i] != components.SpeciesShark {
			for _, shark := range f.sharks {
				vel = r3.Add(vel, Avoid(pos, shark, f.params))
			}
		}

		vel = ClampSpeed(vel, traits.MaxSpeed)
		pos = r3.Add(pos, r3.Scale(dt, vel))
		pos, vel, _ = Wrap(pos, vel, f.params.BoundsRadius)

		f.posPtrs[i].Vec = pos
		f.velPtrs[i].Vec = vel
		f.fishPtrs[i].Phase += r3.Norm(vel) * dt * 2
	}
}

// Each visits every fish for presentation: position, velocity, species and
// animation phase.
func (f *Field) Each(fn func(id uint32, pos, vel r3.Vec, sp components.Species, phase float64)) {
	query := f.filter.Query()
	for query.Next() {
		pos, vel, fish := query.Get()
		fn(fish.ID, pos.Vec, vel.Vec, fish.Species, fish.Phase)
	}
}

// Nearest returns the id of the fish closest to pos within maxDist.
func (f *Field) Nearest(pos r3.Vec, maxDist float64) (uint32, bool) {
	best := maxDist * maxDist
	var bestID uint32
	found := false

	query := f.filter.Query()
	for query.Next() {
		p, _, fish := query.Get()
		d := r3.Sub(p.Vec, pos)
		distSq := d.X*d.X + d.Y*d.Y + d.Z*d.Z
		if distSq < best {
			best = distSq
			bestID = fish.ID
			found = true
		}
	}
	return bestID, found
}

// snapshot captures all fish into the scratch slices so steering reads a
// consistent pre-tick view while writing through the component pointers.
func (f *Field) snapshot() {
	f.positions = f.positions[:0]
	f.velocities = f.velocities[:0]
	f.species = f.species[:0]
	f.posPtrs = f.posPtrs[:0]
	f.velPtrs = f.velPtrs[:0]
	f.fishPtrs = f.fishPtrs[:0]
	f.sharks = f.sharks[:0]

	query := f.filter.Query()
	for query.Next() {
		pos, vel, fish := query.Get()
		f.positions = append(f.positions, pos.Vec)
		f.velocities = append(f.velocities, vel.Vec)
		f.species = append(f.species, fish.Species)
		f.posPtrs = append(f.posPtrs, pos)
		f.velPtrs = append(f.velPtrs, vel)
		f.fishPtrs = append(f.fishPtrs, fish)
		if fish.Species == components.SpeciesShark {
			f.sharks = append(f.sharks, pos.Vec)
		}
	}
}

func (f *Field) randInBounds() r3.Vec {
	r := f.params.BoundsRadius * 0.8
	return r3.Scale(r*f.rng.Float64(), f.randUnit())
}

func (f *Field) randUnit() r3.Vec {
	for {
		v := r3.Vec{
			X: f.rng.Float64()*2 - 1,
			Y: f.rng.Float64()*2 - 1,
			Z: f.rng.Float64()*2 - 1,
		}
		n := r3.Norm(v)
		if n > 0.01 && n <= 1 {
			return r3.Scale(1/n, v)
		}
	}
}
