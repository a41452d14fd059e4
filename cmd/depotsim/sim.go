package main

import (
	"github.com/TheBitDrifter/depot"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

type Health int

type Name string

type Stats struct {
	Entities int
	Columns  int
	Movers   int
	Alive    int
	Distance float64
}

type simulation struct {
	world    depot.World
	logger   zerolog.Logger
	position depot.AccessibleComponent[Position]
	velocity depot.AccessibleComponent[Velocity]
	health   depot.AccessibleComponent[Health]
	movers   depot.QueryNode
}

func newSimulation(logger zerolog.Logger) *simulation {
	sim := &simulation{
		world:    depot.Factory.NewWorld(),
		logger:   logger,
		position: depot.FactoryNewComponent[Position](),
		velocity: depot.FactoryNewComponent[Velocity](),
		health:   depot.FactoryNewComponent[Health](),
	}
	sim.movers = depot.Factory.NewQuery().And(sim.position, sim.velocity)
	return sim
}

// seed gives every entity a position, every ratio-th one a velocity and
// every other one health
func (s *simulation) seed(entities, ratio int) error {
	for i := 0; i < entities; i++ {
		e := s.world.CreateEntity()
		if err := s.position.AddTo(s.world, e, Position{X: float64(i)}); err != nil {
			return eris.Wrapf(err, "failed to place entity %d", e)
		}
		if i%ratio == 0 {
			if err := s.velocity.AddTo(s.world, e, Velocity{X: 1, Y: 0.5}); err != nil {
				return eris.Wrapf(err, "failed to set velocity of entity %d", e)
			}
		}
		if i%2 == 0 {
			if err := s.health.AddTo(s.world, e, Health(100)); err != nil {
				return eris.Wrapf(err, "failed to set health of entity %d", e)
			}
		}
	}
	if entities > 0 {
		if err := depot.AddComponentToEntity(s.world, 0, Name("origin")); err != nil {
			return eris.Wrap(err, "failed to name origin")
		}
	}
	s.logger.Info().
		Int("entities", s.world.EntitiesCount()).
		Int("columns", s.world.ColumnCount()).
		Msg("world seeded")
	return nil
}

// tick moves every entity with a velocity and wears down health
func (s *simulation) tick() float64 {
	var distance float64

	positions, ok := s.position.BorrowMut(s.world)
	if !ok {
		return 0
	}
	defer positions.Release()
	velocities, ok := s.velocity.Borrow(s.world)
	if !ok {
		return 0
	}
	defer velocities.Release()

	for e := range depot.Join(positions, velocities) {
		pos, _ := positions.Get(e)
		vel, _ := velocities.Get(e)
		pos.X += vel.X
		pos.Y += vel.Y
		distance += vel.X + vel.Y
	}

	s.health.Write(s.world, func(health *depot.RefMut[Health]) {
		for _, hp := range health.All() {
			if *hp > 0 {
				*hp--
			}
		}
	})
	return distance
}

func (s *simulation) run(ticks int) Stats {
	stats := Stats{}
	for i := 0; i < ticks; i++ {
		stats.Distance += s.tick()
		s.logger.Trace().Int("tick", i).Msg("tick complete")
	}

	stats.Entities = s.world.EntitiesCount()
	stats.Columns = s.world.ColumnCount()
	stats.Movers = depot.Factory.NewCursor(s.movers, s.world).TotalMatched()
	s.health.Read(s.world, func(health *depot.Ref[Health]) {
		for _, hp := range health.All() {
			if hp > 0 {
				stats.Alive++
			}
		}
	})
	return stats
}
