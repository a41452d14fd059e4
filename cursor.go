package depot

import (
	"iter"
)

var _ iCursor = &Cursor{}

func newCursor(query QueryNode, world World) *Cursor {
	return &Cursor{
		query: query,
		world: world,
	}
}

// Next advances to the next matching entity. Matches are gathered when
// iteration starts, so entities created mid-walk are picked up next pass.
func (c *Cursor) Next() bool {
	if !c.initialized {
		c.initialize()
	}
	if c.position < len(c.matched) {
		c.current = c.matched[c.position]
		c.position++
		return true
	}
	c.Reset()
	return false
}

func (c *Cursor) Entities() iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		c.initialize()
		defer c.Reset()

		for c.position < len(c.matched) {
			c.current = c.matched[c.position]
			c.position++
			if !yield(c.current) {
				return
			}
		}
	}
}

func (c *Cursor) initialize() {
	if c.initialized {
		return
	}
	c.matched = make([]EntityID, 0)

	// Find all matching entities
	sto := c.world.base()
	for i, signature := range sto.signatures {
		if c.query.Evaluate(signature, c.world) {
			c.matched = append(c.matched, EntityID(i))
		}
	}
	c.position = 0
	c.initialized = true
}

func (c *Cursor) Reset() {
	c.position = 0
	c.current = 0
	c.matched = nil
	c.initialized = false
}

// Entity returns the entity the cursor currently points at
func (c *Cursor) Entity() EntityID {
	return c.current
}

func (c *Cursor) TotalMatched() int {
	if !c.initialized {
		c.initialize()
	}
	return len(c.matched)
}
