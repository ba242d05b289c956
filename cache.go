package truecell

// DefaultCacheSize is the number of blocks each render worker remembers.
const DefaultCacheSize = 4096

// blockCache maps blocks already seen by one worker to the cell selected
// for them. Lookups are exact, so a hit returns what a fresh search would.
// When the cache fills up it is emptied and starts over.
type blockCache struct {
	limit   int
	entries map[Block]Cell
}

func newBlockCache(limit int) *blockCache {
	return &blockCache{
		limit:   limit,
		entries: make(map[Block]Cell, min(limit, 256)),
	}
}

// get retrieves the cell cached for b.
func (c *blockCache) get(b *Block) (Cell, bool) {
	cell, ok := c.entries[*b]
	return cell, ok
}

// add remembers the cell chosen for b.
func (c *blockCache) add(b *Block, cell Cell) {
	if len(c.entries) >= c.limit {
		clear(c.entries)
	}
	c.entries[*b] = cell
}

// cell returns the selection for the scratch block, consulting the cache
// first when one is configured. hit reports whether the search was skipped.
func (s *scratch) cell() (cell Cell, hit bool) {
	if s.cache == nil {
		cell, _ = s.selectCell(&s.block)
		return cell, false
	}
	if cell, ok := s.cache.get(&s.block); ok {
		return cell, true
	}
	cell, _ = s.selectCell(&s.block)
	s.cache.add(&s.block, cell)
	return cell, false
}
