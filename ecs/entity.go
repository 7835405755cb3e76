package ecs

// EntityId packs the archetype ID into the upper 32 bits and the spawn index
// within that archetype into the lower 32 bits.
type EntityId uint64

// NewEntityId creates an EntityId from an archetype ID and spawn index
func NewEntityId(archetypeId uint32, index uint32) EntityId {
	return EntityId(uint64(archetypeId)<<32 | uint64(index))
}

// ArchetypeId extracts the archetype ID from the entity ID
func (e EntityId) ArchetypeId() uint32 {
	return uint32(e >> 32)
}

// Index extracts the spawn index from the entity ID
func (e EntityId) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}
