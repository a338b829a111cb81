package codeheap

import "zimvm/value"

// BlockVersion is the compiled record for one source block: where its
// code starts and ends in the heap. Multi-versioning (recompiling a
// block under different assumptions) is reserved for future work — one
// block maps to exactly one version for the life of the process.
type BlockVersion struct {
	StartPtr int
	EndPtr   int
	Source   *value.Object
}

// VersionTable maps block objects to their compiled BlockVersion,
// created on first reference.
type VersionTable struct {
	versions map[*value.Object]*BlockVersion
}

// NewVersionTable returns an empty table.
func NewVersionTable() *VersionTable {
	return &VersionTable{versions: make(map[*value.Object]*BlockVersion)}
}

// Get returns the existing version for block, if any.
func (t *VersionTable) Get(block *value.Object) (*BlockVersion, bool) {
	v, ok := t.versions[block]
	return v, ok
}

// Set records block's compiled version.
func (t *VersionTable) Set(block *value.Object, v *BlockVersion) {
	t.versions[block] = v
}
