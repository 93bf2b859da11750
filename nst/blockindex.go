package nst

import (
	"github.com/Sapana-Micro-Software/merry-go-round-splay-trees/checksum"
	"github.com/Sapana-Micro-Software/merry-go-round-splay-trees/snapshot"
)

// BlockIndex specializes a Tree keyed by rolling checksum and valued by
// block metadata, as consulted by a delta-synchronization algorithm
// locating content-defined blocks.
type BlockIndex struct {
	tree *Tree[checksum.Rolling, checksum.BlockMetadata]
}

// NewBlockIndex constructs an empty BlockIndex.
func NewBlockIndex(cfg Config) *BlockIndex {
	return &BlockIndex{
		tree: New[checksum.Rolling, checksum.BlockMetadata](checksum.Less, cfg),
	}
}

// InsertBlock is insert(bm.Checksum, bm).
func (b *BlockIndex) InsertBlock(bm checksum.BlockMetadata) bool {
	return b.tree.Insert(bm.Checksum, bm)
}

// FindBlock is search(cs); the returned metadata carries the strong
// hash for a subsequent strong-match confirmation.
func (b *BlockIndex) FindBlock(cs checksum.Rolling) *checksum.BlockMetadata {
	return b.tree.Search(cs)
}

// FindMatchingBlocks returns the metadata entries at checksum cs whose
// strong hash equals h. Because the underlying container is a unique-key
// map, the result holds at most one element.
func (b *BlockIndex) FindMatchingBlocks(cs checksum.Rolling, h uint32) []checksum.BlockMetadata {
	bm := b.tree.Search(cs)
	if bm == nil || bm.StrongHash != h {
		return nil
	}
	return []checksum.BlockMetadata{*bm}
}

// Size, Close, and Snapshot delegate to the underlying Tree.
func (b *BlockIndex) Size() int                   { return b.tree.Size() }
func (b *BlockIndex) Close()                      { b.tree.Close() }
func (b *BlockIndex) Snapshot() snapshot.Snapshot { return b.tree.Snapshot() }
