// Package builder compiles a word list into the lexdawg record format.
//
// Words are added in strictly increasing order. Suffixes are merged as they
// are added, using the incremental minimisation described at
// http://stevehanov.ca/blog/?id=115, so the output is a minimal DAWG.
package builder

import (
	"encoding/binary"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/milden6/lexdawg"
)

var (
	// ErrOutOfOrder is returned by Add when a word does not sort after the previous one.
	ErrOutOfOrder = errors.New("builder: words not in strictly increasing order")

	// ErrInvalidLetter is returned by Add for a word with a byte outside a-z.
	ErrInvalidLetter = errors.New("builder: word contains a letter outside a-z")

	// ErrNoWords is returned by Bytes when nothing was added.
	ErrNoWords = errors.New("builder: no words added")

	// ErrTooLarge is returned by Bytes when a record index would not fit in a link.
	ErrTooLarge = errors.New("builder: graph exceeds the 24-bit link range")

	// ErrFinished is returned by Add after Bytes or Finish.
	ErrFinished = errors.New("builder: already finished")
)

const rootNode = 0

type edgeStart struct {
	node int
	ch   byte
}

type edge struct {
	ch    byte
	child int
}

type uncheckedNode struct {
	parent int
	ch     byte
	child  int
}

// Builder accumulates words and produces a record buffer.
type Builder struct {
	lastWord       string
	numAdded       int
	nextID         int
	uncheckedNodes []uncheckedNode
	minimizedNodes map[string]int
	children       map[int][]edge // outgoing edges per node, in letter order
	edges          map[edgeStart]int
	final          map[int]bool
	finished       bool
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{
		nextID:         rootNode + 1,
		minimizedNodes: make(map[string]int),
		children:       make(map[int][]edge),
		edges:          make(map[edgeStart]int),
		final:          make(map[int]bool),
	}
}

// Compile builds a record buffer from words, which may be unsorted and
// contain duplicates.
func Compile(words []string) ([]byte, error) {
	sorted := slices.Clone(words)
	slices.Sort(sorted)

	b := New()
	for _, w := range slices.Compact(sorted) {
		if err := b.Add(w); err != nil {
			return nil, err
		}
	}
	return b.Bytes()
}

// NumAdded returns the number of words added.
func (b *Builder) NumAdded() int { return b.numAdded }

// Add adds word. The empty word is accepted and makes the root final.
func (b *Builder) Add(word string) error {
	if b.finished {
		return ErrFinished
	}
	if b.numAdded > 0 && word <= b.lastWord {
		return fmt.Errorf("%w: %q after %q", ErrOutOfOrder, word, b.lastWord)
	}
	for i := 0; i < len(word); i++ {
		if c := word[i]; c < 'a' || c > 'z' {
			return fmt.Errorf("%w: %q at offset %d of %q", ErrInvalidLetter, c, i, word)
		}
	}

	// common prefix with the previous word
	prefix := 0
	for prefix < len(word) && prefix < len(b.lastWord) && word[prefix] == b.lastWord[prefix] {
		prefix++
	}

	b.minimize(prefix)

	node := rootNode
	if n := len(b.uncheckedNodes); n > 0 {
		node = b.uncheckedNodes[n-1].child
	}

	for i := prefix; i < len(word); i++ {
		next := b.nextID
		b.nextID++
		b.addChild(node, word[i], next)
		b.uncheckedNodes = append(b.uncheckedNodes, uncheckedNode{node, word[i], next})
		node = next
	}

	b.final[node] = true
	b.lastWord = word
	b.numAdded++
	return nil
}

// Finish minimises the remaining suffix. No words can be added afterwards.
func (b *Builder) Finish() {
	if b.finished {
		return
	}
	b.minimize(0)
	b.finished = true
	b.minimizedNodes = nil
	b.uncheckedNodes = nil
}

// Bytes finishes the builder and encodes the graph. Nodes are laid out
// breadth first from the root, which therefore starts at record 0.
func (b *Builder) Bytes() ([]byte, error) {
	if b.numAdded == 0 {
		return nil, ErrNoWords
	}
	b.Finish()

	// assign addresses
	addr := map[int]int{rootNode: 0}
	order := []int{rootNode}
	next := b.runLen(rootNode)
	for q := 0; q < len(order); q++ {
		for _, e := range b.children[order[q]] {
			if _, ok := addr[e.child]; ok {
				continue
			}
			addr[e.child] = next
			order = append(order, e.child)
			next += b.runLen(e.child)
		}
	}
	if next-1 > int(lexdawg.MaxLink) {
		return nil, fmt.Errorf("%w: %d records", ErrTooLarge, next)
	}

	buf := make([]byte, 0, next*lexdawg.RecordSize)
	for _, node := range order {
		run := b.children[node]
		last := len(run) - 1
		if b.final[node] {
			buf = appendRecord(buf, lexdawg.Sentinel, 0, last >= 0)
		}
		for i, e := range run {
			buf = appendRecord(buf, e.ch, uint32(addr[e.child]), i < last)
		}
	}
	return buf, nil
}

func (b *Builder) runLen(node int) int {
	n := len(b.children[node])
	if b.final[node] {
		n++
	}
	return n
}

func appendRecord(buf []byte, letter byte, link uint32, more bool) []byte {
	v := uint32(letter)<<24 | link&lexdawg.LinkMask
	if more {
		v |= lexdawg.MoreFlag
	}
	return binary.LittleEndian.AppendUint32(buf, v)
}

func (b *Builder) minimize(downTo int) {
	// proceed from the leaf up to a certain point
	for i := len(b.uncheckedNodes) - 1; i >= downTo; i-- {
		u := b.uncheckedNodes[i]
		name := b.nameOf(u.child)
		if node, ok := b.minimizedNodes[name]; ok {
			b.replaceChild(u.parent, u.ch, node)
		} else {
			b.minimizedNodes[name] = u.child
		}
	}
	b.uncheckedNodes = b.uncheckedNodes[:downTo]
}

// nameOf is a signature of node: two nodes with equal names accept the same
// set of suffixes.
func (b *Builder) nameOf(node int) string {
	var sb strings.Builder
	if b.final[node] {
		sb.WriteByte('!')
	}
	for _, e := range b.children[node] {
		sb.WriteByte('_')
		sb.WriteByte(e.ch)
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(e.child))
	}
	return sb.String()
}

func (b *Builder) addChild(parent int, ch byte, child int) {
	b.children[parent] = append(b.children[parent], edge{ch, child})
	b.edges[edgeStart{parent, ch}] = child
}

func (b *Builder) replaceChild(parent int, ch byte, child int) {
	start := edgeStart{parent, ch}
	old := b.edges[start]

	// the old child was a duplicate; drop its edges
	for _, e := range b.children[old] {
		delete(b.edges, edgeStart{old, e.ch})
	}
	delete(b.children, old)
	delete(b.final, old)

	run := b.children[parent]
	for i := range run {
		if run[i].ch == ch {
			run[i].child = child
			break
		}
	}
	b.edges[start] = child
}
