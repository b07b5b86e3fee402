/*
Package lexdawg answers "is this a word?" against a precompiled lexicon stored
as a Directed Acyclic Word Graph.

The lexicon is a flat buffer of fixed-size edge records. Nothing is unpacked
at load time: a Dawg keeps a read-only view of the buffer and decodes records
on demand while it walks the graph, so lookups never allocate and any number
of goroutines may query the same Dawg at once.

Record

Each record is a little-endian uint32:

	 31  30          24 23                                             0
	+---+--------------+-----------------------------------------------+
	| M |    letter    |                     link                      |
	+---+--------------+-----------------------------------------------+

	M       1 when further sibling records follow in this run
	letter  7-bit ASCII: 'a'..'z', or '$' meaning "a word ends here"
	link    24-bit record index of the child node (ignored for '$')

Record i occupies bytes [4i, 4i+4). The buffer length must be a multiple of 4.

Node

A node has no header of its own. It is the run of consecutive records that
starts at some index and ends at the first record with M = 0. A link is the
index at which the child's run starts. The root run starts at index 0.

	index  M letter link
	    0  1   a     26
	    1  1   b    311
	  ...
	   25  0   z   9120
	   26  1   a     71     <- children of "a"
	  ...

Lookup

To test a word, start at the root and, for every byte of the word followed by
'$', scan the current run for a record with that letter and jump to its link.
A run that ends without a match means the word is absent. A word is present
only when its final node has a '$' record, so a prefix of a longer word is not
itself reported unless it was compiled in as a word.

Loading

New wraps a buffer already in memory; Load and Read fetch a raw record image
from disk or any io.ReaderAt. Lexicons shipped as base64 text of a compressed
image are handled by the blob sub-package.
*/
package lexdawg
