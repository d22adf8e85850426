// Package huffmantext builds Huffman codes for the symbols of a text and uses
// them to encode the text into a string of binary digits, and to decode such
// a string back into text.
//
// The code is derived from a Huffman tree: the two least frequent subtrees
// are merged repeatedly until a single root remains.  Branching left is
// coded as 0 and branching right as 1.  Codes are exchanged as sequences of
// Bit values (or "0"/"1" strings); they are never packed into bytes.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffmantext
