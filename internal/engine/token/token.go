// Package token defines the tokenizer hook exposed by the editing
// engine. The engine retokenizes after every mutation; the shipped
// implementation is trivial and tags the whole buffer as plain text.
// Richer tokenizers plug in behind the Tokenizer interface.
package token

import "github.com/quilledit/quill/internal/engine/buffer"

// Kind classifies a token.
type Kind uint8

const (
	// KindText is unclassified plain text.
	KindText Kind = iota

	// KindComment through KindPunctuation exist for pluggable
	// tokenizers; the built-in tokenizer never emits them.
	KindComment
	KindString
	KindNumber
	KindKeyword
	KindIdentifier
	KindOperator
	KindPunctuation
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindComment:
		return "comment"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindKeyword:
		return "keyword"
	case KindIdentifier:
		return "identifier"
	case KindOperator:
		return "operator"
	case KindPunctuation:
		return "punctuation"
	default:
		return "unknown"
	}
}

// Token is a classified span of buffer text.
type Token struct {
	Offset buffer.ByteOffset
	Kind   Kind
	Text   string
}

// Tokenizer produces a token stream covering the given source.
type Tokenizer interface {
	Tokenize(src string) []Token
}

// Plain is the trivial tokenizer: one token spanning the whole
// buffer, tagged as text.
type Plain struct{}

// Tokenize returns a single token covering src.
func (Plain) Tokenize(src string) []Token {
	return []Token{{Offset: 0, Kind: KindText, Text: src}}
}
