package relex

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Node is a lexical item of the parse graph.
type Node struct {
	token string
	name  string
}

// Token returns the identifier the node was created with.
func (n *Node) Token() string {
	return n.token
}

// Name returns the display name of the node (the word itself).
// A nil node has an empty name.
func (n *Node) Name() string {
	if n == nil {
		return ""
	}
	return n.name
}

func (n *Node) String() string {
	return n.Name()
}

// Relation is a named binary relation between two nodes.
type Relation struct {
	Name   string
	Source *Node
	Target *Node
}

// Feature is a unary relation: an attribute attached to a single node
// (e.g. "DEFINITE-FLAG" or "tense").
type Feature struct {
	Node *Node
	Attr string
}

// Visitor receives the relations of a sentence during Foreach.
//
// Returning true from either callback stops the walk.
type Visitor interface {
	BinaryRelation(relation string, src, tgt *Node) bool
	UnaryRelation(node *Node, attr string) bool
}

// VisitorFuncs adapts plain functions to the Visitor interface.
// A nil callback ignores the corresponding relations.
type VisitorFuncs struct {
	Binary func(relation string, src, tgt *Node) bool
	Unary  func(node *Node, attr string) bool
}

func (v VisitorFuncs) BinaryRelation(relation string, src, tgt *Node) bool {
	if v.Binary == nil {
		return false
	}
	return v.Binary(relation, src, tgt)
}

func (v VisitorFuncs) UnaryRelation(node *Node, attr string) bool {
	if v.Unary == nil {
		return false
	}
	return v.Unary(node, attr)
}

// Sentence is the relation graph of one parsed sentence.
type Sentence struct {
	// Text is the original sentence, kept for reporting only.
	Text string

	nodes     map[string]*Node
	order     []*Node
	relations []Relation
	features  []Feature
}

// NewSentence creates an empty relation graph.
func NewSentence(text string) *Sentence {
	return &Sentence{
		Text:  text,
		nodes: make(map[string]*Node),
	}
}

// Node returns the node for token, creating it on first use.
func (s *Sentence) Node(token string) *Node {
	if n, ok := s.nodes[token]; ok {
		return n
	}
	n := &Node{token: token, name: displayName(token)}
	s.nodes[token] = n
	s.order = append(s.order, n)
	return n
}

// Nodes returns the nodes in creation order.
func (s *Sentence) Nodes() []*Node {
	return append([]*Node(nil), s.order...)
}

// Relate adds the binary relation name(src, tgt) and returns s for chaining.
func (s *Sentence) Relate(name, src, tgt string) *Sentence {
	s.relations = append(s.relations, Relation{
		Name:   name,
		Source: s.Node(src),
		Target: s.Node(tgt),
	})
	return s
}

// Mark attaches the unary attribute attr to token and returns s for chaining.
func (s *Sentence) Mark(token, attr string) *Sentence {
	s.features = append(s.features, Feature{Node: s.Node(token), Attr: attr})
	return s
}

// AddTerm adds a parsed term: two arguments become a relation, one argument
// becomes a feature.
func (s *Sentence) AddTerm(t Term) error {
	switch len(t.Args) {
	case 1:
		s.Mark(t.Args[0], t.Name)
	case 2:
		s.Relate(t.Name, t.Args[0], t.Args[1])
	default:
		return fmt.Errorf("%w: %s has %d arguments, want 1 or 2", ErrMalformedTerm, t, len(t.Args))
	}
	return nil
}

// Relations returns the binary relations in insertion order.
func (s *Sentence) Relations() []Relation {
	return append([]Relation(nil), s.relations...)
}

// Features returns the unary relations in insertion order.
func (s *Sentence) Features() []Feature {
	return append([]Feature(nil), s.features...)
}

// Foreach walks every relation of the sentence: binary relations first, then
// unary ones. It reports whether the visitor stopped the walk early.
func (s *Sentence) Foreach(v Visitor) bool {
	for _, r := range s.relations {
		if v.BinaryRelation(r.Name, r.Source, r.Target) {
			return true
		}
	}
	for _, f := range s.features {
		if v.UnaryRelation(f.Node, f.Attr) {
			return true
		}
	}
	return false
}

// displayName strips the "#n" disambiguation suffix and NFC normalizes.
func displayName(token string) string {
	if i := strings.LastIndexByte(token, '#'); i > 0 {
		token = token[:i]
	}
	return norm.NFC.String(token)
}
