// Package wordnet loads a synset catalogue and a hypernym list into a
// digraph.Digraph, indexes every noun for binary-search lookup, and answers
// noun-level distance and shortest-common-ancestor queries through sca.Engine.
//
// Input formats
//
//	synsets:   id,label[,label...]     labels may also be space-separated
//	hypernyms: id,parent[,parent...]   a line with no parent marks the root
//
// With WithGlossColumn the synset catalogue is read in the three-column
// layout id,"label label ...",gloss instead: only the second field holds
// labels and everything after it is kept as the gloss.
//
// Synset ids must cover [0, V) exactly once; exactly one hypernym line may
// have no parent. Acyclicity is not checked.
//
// A *WordNet is immutable after Parse/Load and safe for concurrent use.
package wordnet
