// Package hypernym finds shortest common ancestors in a WordNet-style noun
// hierarchy and uses them to pick the outcast of a list of nouns.
//
// The module is organised in small packages, leaves first:
//
//	digraph/       immutable dense-int DAG with a designated root
//	sca/           shortest-common-ancestor engine (multi-source BFS)
//	wordnet/       synset/hypernym parsing and the sorted noun index
//	outcast/       aggregate pairwise distances to find the outcast
//	cmd/hypernym/  command line front end
//
// Quick ASCII example:
//
//	        entity
//	       /      \
//	   animal    plant
//	   /    \
//	 dog    cat
//
// sca(dog, cat) = animal with length 2; sca(dog, plant) = entity with length 3.
package hypernym
