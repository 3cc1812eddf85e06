// Package corpus loads pre-parsed questions.
//
// A corpus file lists questions together with the dependency relations a
// parser produced for them. Relations use the flat term grammar of package
// relex: two arguments make a binary relation, one argument a unary
// feature. Tokens may carry a "#n" suffix to tell apart two nodes with the
// same word.
//
// YAML files:
//
//	questions:
//	  - id: "q-0001"
//	    image_id: "COCO_val2014_000000000042"
//	    text: "What color is the car?"
//	    relations:
//	      - "_det(color, what)"
//	      - "_obj(be, car)"
//	      - "_subj(be, color)"
//	      - "DEFINITE-FLAG(car)"
//
// CUE files carry the same shape under a top-level questions list and get
// file:line:column positions in their errors.
package corpus
