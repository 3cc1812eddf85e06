// Package harness runs conformance scenarios against the conversion engine.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: what_color_is_the_car
//	description: "determiner question maps to the other-type converter"
//	run_id: "scenario-run-0001"
//	forms: [bind, bc, execute]
//	strict: false
//	corpus: ../corpus/questions.yaml
//	questions:
//	  - id: q1
//	    text: "What color is the car?"
//	    relations: ["_det(color, what)", "_obj(be, car)", "_subj(be, color)"]
//	expect:
//	  - question: q1
//	    signature: "_det(A, B);_obj(C, D);_subj(C, A)"
//	    converter: what-other-det-obj-subj
//	    question_type: other
//	    matched: true
//	    complete: true
//	    fillers: {attribute: color, object: car}
//	    contains: ['(ConceptNode "car")']
//
// Questions come from the corpus file (resolved against the scenario's
// directory), from the inline list, or both. Every expectation field is
// optional; only the fields given are checked.
//
// # Deterministic Output
//
// Runs use a fixed run id (run_id, or testutil.DefaultRunID) so the report
// rendered by Snapshot is byte-identical across runs and can be compared
// against golden files with RunWithGolden.
package harness
