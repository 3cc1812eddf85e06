package converter

import (
	"fmt"
	"strings"

	"github.com/roach88/question2atomese/internal/formula"
)

// bindLink declares vars as ConceptNode-typed variables around body:
//
//	(BindLink
//	  (VariableList
//	    (TypedVariableLink (VariableNode "$B") (TypeNode "ConceptNode"))
//	  )
//	<body>)
func bindLink(vars []string, body string) string {
	var b strings.Builder
	b.WriteString("(BindLink\n")
	b.WriteString("  (VariableList\n")
	for _, v := range vars {
		fmt.Fprintf(&b, "    (TypedVariableLink (VariableNode \"$%s\") (TypeNode \"ConceptNode\"))\n", v)
	}
	b.WriteString("  )\n")
	b.WriteString(body)
	b.WriteString(")\n")
	return b.String()
}

func conjBC(fragment string) string {
	return "(conj-bc " + fragment + ")\n"
}

func cogExecute(query string) string {
	return "(cog-execute! " + query + ")"
}

// andLink renders clauses as an indented AndLink, one clause per line.
func andLink(clauses ...string) string {
	var b strings.Builder
	b.WriteString("  (AndLink\n")
	for _, c := range clauses {
		b.WriteString("    ")
		b.WriteString(c)
		b.WriteString("\n")
	}
	b.WriteString("  )\n")
	return b.String()
}

func variable(name string) string {
	return fmt.Sprintf("(VariableNode \"$%s\")", name)
}

func concept(name string) string {
	return fmt.Sprintf("(ConceptNode \"%s\")", name)
}

func inheritance(child, parent string) string {
	return "(InheritanceLink " + child + " " + parent + ")"
}

// classify asks the neural network whether region satisfies attribute.
func classify(region, attribute string) string {
	return fmt.Sprintf("(EvaluationLink (GroundedPredicateNode \"%s\") (ListLink %s %s) )",
		formula.NeuralNetworkPredicate, region, attribute)
}
