// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package query_test

import (
	"fmt"
	"log"

	"github.com/creachadair/nosr"
	"github.com/creachadair/nosr/query"
)

func mustParse(s string) nosr.Node {
	root, err := nosr.Document(s)
	if err != nil {
		log.Fatalf("Document: %v", err)
	}
	return root
}

func Example_small() {
	root := mustParse(`[{a: 1, b: 2}, {c: {d: true}, e: false}]`)
	v, err := query.EvalOne(root, query.Path(1, "c", "d"))
	if err != nil {
		log.Fatalf("Eval: %v", err)
	}
	fmt.Println(v.Raw())
	// Output:
	// true
}

func Example_medium() {
	root := mustParse(`
{
  plaintiff: "Inigo Montoya"
  complaint: {
     defendant: you
     action: killed
     target: "Individual 1"
  }
  requestedRelief: [die, "pay punitive damages", "pay attorney fees"]
  relatedPersons: {
    "Individual 1": {id: father, rel: plaintiff}
  }
}`)

	name, err := query.EvalOne(root, query.Path("plaintiff"))
	if err != nil {
		log.Fatalf("Eval: %v", err)
	}
	act, err := query.Eval(root, query.Alt{
		query.Path("complaint", "victim"),
		query.Path("relatedPersons", query.Glob(), "id"),
	})
	if err != nil {
		log.Fatalf("Eval: %v", err)
	}
	req, err := query.EvalOne(root, query.MustParsePath("$.requestedRelief[0]"))
	if err != nil {
		log.Fatalf("Eval: %v", err)
	}
	who, _ := name.Text()
	fmt.Printf("Hello, my name is %s.\n", who)
	fmt.Printf("You killed my %s.\n", act[0].Raw())
	fmt.Printf("Prepare to %s.\n", req.Raw())
	// Output:
	// Hello, my name is Inigo Montoya.
	// You killed my father.
	// Prepare to die.
}
