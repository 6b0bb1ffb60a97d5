package jvalue_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/creachadair/jvalue"
)

func ExampleParse() {
	v, rest, err := jvalue.Parse(`{"name": "gopher", "age": 13, "tags": ["a", "b"]} and more`)
	if err != nil {
		log.Fatalf("Parse: %v", err)
	}
	fmt.Println(v.JSON())
	fmt.Printf("%q\n", rest)
	// Output:
	// {"age":13,"name":"gopher","tags":["a","b"]}
	// "and more"
}

func ExampleParseComplete_error() {
	_, err := jvalue.ParseComplete(`{"a": }`)
	fmt.Println(err)

	var serr *jvalue.SyntaxError
	if errors.As(err, &serr) {
		fmt.Println(serr.Kind, serr.Location.Pos)
	}
	// Output:
	// at 1:6: unexpected '}', expected array, false, null, number, object, string or true
	// no alternative matched 6
}

func ExampleParser_SetMaxDepth() {
	var p jvalue.Parser
	p.SetMaxDepth(2)

	if _, err := p.ParseComplete(`[[1, 2], [3]]`); err != nil {
		log.Fatalf("Parse: %v", err)
	}
	_, err := p.ParseComplete(`[[[1]]]`)
	fmt.Println(errors.Is(err, jvalue.ErrDepthExceeded))
	// Output:
	// true
}

func ExampleObject_Keys() {
	obj := jvalue.MustParse(`{"zulu": 26, "alpha": 1, "mike": 13}`).(jvalue.Object)
	for _, key := range obj.Keys() {
		fmt.Println(key, obj[key])
	}
	// Output:
	// alpha 1
	// mike 13
	// zulu 26
}

func ExampleUnquote() {
	s, err := jvalue.Unquote(`"tab\there \"quoted\""`)
	if err != nil {
		log.Fatalf("Unquote: %v", err)
	}
	fmt.Println(s)
	fmt.Println(jvalue.Quote(s))
	// Output:
	// tab	here "quoted"
	// "tab\there \"quoted\""
}
