package fold_test

import (
	"fmt"

	"github.com/abondrn/nussinov/fold"
)

func ExampleNussinov() {
	result := fold.Nussinov("GGGAAAUCCC", fold.CanonicalRules, 3)
	fmt.Println(result.Sequence)
	fmt.Println(result.DotBracket())
	fmt.Println(result.Score)
	// Output:
	// GGGAAAUCCC
	// (((....)))
	// 3
}

func ExamplePredict() {
	result := fold.Predict("AUGC")
	fmt.Println(result.Pairs)
	// Output: [{0 1} {2 3}]
}

func ExampleDotParenthesis() {
	fmt.Println(fold.DotParenthesis(6, []fold.Pair{{0, 2}, {3, 4}}))
	// Output: (.)().
}
