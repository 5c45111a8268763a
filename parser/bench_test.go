package parser

import "testing"

var benchSource = `
(define fact (lambda (n) (if (<= n 1) 1 (* n (fact (- n 1))))))
(define squares (map (lambda (x) (* x x)) (range 0 100)))
(reduce (lambda (a b) (+ a b)) 0 squares) ; sum of squares
`

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Parse(benchSource); err != nil {
			b.Fatal(err)
		}
	}
}
