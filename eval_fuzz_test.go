package clicalc_test

import (
	"math"
	"testing"

	"github.com/mikkoteras/clicalc"
)

func FuzzEval(f *testing.F) {
	f.Add("x^y^z")
	f.Add("1/x - ln(y)")
	f.Add("min(x, y, z, 1e300)")
	f.Fuzz(func(t *testing.T, s string) {
		p, err := clicalc.Parse(s)
		if err != nil {
			return
		}
		if _, ok := p.Command(); ok {
			return
		}
		env := clicalc.Env{'x': 2, 'y': -3, 'z': 0.5}
		v, err := p.Eval(env)
		if err != nil {
			return
		}
		// A successful evaluation must never produce a non-finite value.
		if math.IsInf(v, 0) || math.IsNaN(v) {
			t.Errorf("%q evaluated to %g", s, v)
		}
	})
}
