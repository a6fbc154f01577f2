package generate

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"

	"github.com/cwbudde/algo-wavetable/wavetable"
)

// formulaEnv binds the per-sample variables and the trigonometric/arithmetic
// function whitelist available to formula expressions. expr's own builtins
// (abs, min, max, floor, ceil, round) extend the set.
func formulaEnv() map[string]any {
	return map[string]any{
		"x": 0.0,
		"t": 0.0,
		"i": 0,
		"n": float64(wavetable.FrameSize),

		"pi": math.Pi,
		"e":  math.E,

		"sin":  math.Sin,
		"cos":  math.Cos,
		"tan":  math.Tan,
		"asin": math.Asin,
		"acos": math.Acos,
		"atan": math.Atan,
		"sinh": math.Sinh,
		"cosh": math.Cosh,
		"tanh": math.Tanh,
		"exp":  math.Exp,
		"log":  math.Log,
		"sqrt": math.Sqrt,
		"pow":  math.Pow,
		"sign": func(v float64) float64 {
			switch {
			case v > 0:
				return 1
			case v < 0:
				return -1
			}
			return 0
		},
	}
}

// FromFormula evaluates src once per sample index with x (phase in [0, 2pi)),
// t (normalized phase in [0, 1)), i (sample index) and n (frame size) bound.
//
// If the expression does not compile, the sine generator's output is returned
// together with the compile error so callers can surface it without losing
// the frame. Per sample, a failed evaluation or non-finite result becomes 0;
// finite results are clamped to [-1, 1]. One bad sample never poisons its
// neighbors.
func FromFormula(src string) (wavetable.Frame, error) {
	env := formulaEnv()
	program, err := expr.Compile(src, expr.Env(env))
	if err != nil {
		return Sine(), fmt.Errorf("formula %q: %w", src, err)
	}

	f := wavetable.NewFrame()
	for i := range f {
		env["i"] = i
		env["t"] = float64(i) / wavetable.FrameSize
		env["x"] = 2 * math.Pi * float64(i) / wavetable.FrameSize

		out, err := expr.Run(program, env)
		if err != nil {
			f[i] = 0
			continue
		}
		v, ok := toFloat(out)
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
			f[i] = 0
			continue
		}
		f[i] = wavetable.Clamp(v, -1, 1)
	}
	return f, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
