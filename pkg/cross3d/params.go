package cross3d

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"
)

// Params names the two constants spec.md §9 flags as candidates for a
// named parameter rather than a buried literal: the minimum allowed
// inclination off horizontal, and the squared-distance threshold below
// which a candidate bend point is suppressed. The spec is explicit that
// an implementer "should expose it as a named parameter but not change
// its default" — so DefaultParams is the only constructor most callers
// need; LoadParams exists for the rare case a deployment wants to
// retune them via the same Lisp dialect the rest of the pack's DSL
// tooling uses.
type Params struct {
	// InclinationThresholdDeg is the minimum inclination, in degrees
	// off horizontal, every stored segment must have (invariant
	// INCLINE). Default 35.0 — do not change.
	InclinationThresholdDeg float64
	// BendSuppressSq is the squared-micrometer threshold below which
	// Adjust Edge End skips inserting a bend point (§4.3 step 4).
	// Default 100 — do not change.
	BendSuppressSq int64
}

// DefaultParams returns the spec-mandated defaults.
func DefaultParams() Params {
	return Params{
		InclinationThresholdDeg: 35.0,
		BendSuppressSq:          100,
	}
}

// LoadParams evaluates a small sandboxed Lisp script of the form
//
//	(tunables "inclination-deg" 35.0 "bend-suppress-sq" 100)
//
// and returns the resulting Params, starting from DefaultParams for any
// field the script omits. An empty or whitespace-only source returns
// DefaultParams unchanged. This mirrors the retrieval pack's own Lisp
// DSL pattern: a sandboxed zygomys environment with one registered
// builtin that captures its keyword arguments into a Go struct.
func LoadParams(source string) (Params, error) {
	params := DefaultParams()
	if strings.TrimSpace(source) == "" {
		return params, nil
	}

	env := zygo.NewZlispSandbox()
	defer env.Stop()

	var captureErr error
	env.AddFunction("tunables", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		kw, positional, err := parseTunableArgs(args)
		if err != nil {
			captureErr = err
			return zygo.SexpNull, nil
		}
		if len(positional) != 0 {
			captureErr = fmt.Errorf("tunables: unexpected positional argument")
			return zygo.SexpNull, nil
		}
		if v, ok := kw["inclination-deg"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				captureErr = fmt.Errorf("tunables \"inclination-deg\": %w", err)
				return zygo.SexpNull, nil
			}
			params.InclinationThresholdDeg = f
		}
		if v, ok := kw["bend-suppress-sq"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				captureErr = fmt.Errorf("tunables \"bend-suppress-sq\": %w", err)
				return zygo.SexpNull, nil
			}
			params.BendSuppressSq = int64(f)
		}
		return zygo.SexpNull, nil
	})

	if err := env.LoadString(source); err != nil {
		return Params{}, fmt.Errorf("cross3d: parsing tunables script: %w", err)
	}
	if _, err := env.Run(); err != nil {
		return Params{}, fmt.Errorf("cross3d: evaluating tunables script: %w", err)
	}
	if captureErr != nil {
		return Params{}, captureErr
	}
	return params, nil
}

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return float64(v.Val), nil
	}
	return 0, fmt.Errorf("expected number, got %T", s)
}

// parseTunableArgs splits a zygomys argument list into "name" value
// keyword pairs (a string literal naming the field, followed by its
// value) and any other argument, treated as positional and rejected by
// the caller.
func parseTunableArgs(args []zygo.Sexp) (kw map[string]zygo.Sexp, positional []zygo.Sexp, err error) {
	kw = make(map[string]zygo.Sexp)
	for i := 0; i < len(args); i++ {
		str, ok := args[i].(*zygo.SexpStr)
		if !ok {
			positional = append(positional, args[i])
			continue
		}
		if i+1 >= len(args) {
			return nil, nil, fmt.Errorf("tunables: keyword %q missing a value", str.S)
		}
		kw[str.S] = args[i+1]
		i++
	}
	return kw, positional, nil
}
