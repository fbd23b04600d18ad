// Package compiler wires the compiler's stages together: parse, check,
// optimize, re-check returns, and generate IR. cmd/latc's cobra commands
// are the only caller; it is a separate package from src/codegen etc. so
// that each stage stays independently testable.
package compiler

import (
	"fmt"

	"latc/internal/targetdesc"
	"latc/src/codegen"
	"latc/src/frontend"
	"latc/src/optimize"
	"latc/src/sema"
)

// Compile runs the full pipeline over src and returns the emitted LLVM IR
// text, per spec.md §5's stage order: parse, type-check (which also
// resolves the class hierarchy), optimize, check-returns (on the optimized
// tree, since constant folding can make an unreachable-looking branch
// provably returning), then generate against target (SPEC_FULL.md §A).
func Compile(src string, target targetdesc.Descriptor) (string, error) {
	prog, err := frontend.Parse(src)
	if err != nil {
		return "", err
	}
	res, err := sema.Check(prog)
	if err != nil {
		return "", fmt.Errorf("type error: %w", err)
	}
	optimized := optimize.Program(prog)
	if err := sema.CheckReturns(optimized); err != nil {
		return "", fmt.Errorf("return error: %w", err)
	}
	ir, err := codegen.Generate(res, optimized, target)
	if err != nil {
		return "", fmt.Errorf("code generation error: %w", err)
	}
	return ir, nil
}

// TokenStream lexes src and returns a human-readable rendering of its
// token stream, for the `--token-stream` CLI debug path.
func TokenStream(src string) (string, error) {
	return frontend.DescribeTokens(src)
}
