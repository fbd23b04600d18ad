package util

// Options collects the resolved configuration for one `latc` invocation,
// merged from command-line flags, an optional latc.yaml project config, and
// built-in defaults (flag > config file > default — see internal/config).
// Unlike the teacher's util.Options, argument parsing itself lives in
// cmd/latc's cobra commands; nothing in this package touches os.Args.
type Options struct {
	Src         string // Path to the .lat source file; empty reads stdin.
	Out         string // Path to the output .ll file; empty writes stdout.
	RuntimeBC   string // Path to lib/runtime.bc, for the out-of-scope llvm-link step.
	LLVMAsPath  string // llvm-as binary, for the out-of-scope assemble step.
	LLVMLinkPath string // llvm-link binary, for the out-of-scope link step.
	Target      string // Path to an optional JSON target descriptor (internal/targetdesc).
	Verbose     bool   // Print stage-timing diagnostics to stderr.
	TokenStream bool   // Print the lexed token stream and exit, instead of compiling.
}

const appVersion = "latc 0.1"
