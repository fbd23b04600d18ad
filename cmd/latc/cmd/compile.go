package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"latc/internal/config"
	"latc/internal/targetdesc"
	"latc/src/compiler"
	"latc/src/util"
)

var (
	outPath      string
	configPath   string
	targetPath   string
	verboseFlag  bool
	tokenStream  bool
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile a Latte source file to LLVM IR",
	Long: `compile reads a .lat source file (or stdin, if no file is given),
type-checks and optimizes it, and emits textual LLVM IR.

Examples:
  latc compile hello.lat
  latc compile hello.lat -o hello.ll
  latc compile hello.lat --token-stream`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompile,
}

func addCompileFlags(c *cobra.Command) {
	c.Flags().StringVarP(&outPath, "out", "o", "", "output .ll file (default: stdout)")
	c.Flags().StringVar(&configPath, "config", "", "path to latc.yaml (default: ./latc.yaml if present)")
	c.Flags().StringVar(&targetPath, "target", "", "path to a JSON target descriptor")
	c.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "print stage-timing diagnostics to stderr")
	c.Flags().BoolVar(&tokenStream, "token-stream", false, "print the token stream and exit, instead of compiling")
}

func init() {
	addCompileFlags(compileCmd)
}

func runCompile(c *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	target, err := targetdesc.Load(targetPath)
	if err != nil {
		return err
	}

	opt := util.Options{
		Out:          outPath,
		RuntimeBC:    cfg.RuntimeBC,
		LLVMAsPath:   cfg.LLVMAsPath,
		LLVMLinkPath: cfg.LLVMLinkPath,
		Target:       targetPath,
		Verbose:      verboseFlag,
		TokenStream:  tokenStream,
	}
	if len(args) == 1 {
		opt.Src = args[0]
	}

	log := util.NewWriter(nil)
	start := time.Now()

	src, err := util.ReadSource(opt)
	if err != nil {
		return err
	}
	if opt.Verbose {
		log.Write("read %d bytes from %q (target: %d-bit pointers, %d-bit int)\n",
			len(src), opt.Src, target.PointerBits, target.IntBits)
	}

	if opt.TokenStream {
		out, err := compiler.TokenStream(src)
		if err != nil {
			return err
		}
		return util.WriteOutput(opt, out)
	}

	ir, err := compiler.Compile(src, target)
	if err != nil {
		return err
	}
	if opt.Verbose {
		log.Write("compiled in %s\n", time.Since(start))
	}
	if err := log.Flush(); err != nil {
		return fmt.Errorf("flushing diagnostics: %w", err)
	}
	return util.WriteOutput(opt, ir)
}
