package sema

import (
	"latc/src/ast"
	"latc/src/util"
)

// Result is the fully checked program handed to the optimizer and code
// generator: the resolved class hierarchy plus per-class member info and
// the global free-function signature table (builtins included).
type Result struct {
	Hierarchy *ClassHierarchy
	Classes   map[string]*ClassInfo
	Functions map[string]ast.Type // free function name -> declared type (no receiver)
	Program   *ast.Program
}

// builtins lists the runtime functions spec.md §6 says the shipped
// runtime.bc exports to user programs. They are pre-registered so a user
// definition of the same name is rejected as AlreadyDefined, matching
// SPEC_FULL.md §C.
var builtins = map[string]ast.Type{
	"printInt":    ast.Func([]ast.Type{ast.Int()}, ast.Void()),
	"printString": ast.Func([]ast.Type{ast.Str()}, ast.Void()),
	"error":       ast.Func(nil, ast.Void()),
	"readInt":     ast.Func(nil, ast.Int()),
	"readString":  ast.Func(nil, ast.Str()),
}

// scope is a lexical environment: a stack of identifier->type frames. A new
// frame is pushed on block entry and popped on exit, per spec.md §4.5's
// scope-stack contract (snapshot/restore).
type scope struct {
	frames util.Stack[map[string]ast.Type]
}

func newScope() *scope {
	s := &scope{}
	s.push()
	return s
}

func (s *scope) push() { s.frames.Push(map[string]ast.Type{}) }

func (s *scope) pop() { s.frames.Pop() }

func (s *scope) declare(name string, t ast.Type) bool {
	top, _ := s.frames.Peek()
	if _, exists := top[name]; exists {
		return false
	}
	top[name] = t
	return true
}

// lookup searches frames top-down (innermost scope first).
func (s *scope) lookup(name string) (ast.Type, bool) {
	frames := s.frames.Slice()
	for i := len(frames) - 1; i >= 0; i-- {
		if t, ok := frames[i][name]; ok {
			return t, true
		}
	}
	return ast.Type{}, false
}

// checker carries the state threaded through one Check call: the resolved
// class registry, the function currently being checked (for return-type
// validation), and the enclosing class (for implicit-self resolution).
type checker struct {
	classes   map[string]*ClassInfo
	hierarchy *ClassHierarchy
	functions map[string]ast.Type
	retType   ast.Type
	selfClass string // "" outside a method body
}

// Check runs the type checker of spec.md §4.2 over prog and returns the
// resolved Result on success.
func Check(prog *ast.Program) (*Result, error) {
	h, err := CheckHierarchy(prog)
	if err != nil {
		return nil, err
	}
	classes, err := buildClassInfo(h)
	if err != nil {
		return nil, err
	}

	funcs := make(map[string]ast.Type, len(prog.Functions)+len(builtins))
	for name, t := range builtins {
		funcs[name] = t
	}
	var mainFn *ast.Function
	for _, f := range prog.Functions {
		if _, dup := funcs[f.Name]; dup {
			return nil, newTypeError(AlreadyDefined, "function %q is already defined", f.Name)
		}
		funcs[f.Name] = f.Declared()
		if f.Name == "main" {
			mainFn = f
		}
	}
	if mainFn == nil {
		return nil, newTypeError(NoMain, "program does not define a function named main")
	}
	if len(mainFn.Params) != 0 || mainFn.Ret.Kind != ast.KInt {
		return nil, newTypeError(InvalidMainType, "main must have type () -> int, got %s", mainFn.Declared())
	}

	c := &checker{classes: classes, hierarchy: h, functions: funcs}

	for _, class := range prog.Classes {
		if err := c.checkClass(class); err != nil {
			return nil, err.(*TypeError).Wrap("class " + class.Name)
		}
	}
	for _, f := range prog.Functions {
		if err := c.checkFunction(f); err != nil {
			return nil, err.(*TypeError).Wrap("function " + f.Name)
		}
	}

	return &Result{Hierarchy: h, Classes: classes, Functions: funcs, Program: prog}, nil
}

func (c *checker) checkClass(class *ast.Class) error {
	for _, m := range class.Methods {
		c.selfClass = class.Name
		if err := c.checkFunction(m); err != nil {
			c.selfClass = ""
			return err.(*TypeError).Wrap("method " + class.Name + "." + m.Name)
		}
		c.selfClass = ""
	}
	return nil
}

func (c *checker) checkFunction(f *ast.Function) error {
	prevRet, prevSelf := c.retType, c.selfClass
	c.retType = f.Ret
	defer func() { c.retType, c.selfClass = prevRet, prevSelf }()

	env := newScope()
	if f.Receiver != "" {
		env.declare("self", ast.Object(f.Receiver))
	}
	for _, p := range f.Params {
		if !declarable(p.Type) {
			return newTypeError(NonDeclarableType, "parameter %q has non-declarable type %s", p.Name, p.Type)
		}
		if !env.declare(p.Name, p.Type) {
			return newTypeError(AlreadyDefined, "parameter %q is already defined", p.Name)
		}
	}
	for _, s := range f.Body {
		if err := c.checkStmt(s, env); err != nil {
			return err
		}
	}
	return nil
}
