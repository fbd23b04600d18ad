package context

// StringPool interns every distinct string literal encountered anywhere in
// the program and assigns each a stable constant index, per spec.md §4.5.
// Each distinct literal is emitted once as a private LLVM constant.
type StringPool struct {
	order []string
	index map[string]int
}

// NewStringPool returns an empty pool.
func NewStringPool() *StringPool {
	return &StringPool{index: map[string]int{}}
}

// Intern returns the stable index of s, assigning a new one on first sight.
func (p *StringPool) Intern(s string) int {
	if id, ok := p.index[s]; ok {
		return id
	}
	id := len(p.order)
	p.order = append(p.order, s)
	p.index[s] = id
	return id
}

// Entries returns the interned literals ordered by index.
func (p *StringPool) Entries() []string { return p.order }

// InternConst interns s and returns the name of the ready-to-use
// %string_t constant backing it, for use directly as a StringLit's value.
func (p *StringPool) InternConst(s string) string {
	return ObjConstName(p.Intern(s))
}

// ConstName returns the LLVM global name of the raw hex-escaped byte
// buffer backing string literal index id.
func ConstName(id int) string {
	return "@.str." + itoa(id)
}

// ObjConstName returns the LLVM global name of the %string_t wrapper
// constant (ref_count 0, is_const true) backing string literal index id.
// A StringLit expression evaluates directly to this global's address: no
// runtime allocation or retain is needed for a literal.
func ObjConstName(id int) string {
	return "@.strobj." + itoa(id)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// HexEscape renders s as the hex-escaped, NUL-terminated byte sequence
// spec.md §4.5 requires for private string constants, along with the total
// byte count (including the trailing NUL).
func HexEscape(s string) (escaped string, size int) {
	b := []byte(s)
	out := make([]byte, 0, len(b)*4)
	const hex = "0123456789ABCDEF"
	for _, c := range b {
		out = append(out, '\\', hex[c>>4], hex[c&0xf])
	}
	out = append(out, '\\', '0', '0') // trailing NUL
	return string(out), len(b) + 1
}
