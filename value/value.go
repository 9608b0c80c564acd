// Package value defines the runtime value representation shared by
// the compiler's constant pool and the virtual machine's stack.
package value

import "fmt"

// Kind tags a Value's active variant. Value is a closed sum type:
// every Kind has exactly one corresponding accessor, and adding a
// Kind means updating every switch that matches on it.
type Kind int

const (
	KindUnit Kind = iota
	KindBool
	KindInt
	KindReal
	KindStr
	KindNative
)

// Native is a host-provided callable exposed to the VM as a
// first-class value: a name (for diagnostics), an arity the VM
// enforces before invoking, and the Go function implementing it.
type Native struct {
	Name  string
	Arity int
	Fn    func(args []Value) (Value, error)
}

// Value is a tagged variant: Unit, Bool, Int, Real, Str, Native. Only
// the field matching Kind is meaningful.
type Value struct {
	Kind   Kind
	Bool   bool
	Int    int32
	Real   float64
	Str    string
	Native *Native
}

func Unit() Value                { return Value{Kind: KindUnit} }
func FromBool(b bool) Value      { return Value{Kind: KindBool, Bool: b} }
func FromInt(i int32) Value      { return Value{Kind: KindInt, Int: i} }
func FromReal(r float64) Value   { return Value{Kind: KindReal, Real: r} }
func FromStr(s string) Value     { return Value{Kind: KindStr, Str: s} }
func FromNative(n *Native) Value { return Value{Kind: KindNative, Native: n} }

func (v Value) IsUnit() bool    { return v.Kind == KindUnit }
func (v Value) IsBool() bool    { return v.Kind == KindBool }
func (v Value) IsNumeric() bool { return v.Kind == KindInt || v.Kind == KindReal }
func (v Value) IsStr() bool     { return v.Kind == KindStr }
func (v Value) IsNative() bool  { return v.Kind == KindNative }

// AsFloat promotes Int to float64 and passes Real through. It is the
// single entry point arithmetic and ordering opcodes use; any other
// kind is not numeric and ok is false.
func (v Value) AsFloat() (float64, bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.Int), true
	case KindReal:
		return v.Real, true
	default:
		return 0, false
	}
}

// Eq implements the value-wise equality rule from the data model:
// Int compares equal to Real of the same numeric value, Native
// compares by handle identity, and cross-kind mismatches (other than
// the numeric case) compare unequal without error.
func (a Value) Eq(b Value) bool {
	if a.IsNumeric() && b.IsNumeric() {
		af, _ := a.AsFloat()
		bf, _ := b.AsFloat()
		return af == bf
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindUnit:
		return true
	case KindBool:
		return a.Bool == b.Bool
	case KindStr:
		return a.Str == b.Str
	case KindNative:
		return a.Native == b.Native
	default:
		return false
	}
}

func (v Value) String() string {
	switch v.Kind {
	case KindUnit:
		return "unit"
	case KindBool:
		return fmt.Sprintf("%t", v.Bool)
	case KindInt:
		return fmt.Sprintf("%d", v.Int)
	case KindReal:
		return fmt.Sprintf("%g", v.Real)
	case KindStr:
		return v.Str
	case KindNative:
		return fmt.Sprintf("<native %s/%d>", v.Native.Name, v.Native.Arity)
	default:
		return "<invalid>"
	}
}
