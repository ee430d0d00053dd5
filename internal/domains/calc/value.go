package calc

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindTuple
)

// maxResultBits bounds integer exponentiation so a short input cannot pin the CPU.
const maxResultBits = 1 << 16

// Value is an evaluation result: an arbitrary-precision integer, a float or a tuple.
type Value struct {
	Kind  Kind
	Int   *big.Int
	Float float64
	Items []Value
}

func intValue(v *big.Int) Value { return Value{Kind: KindInt, Int: v} }

func floatValue(f float64) Value { return Value{Kind: KindFloat, Float: f} }

func tupleValue(items []Value) Value { return Value{Kind: KindTuple, Items: items} }

func (v Value) typeName() string {
	switch v.Kind {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "tuple"
	}
}

func (v Value) asFloat() (float64, error) {
	if v.Kind == KindFloat {
		return v.Float, nil
	}
	f, _ := new(big.Float).SetInt(v.Int).Float64()
	if math.IsInf(f, 0) {
		return 0, errors.New("int too large to convert to float")
	}
	return f, nil
}

func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return v.Int.String()
	case KindFloat:
		return formatFloat(v.Float)
	}
	parts := make([]string, 0, len(v.Items))
	for _, item := range v.Items {
		parts = append(parts, item.String())
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// formatFloat renders floats the way the calculator displays them: shortest
// round-trip digits, always with a fractional part or an exponent.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}
	abs := math.Abs(f)
	if abs >= 1e16 || abs < 1e-4 {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func negate(v Value) (Value, error) {
	switch v.Kind {
	case KindInt:
		return intValue(new(big.Int).Neg(v.Int)), nil
	case KindFloat:
		return floatValue(-v.Float), nil
	}
	return Value{}, fmt.Errorf("bad operand type for unary -: '%s'", v.typeName())
}

func positive(v Value) (Value, error) {
	if v.Kind == KindTuple {
		return Value{}, fmt.Errorf("bad operand type for unary +: '%s'", v.typeName())
	}
	return v, nil
}

func binary(op string, a, b Value) (Value, error) {
	if a.Kind == KindTuple || b.Kind == KindTuple {
		return Value{}, fmt.Errorf("unsupported operand type(s) for %s: '%s' and '%s'", op, a.typeName(), b.typeName())
	}
	if a.Kind == KindInt && b.Kind == KindInt {
		return intBinary(op, a.Int, b.Int)
	}
	x, err := a.asFloat()
	if err != nil {
		return Value{}, err
	}
	y, err := b.asFloat()
	if err != nil {
		return Value{}, err
	}
	return floatBinary(op, x, y)
}

func intBinary(op string, x, y *big.Int) (Value, error) {
	switch op {
	case "+":
		return intValue(new(big.Int).Add(x, y)), nil
	case "-":
		return intValue(new(big.Int).Sub(x, y)), nil
	case "*":
		return intValue(new(big.Int).Mul(x, y)), nil
	case "/":
		if y.Sign() == 0 {
			return Value{}, errors.New("division by zero")
		}
		f, _ := new(big.Rat).SetFrac(x, y).Float64()
		if math.IsInf(f, 0) {
			return Value{}, errors.New("integer division result too large for a float")
		}
		return floatValue(f), nil
	case "//":
		if y.Sign() == 0 {
			return Value{}, errors.New("integer division or modulo by zero")
		}
		q, r := new(big.Int).QuoRem(x, y, new(big.Int))
		if r.Sign() != 0 && r.Sign() != y.Sign() {
			q.Sub(q, big.NewInt(1))
		}
		return intValue(q), nil
	case "**":
		return intPow(x, y)
	}
	return Value{}, fmt.Errorf("unknown operator %s", op)
}

func intPow(x, y *big.Int) (Value, error) {
	if y.Sign() < 0 {
		if x.Sign() == 0 {
			return Value{}, errors.New("0.0 cannot be raised to a negative power")
		}
		fx, _ := new(big.Float).SetInt(x).Float64()
		fy, _ := new(big.Float).SetInt(y).Float64()
		return floatValue(math.Pow(fx, fy)), nil
	}
	switch {
	case x.Sign() == 0 || x.CmpAbs(big.NewInt(1)) == 0 || y.Sign() == 0:
		return intValue(new(big.Int).Exp(x, y, nil)), nil
	case !y.IsInt64() || int64(x.BitLen())*y.Int64() > maxResultBits:
		return Value{}, errors.New("exponent too large")
	}
	return intValue(new(big.Int).Exp(x, y, nil)), nil
}

func floatBinary(op string, x, y float64) (Value, error) {
	switch op {
	case "+":
		return floatValue(x + y), nil
	case "-":
		return floatValue(x - y), nil
	case "*":
		return floatValue(x * y), nil
	case "/":
		if y == 0 {
			return Value{}, errors.New("float division by zero")
		}
		return floatValue(x / y), nil
	case "//":
		if y == 0 {
			return Value{}, errors.New("float floor division by zero")
		}
		return floatValue(math.Floor(x / y)), nil
	case "**":
		if x == 0 && y < 0 {
			return Value{}, errors.New("0.0 cannot be raised to a negative power")
		}
		if x < 0 && y != math.Trunc(y) {
			return Value{}, errors.New("negative number cannot be raised to a fractional power")
		}
		result := math.Pow(x, y)
		if math.IsInf(result, 0) && !math.IsInf(x, 0) && !math.IsInf(y, 0) {
			return Value{}, errors.New("numerical result out of range")
		}
		return floatValue(result), nil
	}
	return Value{}, fmt.Errorf("unknown operator %s", op)
}
