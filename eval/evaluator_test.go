/*
File    : uz-go/eval/evaluator_test.go
Author  : Algorix Devs
Contact : dev(@algorix.io)
*/
package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/algorix-io/uz-go/objects"
	"github.com/algorix-io/uz-go/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runSource parses and executes a program, returning everything written
// to the program output and to the error stream
func runSource(t *testing.T, src string) (string, string) {
	return runSourceWithInput(t, src, "")
}

// runSourceWithInput is runSource with a stdin payload for so'ra
func runSourceWithInput(t *testing.T, src string, input string) (string, string) {
	t.Helper()
	par := parser.NewParser(src)
	root := par.Parse()
	require.Empty(t, par.Errors, "src: %s", src)

	var out, errOut bytes.Buffer
	evaluator := NewEvaluator()
	evaluator.SetWriter(&out)
	evaluator.SetErrWriter(&errOut)
	evaluator.SetReader(strings.NewReader(input))
	evaluator.Interpret(root)
	return out.String(), errOut.String()
}

// TestEvaluator_Arithmetic verifies integer arithmetic, precedence, and
// comparison results via yoz output
func TestEvaluator_Arithmetic(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"yoz 1 + 2 * 3", "7\n"},
		{"yoz (1 + 2) * 3", "9\n"},
		{"yoz 10 - 3 - 2", "5\n"},
		{"yoz 15 / 3", "5\n"},
		{"yoz 7 / 2", "3\n"},
		{"yoz 2 == 2", "true\n"},
		{"yoz 2 != 2", "false\n"},
		{"yoz 3 < 5", "true\n"},
		{"yoz 3 >= 5", "false\n"},
		{"yoz 5 <= 5", "true\n"},
	}

	for _, tt := range tests {
		out, errOut := runSource(t, tt.input)
		assert.Equal(t, tt.expected, out, "src: %s", tt.input)
		assert.Empty(t, errOut, "src: %s", tt.input)
	}
}

// TestEvaluator_Strings verifies string operations, including the mixed
// number/string concatenations
func TestEvaluator_Strings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`yoz "salom" + " dunyo"`, "salom dunyo\n"},
		{`yoz "soni: " + 5`, "soni: 5\n"},
		{`yoz 5 + " soni"`, "5 soni\n"},
		{`yoz "a" == "a"`, "true\n"},
		{`yoz "a" != "b"`, "true\n"},
		// Operators undefined for the operand types yield false
		{`yoz "a" - "b"`, "false\n"},
		{`yoz "a" < "b"`, "false\n"},
		{`yoz 1 * "b"`, "false\n"},
	}

	for _, tt := range tests {
		out, _ := runSource(t, tt.input)
		assert.Equal(t, tt.expected, out, "src: %s", tt.input)
	}
}

// TestEvaluator_Truthiness verifies the truthiness coercion rules
func TestEvaluator_Truthiness(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"yoz !0", "true\n"},
		{"yoz !1", "false\n"},
		{"yoz !!5", "true\n"},
		// Strings and arrays are never truthy
		{`yoz !"matn"`, "true\n"},
		{"yoz ![1, 2]", "true\n"},
	}

	for _, tt := range tests {
		out, _ := runSource(t, tt.input)
		assert.Equal(t, tt.expected, out, "src: %s", tt.input)
	}
}

// TestEvaluator_ShortCircuit verifies that && and || skip the right side
// when the left side already decides: the right sides here call an
// unknown function, which would write to the error stream if evaluated
func TestEvaluator_ShortCircuit(t *testing.T) {
	out, errOut := runSource(t, "yoz 1 == 2 && yonmaydi()")
	assert.Equal(t, "false\n", out)
	assert.Empty(t, errOut)

	out, errOut = runSource(t, "yoz 1 == 1 || yonmaydi()")
	assert.Equal(t, "true\n", out)
	assert.Empty(t, errOut)

	// When the left side does not decide, the right side IS evaluated
	_, errOut = runSource(t, "yoz 1 == 1 && yonmaydi()")
	assert.Contains(t, errOut, "funksiya topilmadi")
}

// TestEvaluator_Variables verifies assignment, lookup, and the Number(0)
// default for unbound names
func TestEvaluator_Variables(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"x = 10 yoz x", "10\n"},
		{"x = 10 x = x + 1 yoz x", "11\n"},
		{"yoz hech_qayerda_yoq", "0\n"},
		{`ism = "Ali" yoz "salom " + ism`, "salom Ali\n"},
	}

	for _, tt := range tests {
		out, _ := runSource(t, tt.input)
		assert.Equal(t, tt.expected, out, "src: %s", tt.input)
	}
}

// TestEvaluator_IfStatement verifies agar with truthy and falsy conditions
func TestEvaluator_IfStatement(t *testing.T) {
	out, _ := runSource(t, "agar 5 > 3 { yoz \"ha\" } agar 2 > 3 { yoz \"yo'q\" }")
	assert.Equal(t, "ha\n", out)
}

// TestEvaluator_Loop verifies the toki loop and its takrorla spelling
func TestEvaluator_Loop(t *testing.T) {
	out, _ := runSource(t, "x = 0 toki x < 3 { yoz x x = x + 1 }")
	assert.Equal(t, "0\n1\n2\n", out)

	out, _ = runSource(t, "x = 0 takrorla x < 3 { x = x + 1 } yoz x")
	assert.Equal(t, "3\n", out)
}

// TestEvaluator_ForLoop verifies uchun iteration order and the fresh
// scope per iteration
func TestEvaluator_ForLoop(t *testing.T) {
	out, _ := runSource(t, "uchun i ichida [1, 2, 3] { yoz i }")
	assert.Equal(t, "1\n2\n3\n", out)

	// The loop variable does not leak outside the loop
	out, _ = runSource(t, "uchun i ichida [7] { } yoz i")
	assert.Equal(t, "0\n", out)

	// Iterating a non-array is reported and skipped
	out, errOut := runSource(t, "uchun i ichida 5 { yoz i } yoz \"keyin\"")
	assert.Equal(t, "keyin\n", out)
	assert.Contains(t, errOut, "massivlar")
}

// TestEvaluator_Functions verifies declaration, calls, qaytar, parameter
// defaults, extra arguments, and redefinition
func TestEvaluator_Functions(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"funksiya f(a, b) { qaytar a + b } yoz f(2, 3)", "5\n"},
		// A function without qaytar yields 0
		{"funksiya f() { yoz 1 } yoz f()", "1\n0\n"},
		// Missing parameters default to 0
		{"funksiya f(a, b) { qaytar a + b } yoz f(4)", "4\n"},
		// Extra arguments are ignored
		{"funksiya f(a) { qaytar a } yoz f(1, 2, 3)", "1\n"},
		// Redefinition overwrites
		{"funksiya f() { qaytar 1 } funksiya f() { qaytar 2 } yoz f()", "2\n"},
		// qaytar propagates out of a loop inside the function
		{"funksiya f() { toki 1 { qaytar 9 } } yoz f()", "9\n"},
		// qaytar propagates out of an uchun loop too
		{"funksiya f() { uchun i ichida [4, 5, 6] { qaytar i } } yoz f()", "4\n"},
		// Recursion
		{"funksiya fakt(n) { agar n <= 1 { qaytar 1 } qaytar n * fakt(n - 1) } yoz fakt(5)", "120\n"},
	}

	for _, tt := range tests {
		out, errOut := runSource(t, tt.input)
		assert.Equal(t, tt.expected, out, "src: %s", tt.input)
		assert.Empty(t, errOut, "src: %s", tt.input)
	}
}

// TestEvaluator_FunctionModifiesCallerBinding verifies the outward scope
// walk on assignment: a function body reaches the caller's binding
func TestEvaluator_FunctionModifiesCallerBinding(t *testing.T) {
	out, _ := runSource(t, "x = 1 funksiya ozgartir() { x = 99 } ozgartir() yoz x")
	assert.Equal(t, "99\n", out)
}

// TestEvaluator_UnknownFunction verifies the report-and-default behavior
func TestEvaluator_UnknownFunction(t *testing.T) {
	out, errOut := runSource(t, "yoz yoq_funksiya(1)")
	assert.Equal(t, "0\n", out)
	assert.Contains(t, errOut, "funksiya topilmadi")
}

// TestEvaluator_Arrays verifies literals, indexing, and indexed assignment
func TestEvaluator_Arrays(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"x = [10, 20, 30] yoz x", "[10, 20, 30]\n"},
		{"x = [10, 20, 30] yoz x[1]", "20\n"},
		{"x = [10, 20, 30] x[1] = 99 yoz x", "[10, 99, 30]\n"},
		{"x = [[1, 2], [3, 4]] yoz x[1][0]", "3\n"},
		{"x = [1, \"ikki\", [3]] yoz x", "[1, ikki, [3]]\n"},
		{"yoz uzunlik([1, 2, 3])", "3\n"},
		{"x = [1] yoz qosh(x, 2)", "[1, 2]\n"},
	}

	for _, tt := range tests {
		out, errOut := runSource(t, tt.input)
		assert.Equal(t, tt.expected, out, "src: %s", tt.input)
		assert.Empty(t, errOut, "src: %s", tt.input)
	}
}

// TestEvaluator_CopyOnWrite verifies that mutating one binding of a shared
// array cannot be observed through another binding
func TestEvaluator_CopyOnWrite(t *testing.T) {
	out, _ := runSource(t, "a = [1, 2, 3] b = a a[1] = 99 yoz a yoz b")
	assert.Equal(t, "[1, 99, 3]\n[1, 2, 3]\n", out)
}

// TestEvaluator_ArrayErrors verifies the report-and-default paths around
// indexing
func TestEvaluator_ArrayErrors(t *testing.T) {
	// Out-of-range read yields 0
	out, errOut := runSource(t, "x = [1] yoz x[5]")
	assert.Equal(t, "0\n", out)
	assert.Contains(t, errOut, "chegaradan tashqarida")

	// Negative index read yields 0
	_, errOut = runSource(t, "x = [1] yoz x[0 - 1]")
	assert.Contains(t, errOut, "chegaradan tashqarida")

	// Indexing a non-array yields 0
	out, errOut = runSource(t, "yoz 5[0]")
	assert.Equal(t, "0\n", out)
	assert.Contains(t, errOut, "massiv")

	// Out-of-range write leaves state unchanged
	out, errOut = runSource(t, "x = [1, 2] x[9] = 7 yoz x")
	assert.Equal(t, "[1, 2]\n", out)
	assert.Contains(t, errOut, "chegaradan tashqarida")

	// Non-number index write leaves state unchanged
	out, errOut = runSource(t, `x = [1, 2] x["a"] = 7 yoz x`)
	assert.Equal(t, "[1, 2]\n", out)
	assert.Contains(t, errOut, "raqam")

	// Indexed write to a non-array binding is reported
	_, errOut = runSource(t, "x = 5 x[0] = 1")
	assert.Contains(t, errOut, "massiv emas")
}

// TestEvaluator_Builtins verifies dispatch of the core builtins through
// real programs, including the son/matn round trip
func TestEvaluator_Builtins(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"yoz turi([1, 2])", "massiv\n"},
		{`yoz turi("x")`, "matn\n"},
		{"yoz turi(5)", "son\n"},
		{"yoz turi(1 == 1)", "mantiq\n"},
		{`yoz son("  42 ") + 8`, "50\n"},
		{"yoz son(matn(123))", "123\n"},
		{"yoz son(matn(0 - 9))", "-9\n"},
		{"yoz uzunlik(qosh([1, 2], 3))", "3\n"},
		{`yoz matn([1, 2])`, "[1, 2]\n"},
	}

	for _, tt := range tests {
		out, errOut := runSource(t, tt.input)
		assert.Equal(t, tt.expected, out, "src: %s", tt.input)
		assert.Empty(t, errOut, "src: %s", tt.input)
	}
}

// TestEvaluator_BuiltinShadowsUserFunction verifies that builtins win the
// dispatch over user functions with the same name
func TestEvaluator_BuiltinShadowsUserFunction(t *testing.T) {
	out, _ := runSource(t, "funksiya uzunlik(a) { qaytar 777 } yoz uzunlik([1])")
	assert.Equal(t, "1\n", out)
}

// TestEvaluator_DivisionByZero verifies the documented choice: reported,
// yields 0, execution continues
func TestEvaluator_DivisionByZero(t *testing.T) {
	out, errOut := runSource(t, "yoz 5 / 0 yoz \"davom\"")
	assert.Equal(t, "0\ndavom\n", out)
	assert.Contains(t, errOut, "nolga")
}

// TestEvaluator_Input verifies so'ra reads one trimmed line per occurrence
// and yields the empty string once input is exhausted
func TestEvaluator_Input(t *testing.T) {
	out, _ := runSourceWithInput(t, "yoz so'ra yoz so'ra", "  birinchi \nikkinchi\n")
	assert.Equal(t, "birinchi\nikkinchi\n", out)

	out, errOut := runSourceWithInput(t, "yoz so'ra", "")
	assert.Equal(t, "\n", out)
	assert.NotEmpty(t, errOut)
}

// TestEvaluator_PreseededGlobal verifies the SetGlobal hook the CLI driver
// uses for raqam = 5
func TestEvaluator_PreseededGlobal(t *testing.T) {
	par := parser.NewParser("yoz raqam + 1")
	root := par.Parse()
	require.Empty(t, par.Errors)

	var out bytes.Buffer
	evaluator := NewEvaluator()
	evaluator.SetWriter(&out)
	evaluator.SetGlobal("raqam", &objects.Number{Value: 5})
	evaluator.Interpret(root)
	assert.Equal(t, "6\n", out.String())
}

// TestEvaluator_TopLevelReturn verifies a top-level qaytar stops execution
// and becomes the program result
func TestEvaluator_TopLevelReturn(t *testing.T) {
	par := parser.NewParser("qaytar 42 yoz \"yetib kelmaydi\"")
	root := par.Parse()
	require.Empty(t, par.Errors)

	var out bytes.Buffer
	evaluator := NewEvaluator()
	evaluator.SetWriter(&out)
	result := evaluator.Interpret(root)

	assert.Empty(t, out.String())
	require.NotNil(t, result)
	assert.Equal(t, int64(42), result.(*objects.Number).Value)
}

// TestEvaluator_Deterministic verifies that an I/O-free program produces
// the same output on repeated runs
func TestEvaluator_Deterministic(t *testing.T) {
	src := "funksiya f(a) { qaytar a * a } uchun i ichida [1, 2, 3] { yoz f(i) }"
	first, _ := runSource(t, src)
	second, _ := runSource(t, src)
	assert.Equal(t, "1\n4\n9\n", first)
	assert.Equal(t, first, second)
}
