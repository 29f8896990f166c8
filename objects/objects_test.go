/*
File    : uz-go/objects/objects_test.go
Author  : Algorix Devs
Contact : dev(@algorix.io)
*/
package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestObjects_ToString verifies the display formatting of every value type
func TestObjects_ToString(t *testing.T) {
	tests := []struct {
		obj      UzObject
		expected string
	}{
		{&Number{Value: 42}, "42"},
		{&Number{Value: -7}, "-7"},
		{&String{Value: "salom"}, "salom"},
		{&Boolean{Value: true}, "true"},
		{&Boolean{Value: false}, "false"},
		{&Array{Elements: []UzObject{}}, "[]"},
		{
			&Array{Elements: []UzObject{&Number{Value: 1}, &Number{Value: 2}, &Number{Value: 3}}},
			"[1, 2, 3]",
		},
		{
			// Elements format recursively
			&Array{Elements: []UzObject{
				&String{Value: "a"},
				&Array{Elements: []UzObject{&Number{Value: 1}, &Boolean{Value: true}}},
			}},
			"[a, [1, true]]",
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.obj.ToString())
	}
}

// TestObjects_Types verifies the user-visible type tags
func TestObjects_Types(t *testing.T) {
	assert.Equal(t, NumberType, (&Number{}).GetType())
	assert.Equal(t, StringType, (&String{}).GetType())
	assert.Equal(t, BooleanType, (&Boolean{}).GetType())
	assert.Equal(t, ArrayType, (&Array{}).GetType())
	assert.Equal(t, "son", string(NumberType))
	assert.Equal(t, "matn", string(StringType))
	assert.Equal(t, "mantiq", string(BooleanType))
	assert.Equal(t, "massiv", string(ArrayType))
}

// TestObjects_ToObject spot-checks the inspection format
func TestObjects_ToObject(t *testing.T) {
	assert.Equal(t, "<son(5)>", (&Number{Value: 5}).ToObject())
	assert.Equal(t, `<matn("uz")>`, (&String{Value: "uz"}).ToObject())
	assert.Equal(t, "<massiv([1])>", (&Array{Elements: []UzObject{&Number{Value: 1}}}).ToObject())
}

// TestArray_Clone verifies that a clone's element slots are independent of
// the original's
func TestArray_Clone(t *testing.T) {
	original := &Array{Elements: []UzObject{&Number{Value: 10}, &Number{Value: 20}}}
	clone := original.Clone()

	clone.Elements[0] = &Number{Value: 99}

	assert.Equal(t, "[10, 20]", original.ToString())
	assert.Equal(t, "[99, 20]", clone.ToString())
}

// TestReturnValue_Unwrapping verifies the wrapper delegates display to the
// wrapped value
func TestReturnValue_Unwrapping(t *testing.T) {
	wrapped := &ReturnValue{Value: &Number{Value: 5}}
	assert.Equal(t, ReturnType, wrapped.GetType())
	assert.Equal(t, "5", wrapped.ToString())
}
