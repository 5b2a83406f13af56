package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/gojson"
)

func caseTree(t *testing.T, convention, input string) string {
	t.Helper()
	v, err := gojson.ParseString(input, gojson.WithPreserveOrder(true))
	require.NoError(t, err)

	caser, err := NewKeyCaser(convention)
	require.NoError(t, err)
	caser.Apply(v)

	out, err := gojson.SerializeString(v)
	require.NoError(t, err)
	return out
}

func TestKeyCaser_Conventions(t *testing.T) {
	input := `{"user_name":"a","UserAge":1,"home-town":"b"}`

	tests := []struct {
		convention string
		want       string
	}{
		{"snake", `{"user_name":"a","user_age":1,"home_town":"b"}`},
		{"camel", `{"userName":"a","userAge":1,"homeTown":"b"}`},
		{"pascal", `{"UserName":"a","UserAge":1,"HomeTown":"b"}`},
		{"kebab", `{"user-name":"a","user-age":1,"home-town":"b"}`},
	}

	for _, tt := range tests {
		t.Run(tt.convention, func(t *testing.T) {
			assert.Equal(t, tt.want, caseTree(t, tt.convention, input))
		})
	}
}

func TestKeyCaser_RecursesThroughContainers(t *testing.T) {
	input := `{"outer_key":{"inner_key":1},"list":[{"deep_key":true}]}`
	want := `{"outerKey":{"innerKey":1},"list":[{"deepKey":true}]}`
	assert.Equal(t, want, caseTree(t, "camel", input))
}

func TestKeyCaser_LeavesValuesAlone(t *testing.T) {
	input := `{"some_key":"some_string_value"}`
	want := `{"someKey":"some_string_value"}`
	assert.Equal(t, want, caseTree(t, "camel", input))
}

func TestKeyCaser_ScalarRootIsNoop(t *testing.T) {
	v, err := gojson.ParseString(`"just_a_string"`)
	require.NoError(t, err)

	caser, err := NewKeyCaser("snake")
	require.NoError(t, err)
	caser.Apply(v)

	s, _ := v.AsString()
	assert.Equal(t, "just_a_string", s)
}

func TestNewKeyCaser_UnknownConvention(t *testing.T) {
	_, err := NewKeyCaser("shouty")
	assert.Error(t, err)
}
