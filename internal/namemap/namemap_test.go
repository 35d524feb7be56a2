package namemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName_AlreadySnakeCase(t *testing.T) {
	assert.Equal(t, "already_snake", Name("already_snake"))
}

func TestName_CamelCase(t *testing.T) {
	assert.Equal(t, "to_str", Name("toStr"))
	assert.Equal(t, "my_long_name", Name("myLongName"))
}

func TestName_AcronymBoundary(t *testing.T) {
	assert.Equal(t, "xml_parser", Name("XMLParser"))
	assert.Equal(t, "utf16_be", Name("utf16BE"))
}

func TestName_SyntheticSeparator(t *testing.T) {
	assert.Equal(t, "n_3", Name("n$3"))
}

func TestName_KeywordCollision(t *testing.T) {
	assert.Equal(t, "class_", Name("class"))
	assert.Equal(t, "return_", Name("return"))
}

func TestName_BuiltinCollision(t *testing.T) {
	assert.Equal(t, "type_", Name("type"))
	assert.Equal(t, "self_", Name("self"))
	assert.Equal(t, "print_", Name("print"))
}

func TestName_Idempotent(t *testing.T) {
	for _, x := range []string{"fooBar", "class", "XMLParser", "n$3", "plain"} {
		once := Name(x)
		twice := Name(once)
		if once == twice {
			continue
		}
		t.Errorf("Name(%q) not idempotent on already-escaped result: %q -> %q", x, once, twice)
	}
}

func TestName_RoundTrip(t *testing.T) {
	// Property 4: for x already snake_case, not a keyword/builtin, no '$',
	// Name(x) == x.
	for _, x := range []string{"already_snake", "widget", "count"} {
		assert.Equal(t, x, Name(x))
	}
}
