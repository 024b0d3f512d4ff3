package codefmt

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisambiguate(t *testing.T) {
	pull, stop := iter.Pull(DisambiguateName("zero"))
	defer stop()

	var name string
	var more bool

	name, more = pull()
	assert.Equal(t, "zero", name)
	assert.True(t, more)

	name, more = pull()
	assert.Equal(t, "zero2", name)
	assert.True(t, more)

	name, more = pull()
	assert.Equal(t, "zero3", name)
	assert.True(t, more)
}

func TestDisambiguateNumSuffix(t *testing.T) {
	pull, stop := iter.Pull(DisambiguateName("answer42"))
	defer stop()

	var name string
	var more bool

	name, more = pull()
	assert.Equal(t, "answer42", name)
	assert.True(t, more)

	name, more = pull()
	assert.Equal(t, "answer42_2", name)
	assert.True(t, more)

	name, more = pull()
	assert.Equal(t, "answer42_3", name)
	assert.True(t, more)
}

func TestNameSkipsReserved(t *testing.T) {
	ns := make(NS)
	assert.True(t, ns.Reserve("zero"))
	assert.Equal(t, "zero2", ns.Name("zero"))
	assert.Equal(t, "zero3", ns.Name("zero"))
}
