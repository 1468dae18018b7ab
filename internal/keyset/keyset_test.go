package keyset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_AddRemoveContains(t *testing.T) {
	s := New()

	assert.True(t, s.IsEmpty())

	s.Add(7)
	s.Add(3)
	assert.True(t, s.Contains(7))
	assert.False(t, s.Contains(4))
	assert.Equal(t, uint64(2), s.Cardinality())

	s.Remove(7)
	assert.False(t, s.Contains(7))
	assert.Equal(t, uint64(1), s.Cardinality())
}

func TestSet_IteratorIsOrdered(t *testing.T) {
	s := New()
	for _, k := range []uint64{42, 3, 17, 3, 99} {
		s.Add(k)
	}

	var got []uint64
	for k := range s.Iterator() {
		got = append(got, k)
	}
	assert.Equal(t, []uint64{3, 17, 42, 99}, got)
}

func TestSet_IteratorEarlyStop(t *testing.T) {
	s := New()
	s.Add(1)
	s.Add(2)
	s.Add(3)

	var got []uint64
	for k := range s.Iterator() {
		got = append(got, k)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []uint64{1, 2}, got)
}

func TestSet_CloneIsIndependent(t *testing.T) {
	s := New()
	s.Add(1)

	c := s.Clone()
	c.Add(2)

	require.True(t, c.Contains(2))
	assert.False(t, s.Contains(2))
}

func TestSet_Clear(t *testing.T) {
	s := New()
	s.Add(1)
	s.Add(2)

	s.Clear()
	assert.True(t, s.IsEmpty())
}
