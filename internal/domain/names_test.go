package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameSetInsert(t *testing.T) {
	s := NameSet{"Sensores", "Motores"}

	assert.True(t, s.Insert("Chasis"))
	assert.False(t, s.Insert("Sensores"))
	assert.Equal(t, NameSet{"Sensores", "Motores", "Chasis"}, s)
}

func TestNameSetContainsIsCaseSensitive(t *testing.T) {
	s := NameSet{"Sensores"}

	assert.True(t, s.Contains("Sensores"))
	assert.False(t, s.Contains("sensores"))
}

func TestNameSetRenameKeepsPosition(t *testing.T) {
	s := NameSet{"Kits", "Sensores", "Motores"}

	assert.True(t, s.Rename("Sensores", "Sensores Avanzados"))
	assert.Equal(t, NameSet{"Kits", "Sensores Avanzados", "Motores"}, s)

	assert.False(t, s.Rename("Chasis", "Otra"))
}

func TestNameSetCloneIsIndependent(t *testing.T) {
	s := NameSet{"Kits"}
	c := s.Clone()
	c.Insert("Motores")

	assert.Equal(t, NameSet{"Kits"}, s)
}
