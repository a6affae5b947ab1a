package actor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/careportal/accesskit/pkg/actor"
)

func TestActor_IsZero(t *testing.T) {
	assert.True(t, actor.Actor{}.IsZero())
	assert.True(t, actor.Actor{Role: actor.RolePatient}.IsZero())
	assert.False(t, actor.Actor{ID: "P1"}.IsZero())
}

func TestActor_HasAssignedResource(t *testing.T) {
	a := actor.Actor{
		ID:                  "F1",
		Role:                actor.RoleFamily,
		AssignedResourceIDs: []string{"P1", "P2"},
	}

	assert.True(t, a.HasAssignedResource("P1"))
	assert.True(t, a.HasAssignedResource("P2"))
	assert.False(t, a.HasAssignedResource("P3"))
	assert.False(t, a.HasAssignedResource(""))
	assert.False(t, actor.Actor{ID: "P1"}.HasAssignedResource("P1"))
}

func TestActor_Clone(t *testing.T) {
	a := actor.Actor{ID: "F1", AssignedResourceIDs: []string{"P1"}}

	cp := a.Clone()
	cp.AssignedResourceIDs[0] = "mutated"

	assert.Equal(t, "P1", a.AssignedResourceIDs[0])
}
