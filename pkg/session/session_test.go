package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubKeys map[string]string

func (s stubKeys) GetString(key string) string { return s[key] }

func TestWithActorRoundtrip(t *testing.T) {
	actor := Actor{UserID: "user-1", Name: "Ana", Role: "technician"}

	ctx := WithActor(context.Background(), actor)
	assert.Equal(t, actor, ActorFromContext(ctx))
}

func TestActorFromContextMissing(t *testing.T) {
	assert.Equal(t, Actor{}, ActorFromContext(context.Background()))
}

func TestActorFromGinKeys(t *testing.T) {
	keys := stubKeys{
		"user_id":   "user-2",
		"user_name": "Bruno",
		"user_role": "seller",
	}

	actor := ActorFrom(keys)
	assert.Equal(t, "user-2", actor.UserID)
	assert.Equal(t, "Bruno", actor.Name)
	assert.Equal(t, "seller", actor.Role)
}
