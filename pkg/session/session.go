package session

import (
	"context"
)

// Actor identifica o usuário autenticado que executa uma operação.
// É sempre passado explicitamente às operações que registram autoria
// (criação de OS, transições, vendas), nunca lido de estado global.
type Actor struct {
	UserID string
	Name   string
	Role   string
}

type contextKey string

const actorKey contextKey = "actor"

// WithActor define o ator no contexto
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFromContext obtém o ator do contexto
func ActorFromContext(ctx context.Context) Actor {
	if actor, ok := ctx.Value(actorKey).(Actor); ok {
		return actor
	}
	return Actor{}
}

// ActorFrom obtém o ator de um contexto do Gin
func ActorFrom(c interface{ GetString(string) string }) Actor {
	return Actor{
		UserID: c.GetString("user_id"),
		Name:   c.GetString("user_name"),
		Role:   c.GetString("user_role"),
	}
}
