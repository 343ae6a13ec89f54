package graphql

import (
	gql "github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

// NewHandler serves schema over HTTP. GET and POST requests are accepted;
// the request context flows into every resolver.
func NewHandler(schema gql.Schema, playground bool) *handler.Handler {
	return handler.New(&handler.Config{
		Schema:     &schema,
		Pretty:     true,
		GraphiQL:   false,
		Playground: playground,
	})
}
