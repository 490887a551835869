// Package api serves the one-query GraphQL read surface. The schema is a
// hand-written mapping table from the wire record to GraphQL object types,
// kept deliberately separate from the domain types so the API shape never
// leaks internal representation choices.
package api

import (
	"context"
	"errors"

	"github.com/graphql-go/graphql"

	"github.com/ducban/minimalist-cv/internal/wire"
)

// ProfileFunc supplies the wire record for a request. The record is a
// process-wide constant in practice, but injecting the source keeps the
// schema testable with fixtures and failure cases.
type ProfileFunc func(ctx context.Context) (*wire.Profile, error)

var socialLinkType = graphql.NewObject(graphql.ObjectConfig{
	Name: "SocialLink",
	Fields: graphql.Fields{
		"name": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"url":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var contactType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Contact",
	Fields: graphql.Fields{
		"email":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"tel":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"social": &graphql.Field{Type: nonNullList(socialLinkType)},
	},
})

var educationEntryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "EducationEntry",
	Fields: graphql.Fields{
		"school": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"degree": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"start":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"end":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var workEntryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "WorkEntry",
	Fields: graphql.Fields{
		"company":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"link":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"badges":      &graphql.Field{Type: nonNullList(graphql.String)},
		"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"start":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"end":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var projectLinkType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ProjectLink",
	Fields: graphql.Fields{
		"label": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"href":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var projectEntryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ProjectEntry",
	Fields: graphql.Fields{
		"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"techStack":   &graphql.Field{Type: nonNullList(graphql.String)},
		"description": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"link":        &graphql.Field{Type: projectLinkType},
	},
})

var profileType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Profile",
	Fields: graphql.Fields{
		"name":               &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"initials":           &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"location":           &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"locationLink":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"about":              &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"summary":            &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"avatarUrl":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"personalWebsiteUrl": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"contact":            &graphql.Field{Type: graphql.NewNonNull(contactType)},
		"education":          &graphql.Field{Type: nonNullList(educationEntryType)},
		"work":               &graphql.Field{Type: nonNullList(workEntryType)},
		"skills":             &graphql.Field{Type: nonNullList(graphql.String)},
		"projects":           &graphql.Field{Type: nonNullList(projectEntryType)},
	},
})

func nonNullList(elem graphql.Type) graphql.Type {
	return graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(elem)))
}

// BuildSchema constructs the executable schema around the given record
// source. Field resolution below the root relies on the default resolver,
// which reads the wire structs through their json tags.
func BuildSchema(fetch ProfileFunc) (graphql.Schema, error) {
	if fetch == nil {
		return graphql.Schema{}, errors.New("profile source is required")
	}

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"fetchProfile": &graphql.Field{
				Type:        graphql.NewNonNull(profileType),
				Description: "The full CV record, flattened for the wire.",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return fetch(p.Context)
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: queryType})
}
