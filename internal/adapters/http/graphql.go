package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
)

// buildSchema creates the GraphQL schema wired to the route service.
func buildSchema(deps *Dependencies) (graphql.Schema, error) {
	geoPointType := graphql.NewObject(graphql.ObjectConfig{
		Name: "GeoPoint",
		Fields: graphql.Fields{
			"lat": &graphql.Field{Type: graphql.Float},
			"lon": &graphql.Field{Type: graphql.Float},
		},
	})

	lineStringType := graphql.NewObject(graphql.ObjectConfig{
		Name: "GeoLineString",
		Fields: graphql.Fields{
			"coordinates": &graphql.Field{Type: graphql.NewList(geoPointType)},
		},
	})

	boundsType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Bounds",
		Fields: graphql.Fields{
			"min_lat": &graphql.Field{Type: graphql.Float},
			"min_lon": &graphql.Field{Type: graphql.Float},
			"max_lat": &graphql.Field{Type: graphql.Float},
			"max_lon": &graphql.Field{Type: graphql.Float},
		},
	})

	routeResultType := graphql.NewObject(graphql.ObjectConfig{
		Name: "RouteResult",
		Fields: graphql.Fields{
			"start_marker":    &graphql.Field{Type: geoPointType},
			"dest_marker":     &graphql.Field{Type: geoPointType},
			"path":            &graphql.Field{Type: lineStringType},
			"distance_meters": &graphql.Field{Type: graphql.Float},
			"initial_bearing": &graphql.Field{Type: graphql.Float},
			"summary_text":    &graphql.Field{Type: graphql.String},
			"display_bounds":  &graphql.Field{Type: boundsType},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"route": &graphql.Field{
				Type:        routeResultType,
				Description: "Compute distance, azimuth and path between two points",
				Args: graphql.FieldConfigArgument{
					"startLat": &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
					"startLon": &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
					"destLat":  &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
					"destLon":  &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					startLat, _ := p.Args["startLat"].(string)
					startLon, _ := p.Args["startLon"].(string)
					destLat, _ := p.Args["destLat"].(string)
					destLon, _ := p.Args["destLon"].(string)
					return deps.Routes.Compute(p.Context, startLat, startLon, destLat, destLon), nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: queryType,
	})
}

// GraphQLHandler serves the GraphQL endpoint.
func GraphQLHandler(deps *Dependencies) fiber.Handler {
	schema, err := buildSchema(deps)
	if err != nil {
		// This would be a programming error in the schema definition
		panic("graphql schema build: " + err.Error())
	}

	type gqlRequest struct {
		Query         string                 `json:"query"`
		OperationName string                 `json:"operationName"`
		Variables     map[string]interface{} `json:"variables"`
	}

	return func(c *fiber.Ctx) error {
		var req gqlRequest
		if err := c.BodyParser(&req); err != nil {
			return errBadRequest(c, "invalid request body")
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        c.Context(),
		})

		return c.JSON(result)
	}
}
