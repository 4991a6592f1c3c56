package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/99designs/gqlgen/graphql"
	"github.com/rs/zerolog/log"
	"github.com/sevici/backend-go/internal/models"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// executableSchema runs queries against Resolver. Results are marshalled
// with their JSON tags and projected onto the requested selection set, so
// schema field names follow the model tags.
type executableSchema struct {
	schema   *ast.Schema
	resolver *Resolver
}

var _ graphql.ExecutableSchema = (*executableSchema)(nil)

// NewExecutableSchema binds the resolver to the station schema
func NewExecutableSchema(resolver *Resolver) graphql.ExecutableSchema {
	return &executableSchema{
		schema:   parsedSchema,
		resolver: resolver,
	}
}

func (e *executableSchema) Schema() *ast.Schema {
	return e.schema
}

// Complexity leaves every field at the default cost
func (e *executableSchema) Complexity(typeName, fieldName string, childComplexity int, args map[string]any) (int, bool) {
	return 0, false
}

// Exec defers resolution to the returned handler so field errors land in
// the response context rather than aborting the whole operation.
func (e *executableSchema) Exec(ctx context.Context) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)
	if opCtx.Operation.Operation != ast.Query {
		return graphql.OneShot(graphql.ErrorResponse(ctx, "unsupported operation: %s", opCtx.Operation.Operation))
	}

	first := true
	return func(ctx context.Context) *graphql.Response {
		if !first {
			return nil
		}
		first = false

		data, ok := e.execQuery(ctx, opCtx)
		if !ok {
			return &graphql.Response{}
		}
		return &graphql.Response{Data: data}
	}
}

// execQuery resolves the top-level fields. ok is false when a non-null
// field failed and data must be null.
func (e *executableSchema) execQuery(ctx context.Context, opCtx *graphql.OperationContext) ([]byte, bool) {
	fields := graphql.CollectFields(opCtx, opCtx.Operation.SelectionSet, []string{"Query"})

	var buf bytes.Buffer
	ok := true
	buf.WriteByte('{')
	for i, field := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeKey(&buf, field.Alias)

		if field.Name == "__typename" {
			writeJSON(&buf, "Query")
			continue
		}

		def := e.schema.Query.Fields.ForName(field.Name)
		if def == nil {
			graphql.AddError(ctx, fieldError(field, fmt.Errorf("unsupported field %q", field.Name)))
			buf.WriteString("null")
			continue
		}

		var fieldBuf bytes.Buffer
		value, err := e.resolveField(ctx, field, opCtx.Variables)
		if err == nil {
			err = e.project(&fieldBuf, opCtx, value, field.Selections, def.Type.Name())
		}
		if err != nil {
			log.Debug().Err(err).Str("field", field.Name).Msg("GraphQL field failed")
			graphql.AddError(ctx, fieldError(field, err))
			buf.WriteString("null")
			if def.Type.NonNull {
				ok = false
			}
			continue
		}
		buf.Write(fieldBuf.Bytes())
	}
	buf.WriteByte('}')

	return buf.Bytes(), ok
}

func (e *executableSchema) resolveField(ctx context.Context, field graphql.CollectedField, vars map[string]any) (any, error) {
	args := field.ArgumentMap(vars)

	switch field.Name {
	case "stations":
		address, err := stringArg(args, "address")
		if err != nil {
			return nil, err
		}
		minAvailability, err := floatArg(args, "minAvailability")
		if err != nil {
			return nil, err
		}
		return e.resolver.Stations(ctx, address, minAvailability)
	case "route":
		origin, err := pointArg(args, "origin")
		if err != nil {
			return nil, err
		}
		destination, err := pointArg(args, "destination")
		if err != nil {
			return nil, err
		}
		return e.resolver.Route(ctx, origin, destination)
	case "station":
		name, err := stringArg(args, "name")
		if err != nil {
			return nil, err
		}
		if name == nil {
			return nil, fmt.Errorf("argument name is required")
		}
		return e.resolver.Station(ctx, *name)
	default:
		return nil, fmt.Errorf("unsupported field %q", field.Name)
	}
}

// project writes value as JSON restricted to the selection set
func (e *executableSchema) project(buf *bytes.Buffer, opCtx *graphql.OperationContext, value any, sel ast.SelectionSet, typeName string) error {
	tree, err := toJSONTree(value)
	if err != nil {
		return err
	}
	return e.writeSelection(buf, opCtx, tree, sel, typeName)
}

func (e *executableSchema) writeSelection(buf *bytes.Buffer, opCtx *graphql.OperationContext, value any, sel ast.SelectionSet, typeName string) error {
	switch v := value.(type) {
	case nil:
		buf.WriteString("null")
	case []any:
		buf.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := e.writeSelection(buf, opCtx, item, sel, typeName); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case map[string]any:
		def := e.schema.Types[typeName]
		if def == nil {
			return fmt.Errorf("unknown type %q", typeName)
		}

		buf.WriteByte('{')
		for i, field := range graphql.CollectFields(opCtx, sel, []string{typeName}) {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeKey(buf, field.Alias)

			if field.Name == "__typename" {
				writeJSON(buf, typeName)
				continue
			}

			fieldDef := def.Fields.ForName(field.Name)
			if fieldDef == nil {
				return fmt.Errorf("unknown field %q on %s", field.Name, typeName)
			}
			if err := e.writeSelection(buf, opCtx, v[field.Name], field.Selections, fieldDef.Type.Name()); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		writeJSON(buf, v)
	}
	return nil
}

func toJSONTree(value any) (any, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, fmt.Errorf("decoding result: %w", err)
	}
	return tree, nil
}

func writeKey(buf *bytes.Buffer, key string) {
	buf.WriteString(strconv.Quote(key))
	buf.WriteByte(':')
}

func writeJSON(buf *bytes.Buffer, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		buf.WriteString("null")
		return
	}
	buf.Write(data)
}

func fieldError(field graphql.CollectedField, err error) *gqlerror.Error {
	return &gqlerror.Error{
		Message: err.Error(),
		Path:    ast.Path{ast.PathName(field.Alias)},
	}
}

func stringArg(args map[string]any, name string) (*string, error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return nil, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("argument %s must be a string", name)
	}
	return &s, nil
}

func floatArg(args map[string]any, name string) (*float64, error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return nil, nil
	}
	f, err := toFloat(raw)
	if err != nil {
		return nil, fmt.Errorf("argument %s: %w", name, err)
	}
	return &f, nil
}

func pointArg(args map[string]any, name string) (models.Point, error) {
	raw, ok := args[name].(map[string]any)
	if !ok {
		return models.Point{}, fmt.Errorf("argument %s is required", name)
	}

	lat, err := toFloat(raw["latitude"])
	if err != nil {
		return models.Point{}, fmt.Errorf("argument %s.latitude: %w", name, err)
	}
	lon, err := toFloat(raw["longitude"])
	if err != nil {
		return models.Point{}, fmt.Errorf("argument %s.longitude: %w", name, err)
	}
	return models.Point{Latitude: lat, Longitude: lon}, nil
}

// toFloat accepts literal values and decoded JSON variables
func toFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	case string:
		return strconv.ParseFloat(v, 64)
	default:
		return 0, fmt.Errorf("expected a number, got %T", raw)
	}
}
