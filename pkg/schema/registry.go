package schema

import (
	"context"
	"errors"
	"fmt"

	"github.com/twmb/franz-go/pkg/sr"
)

type SchemaIdentifier interface {
	DetermineID(
		ctx context.Context, subject string, avroSchemaText string,
	) (id int, err error)
}

type schemaCreator interface {
	CreateSchema(
		ctx context.Context, subject string, s sr.Schema,
	) (sr.SubjectSchema, error)
}

// Registry registers avro schemas in the schema registry.
// Creating an already registered schema returns its existing ID.
type Registry struct {
	client schemaCreator
}

var _ SchemaIdentifier = Registry{}

func NewRegistry(urls []string, opts ...sr.ClientOpt) (Registry, error) {
	const op = "NewRegistry"

	if len(urls) == 0 {
		return Registry{}, fmt.Errorf("%s: %w", op, errors.New("no urls"))
	}

	opts = append([]sr.ClientOpt{sr.URLs(urls...)}, opts...)
	cl, err := sr.NewClient(opts...)
	if err != nil {
		return Registry{}, fmt.Errorf("%s: %w", op, err)
	}
	return Registry{client: cl}, nil
}

func (r Registry) DetermineID(
	ctx context.Context, subject string, avroSchemaText string,
) (int, error) {
	const op = "Registry.DetermineID"

	ss, err := r.client.CreateSchema(ctx, subject, sr.Schema{
		Schema: avroSchemaText,
		Type:   sr.TypeAvro,
	})
	if err != nil {
		return 0, fmt.Errorf("%s: subject %q: %w", op, subject, err)
	}
	return ss.ID, nil
}
