package kafka

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/niksmo/kitchen-store/internal/core/domain"
	"github.com/niksmo/kitchen-store/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var (
	ErrTooFewOpts = errors.New("too few options")
)

type ProducerOpt func(*producerOpts) error

type producerOpts struct {
	cl      ProducerClient
	encoder Encoder
}

// ProducerClientOpt connects to the brokers and pings them.
// Extra options are applied after the defaults, e.g. [kgo.DialTLSConfig].
func ProducerClientOpt(
	ctx context.Context, seedBrokers []string, topic string, extra ...kgo.Opt,
) ProducerOpt {
	return func(opts *producerOpts) error {
		if len(seedBrokers) == 0 {
			return errors.New("no seed brokers")
		}
		if topic == "" {
			return errors.New("topic is empty string")
		}

		kopts := append([]kgo.Opt{
			kgo.SeedBrokers(seedBrokers...),
			kgo.DefaultProduceTopicAlways(),
			kgo.DefaultProduceTopic(topic),
			kgo.RequiredAcks(kgo.AllISRAcks()),
			kgo.AllowAutoTopicCreation(),
		}, extra...)

		cl, err := kgo.NewClient(kopts...)
		if err != nil {
			return err
		}

		if err := cl.Ping(ctx); err != nil {
			cl.Close()
			return err
		}
		opts.cl = cl
		return nil
	}
}

func ProducerEncoderOpt(encoder Encoder) ProducerOpt {
	return func(opts *producerOpts) error {
		if encoder == nil {
			return errors.New("encoder is nil")
		}
		opts.encoder = encoder
		return nil
	}
}

type ProducerClient interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

type Encoder interface {
	Encode(v any) ([]byte, error)
}

func makeOp(s ...string) string {
	return strings.Join(s, ".")
}

func opErr(err error, op ...string) error {
	return fmt.Errorf("%s: %w", makeOp(op...), err)
}

func orderPlacedToSchemaV1(v domain.OrderPlaced) (s schema.OrderPlacedV1) {
	s.OrderID = v.OrderID
	s.Total = v.Total
	s.CreatedAt = v.CreatedAt

	c := v.Customer
	s.Customer = schema.OrderCustomerV1{
		LastName:   c.LastName,
		FirstName:  c.FirstName,
		MiddleName: c.MiddleName,
		Phone:      c.Phone,
		City:       c.City,
		Address:    c.Address,
	}

	s.Items = make([]schema.OrderItemV1, len(v.Items))
	for i, it := range v.Items {
		s.Items[i].ProductID = it.ProductID
		s.Items[i].Name = it.Name
		s.Items[i].Price = it.Price
		s.Items[i].Quantity = it.Quantity
	}
	return
}
