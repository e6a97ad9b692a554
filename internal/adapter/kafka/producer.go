package kafka

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/niksmo/kitchen-store/internal/core/domain"
	"github.com/niksmo/kitchen-store/internal/core/port"
	"github.com/twmb/franz-go/pkg/kgo"
)

// A producer is used for composition.
//
// Producing records to kafka broker and closing underlying [kgo.Client].
type producer struct {
	opPrefix string
	cl       ProducerClient
}

func (p producer) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p producer) produce(
	ctx context.Context, rs ...*kgo.Record,
) error {
	const op = "produce"
	res := p.cl.ProduceSync(ctx, rs...)
	if err := res.FirstErr(); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

var _ port.OrderEventsProducer = (*OrdersProducer)(nil)

// An OrdersProducer used for produce [domain.OrderPlaced].
//
// Records are keyed by order id.
type OrdersProducer struct {
	producer producer
	encoder  Encoder
	opPrefix string
}

func NewOrdersProducer(opts ...ProducerOpt) (OrdersProducer, error) {
	const op = "NewOrdersProducer"

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return OrdersProducer{}, opErr(err, op)
		}
	}

	if options.cl == nil || options.encoder == nil {
		if options.cl != nil {
			options.cl.Close()
		}
		return OrdersProducer{}, opErr(ErrTooFewOpts, op)
	}

	opPrefix := "OrdersProducer"
	return OrdersProducer{
		producer: producer{opPrefix: opPrefix, cl: options.cl},
		encoder:  options.encoder,
		opPrefix: opPrefix,
	}, nil
}

func (p OrdersProducer) Close() {
	p.producer.close()
}

func (p OrdersProducer) ProduceOrderPlaced(
	ctx context.Context, v domain.OrderPlaced,
) error {
	const op = "ProduceOrderPlaced"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	r, err := p.createRecord(v)
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}

	if err := p.producer.produce(ctx, r); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

func (p OrdersProducer) createRecord(v domain.OrderPlaced) (*kgo.Record, error) {
	const op = "createRecord"

	s := orderPlacedToSchemaV1(v)
	b, err := p.encoder.Encode(s)
	if err != nil {
		return nil, opErr(err, p.opPrefix, op)
	}
	msgKey := []byte(strconv.FormatInt(s.OrderID, 10))
	return &kgo.Record{Key: msgKey, Value: b}, nil
}
