package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/niksmo/kitchen-store/config"
	"github.com/niksmo/kitchen-store/internal/adapter"
	"github.com/niksmo/kitchen-store/pkg/sigctx"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

const (
	partitions        = 3
	replicationFactor = 3
	deletePolicy      = "delete"
	retentionMs       = "604800000" // 7 days
)

func main() {
	sigCtx, closeApp := sigctx.NotifyContext(context.Background())
	defer closeApp()

	cfg := config.Load()
	if !cfg.Broker.Enabled() {
		printFail(errors.New("broker.seed_brokers is empty"))
		return
	}

	cl, err := createClient(cfg)
	if err != nil {
		printFail(err)
		return
	}
	defer cl.Close()

	printStart(cfg)
	defer printComplete(time.Now())

	err = makeTopics(sigCtx, cl, deletePolicy, cfg.Broker.Topics.OrdersPlaced)
	if err != nil {
		printFail(err)
		return
	}
}

func createClient(cfg config.Config) (*kadm.Client, error) {
	opts := []kgo.Opt{kgo.SeedBrokers(cfg.Broker.SeedBrokers...)}

	if t := cfg.Broker.TLS; t.Enabled() {
		tlsCfg, err := adapter.MakeTLSConfig(t.CAFile, t.CertFile, t.KeyFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, kgo.DialTLSConfig(tlsCfg))
	}

	return kadm.NewOptClient(opts...)
}

func makeTopics(
	ctx context.Context, cl *kadm.Client, cleanupPolicy string, topics ...string,
) error {
	var (
		minISR    = "1"
		retention = retentionMs
	)

	config := map[string]*string{
		"cleanup.policy":      &cleanupPolicy,
		"min.insync.replicas": &minISR,
		"retention.ms":        &retention,
	}

	responses, err := cl.CreateTopics(
		ctx,
		partitions,
		replicationFactor,
		config,
		topics...,
	)

	if err != nil {
		return err
	}

	var errs []error
	for _, res := range responses.Sorted() {
		err := res.Err
		if err != nil {
			if errors.Is(res.Err, kerr.TopicAlreadyExists) {
				fmt.Printf("topic: %q already exists\n", res.Topic)
			} else {
				errs = append(errs, err)
			}
			continue
		}
		fmt.Printf("topic: %q successfully created\n", res.Topic)
	}

	return errors.Join(errs...)
}

func printStart(cfg config.Config) {
	fmt.Printf(`initializing topics...
	- %q

`,
		cfg.Broker.Topics.OrdersPlaced,
	)
}

func printComplete(start time.Time) {
	fmt.Printf("\ncomplete in %s\n", time.Since(start))
}

func printFail(err error) {
	fmt.Printf("failed to create topics: \n%s\n", err)
}
