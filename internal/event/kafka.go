package event

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vietanh2810/inventory-api/internal/config"
	"github.com/vietanh2810/inventory-api/internal/domain"
)

type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	now      func() time.Time
}

func NewKafkaPublisher(conf *config.KafkaConfig) (*KafkaPublisher, error) {
	pConfig, err := newProducerConfig(conf)
	if err != nil {
		return nil, err
	}

	producer, err := sarama.NewSyncProducer(conf.Brokers, pConfig)
	if err != nil {
		return nil, fmt.Errorf("sarama.NewSyncProducer -> %w", err)
	}

	return NewKafkaPublisherWithProducer(producer, conf.Topic), nil
}

// newProducerConfig bounds how long a send can block the request that triggered it.
func newProducerConfig(conf *config.KafkaConfig) (*sarama.Config, error) {
	pConfig := sarama.NewConfig()
	if conf.Version != "" {
		version, err := sarama.ParseKafkaVersion(conf.Version)
		if err != nil {
			return nil, fmt.Errorf("sarama.ParseKafkaVersion -> %w", err)
		}
		pConfig.Version = version
	}
	pConfig.Net.TLS.Enable = false
	pConfig.Producer.RequiredAcks = sarama.WaitForAll
	pConfig.Producer.Return.Successes = true

	if conf.Timeout > 0 {
		pConfig.Net.DialTimeout = conf.Timeout
		pConfig.Net.ReadTimeout = conf.Timeout
		pConfig.Net.WriteTimeout = conf.Timeout
		pConfig.Producer.Timeout = conf.Timeout
		pConfig.Metadata.Timeout = conf.Timeout
	}
	if conf.RetryMax >= 0 {
		pConfig.Producer.Retry.Max = conf.RetryMax
		pConfig.Metadata.Retry.Max = conf.RetryMax
	}

	if err := pConfig.Validate(); err != nil {
		return nil, fmt.Errorf("pConfig.Validate -> %w", err)
	}

	return pConfig, nil
}

func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		topic:    topic,
		now:      time.Now,
	}
}

func (p *KafkaPublisher) PublishTransaction(ctx context.Context, transaction domain.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(TransactionEvent{
		EventID:     uuid.NewString(),
		EventType:   TransactionRecorded,
		OccurredAt:  p.now().UTC(),
		Transaction: transaction,
	})
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatUint(uint64(transaction.ItemID), 10)),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("p.producer.SendMessage -> %w", err)
	}

	zap.L().Debug("published transaction event",
		zap.Uint("transaction_id", transaction.ID),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
	)

	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
