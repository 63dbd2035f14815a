package catproducer

import (
	"context"
	"fmt"

	"github.com/you-humble/kicad-dblib/internal/model"
	"github.com/you-humble/kicad-dblib/platform/kafka"
)

type Converter interface {
	ChangeEventToProto(e model.ChangeEvent) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewCatalogProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

func (s *service) SendCatalogChanged(ctx context.Context, event model.ChangeEvent) error {
	payload, err := s.conv.ChangeEventToProto(event)
	if err != nil {
		return fmt.Errorf("converter change_event_to_proto error: %w", err)
	}

	if err := s.producer.Send(ctx, event.ID[:], payload); err != nil {
		return fmt.Errorf("producer to catalog.changed topic error: %w", err)
	}

	return nil
}

type nopProducer struct{}

// NewNopProducer drops every event. Used when Kafka is disabled.
func NewNopProducer() nopProducer { return nopProducer{} }

func (nopProducer) SendCatalogChanged(context.Context, model.ChangeEvent) error { return nil }
