package converter

import (
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/you-humble/kicad-dblib/internal/model"
)

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

// ChangeEventToProto encodes the event as a google.protobuf.Struct so that
// consumers can decode it without a project-specific schema.
func (c *kafkaConverter) ChangeEventToProto(e model.ChangeEvent) ([]byte, error) {
	pb, err := structpb.NewStruct(map[string]any{
		"event_uuid": e.EventID.String(),
		"entity":     string(e.Entity),
		"action":     string(e.Action),
		"key":        e.Key,
		"uuid":       e.ID.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build protobuf struct: %w", err)
	}

	payload, err := proto.Marshal(pb)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal protobuf: %w", err)
	}

	return payload, nil
}

func (c *kafkaConverter) ChangeEventFromProto(data []byte) (model.ChangeEvent, error) {
	var pb structpb.Struct
	if err := proto.Unmarshal(data, &pb); err != nil {
		return model.ChangeEvent{}, fmt.Errorf("failed to unmarshal protobuf: %w", err)
	}

	fields := pb.GetFields()
	eventID, err := uuid.Parse(fields["event_uuid"].GetStringValue())
	if err != nil {
		return model.ChangeEvent{}, fmt.Errorf("event_uuid: %w", err)
	}
	id, err := uuid.Parse(fields["uuid"].GetStringValue())
	if err != nil {
		return model.ChangeEvent{}, fmt.Errorf("uuid: %w", err)
	}

	return model.ChangeEvent{
		EventID: eventID,
		Entity:  model.Entity(fields["entity"].GetStringValue()),
		Action:  model.Action(fields["action"].GetStringValue()),
		Key:     fields["key"].GetStringValue(),
		ID:      id,
	}, nil
}
