package rabbitmq

import (
	"context"
	"encoding/json"
	"testing"
)

type recordingPublisher struct {
	queue string
	body  []byte
}

func (r *recordingPublisher) Publish(ctx context.Context, queueName string, body []byte) error {
	r.queue = queueName
	r.body = body
	return nil
}

func TestPublishJSON(t *testing.T) {
	p := &recordingPublisher{}
	if err := PublishJSON(context.Background(), p, EmailQueue, map[string]string{"type": "booking_email"}); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if p.queue != "email_jobs" {
		t.Errorf("unexpected queue %q", p.queue)
	}
	var got map[string]string
	if err := json.Unmarshal(p.body, &got); err != nil || got["type"] != "booking_email" {
		t.Errorf("unexpected body %s (%v)", p.body, err)
	}
}

func TestPublishJSON_MarshalError(t *testing.T) {
	p := &recordingPublisher{}
	if err := PublishJSON(context.Background(), p, SMSQueue, func() {}); err == nil {
		t.Fatal("expected marshal error")
	}
	if p.queue != "" {
		t.Fatal("nothing should be published")
	}
}
