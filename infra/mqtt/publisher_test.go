package mqtt

import (
	"encoding/json"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/dimasea19961/powerplant-coding-challenge/core/model"
)

type fakeToken struct{ err error }

func (t fakeToken) Wait() bool                     { return true }
func (t fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t fakeToken) Error() error { return t.err }

type fakeClient struct {
	connected bool
	topic     string
	payload   []byte
	pubErr    error
}

func (c *fakeClient) IsConnected() bool { return c.connected }
func (c *fakeClient) Connect() paho.Token {
	c.connected = true
	return fakeToken{}
}
func (c *fakeClient) Disconnect(uint) { c.connected = false }
func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token {
	c.topic = topic
	c.payload = payload.([]byte)
	return fakeToken{err: c.pubErr}
}

func TestPlanPublisher_Publish(t *testing.T) {
	fake := &fakeClient{}
	old := newMQTTClient
	newMQTTClient = func(opts *paho.ClientOptions) pahoClient { return fake }
	defer func() { newMQTTClient = old }()

	pub, err := NewPlanPublisher(Config{Enabled: true, Broker: "tcp://localhost:1883"})
	if err != nil {
		t.Fatalf("new publisher: %v", err)
	}
	defer func() { _ = pub.Close() }()

	plan := model.ProductionPlan{{Name: "windpark1", Power: 90}}
	if err := pub.PublishPlan("req-1", 90, plan); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if fake.topic != "grid/productionplan" {
		t.Fatalf("topic = %s", fake.topic)
	}
	var msg planMessage
	if err := json.Unmarshal(fake.payload, &msg); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if msg.RequestID != "req-1" || msg.Load != 90 || len(msg.Plan) != 1 {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

func TestPlanPublisher_ConfigValidate(t *testing.T) {
	if err := (Config{Enabled: true}).Validate(); err == nil {
		t.Fatalf("expected broker error")
	}
	if err := (Config{Enabled: false}).Validate(); err != nil {
		t.Fatalf("disabled config should validate: %v", err)
	}
}
