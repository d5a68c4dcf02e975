package mqtt

import (
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/dimasea19961/powerplant-coding-challenge/core/model"
	"github.com/dimasea19961/powerplant-coding-challenge/infra/logger"
)

// Config defines the connection parameters for the plan publisher.
type Config struct {
	Enabled   bool   `json:"enabled"`
	Broker    string `json:"broker"`
	ClientID  string `json:"client_id"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Topic     string `json:"topic"`
	QoS       byte   `json:"qos"`
	TimeoutMS int    `json:"timeout_ms"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.ClientID == "" {
		c.ClientID = "prodplan"
	}
	if c.Topic == "" {
		c.Topic = "grid/productionplan"
	}
	if c.TimeoutMS == 0 {
		c.TimeoutMS = 5000
	}
}

// Validate checks mandatory fields when the publisher is enabled.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Broker == "" {
		return fmt.Errorf("broker is required")
	}
	if c.Topic == "" {
		return fmt.Errorf("topic is required")
	}
	return nil
}

// pahoClient is the subset of the Paho client the publisher uses.
type pahoClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

// newMQTTClient points to the Paho constructor. Tests override it to
// inject a fake client.
var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// planMessage is the wire format published for each solved plan.
type planMessage struct {
	RequestID string               `json:"request_id"`
	Load      float64              `json:"load"`
	Plan      model.ProductionPlan `json:"plan"`
}

// PlanPublisher publishes computed production plans for downstream
// consumers.
type PlanPublisher struct {
	cli     pahoClient
	topic   string
	qos     byte
	timeout time.Duration
	log     logger.Logger
}

// NewPlanPublisher connects to the broker and returns a ready publisher.
func NewPlanPublisher(cfg Config) (*PlanPublisher, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	cli := newMQTTClient(opts)
	tok := cli.Connect()
	if !tok.WaitTimeout(timeout) {
		return nil, fmt.Errorf("mqtt connect timeout after %s", timeout)
	}
	if err := tok.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect: %w", err)
	}
	return &PlanPublisher{
		cli:     cli,
		topic:   cfg.Topic,
		qos:     cfg.QoS,
		timeout: timeout,
		log:     logger.New("plan-publisher"),
	}, nil
}

// PublishPlan sends the plan to the configured topic.
func (p *PlanPublisher) PublishPlan(requestID string, load float64, plan model.ProductionPlan) error {
	b, err := json.Marshal(planMessage{RequestID: requestID, Load: load, Plan: plan})
	if err != nil {
		return err
	}
	tok := p.cli.Publish(p.topic, p.qos, false, b)
	if !tok.WaitTimeout(p.timeout) {
		return fmt.Errorf("mqtt publish timeout after %s", p.timeout)
	}
	return tok.Error()
}

// Close disconnects from the broker.
func (p *PlanPublisher) Close() error {
	p.cli.Disconnect(250)
	return nil
}
