package watch

import (
	"encoding/json"
	"fmt"
	"strings"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/allbin/zwave-ports/internal/config"
)

// Publisher sends events as JSON to an MQTT topic. Events for an endpoint go
// to <topic>/<event type>.
type Publisher struct {
	client paho.Client
	cfg    config.MQTTConfig
}

// NewPublisher connects to the configured broker
func NewPublisher(cfg config.MQTTConfig) (*Publisher, error) {
	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetCleanSession(true).
		SetAutoReconnect(true)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	client := paho.NewClient(opts)
	tok := client.Connect()
	if !tok.WaitTimeout(cfg.ConnectTimeout) {
		return nil, fmt.Errorf("mqtt connect timeout after %s", cfg.ConnectTimeout)
	}
	if err := tok.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect failed: %w", err)
	}

	return &Publisher{client: client, cfg: cfg}, nil
}

// Publish sends one event and waits for the broker acknowledgement
func (p *Publisher) Publish(ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	tok := p.client.Publish(Topic(p.cfg.Topic, ev.Type), p.cfg.QoS, p.cfg.Retain, payload)
	tok.Wait()
	return tok.Error()
}

// Close disconnects from the broker
func (p *Publisher) Close() {
	p.client.Disconnect(250)
}

// Topic joins the base topic and the event type
func Topic(base string, t EventType) string {
	return strings.TrimSuffix(base, "/") + "/" + string(t)
}
