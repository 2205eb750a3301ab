package publisher

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/jgoulah/punchclock/internal/config"
	"github.com/jgoulah/punchclock/pkg/models"
)

// Publisher pushes finished day records to an MQTT broker
type Publisher struct {
	client      mqtt.Client
	topicPrefix string
}

// New connects to the broker configured in cfg
func New(cfg *config.Config) (*Publisher, error) {
	if !cfg.MQTT.Enabled {
		return nil, fmt.Errorf("MQTT publishing is not enabled in config")
	}
	if cfg.MQTT.Broker == "" {
		return nil, fmt.Errorf("MQTT broker address is required when enabled")
	}

	// Configure MQTT client options
	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s", cfg.MQTT.Broker))
	opts.SetClientID("punchclock")
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectTimeout(10 * time.Second)

	if cfg.MQTT.Username != "" {
		opts.SetUsername(cfg.MQTT.Username)
	}
	if cfg.MQTT.Password != "" {
		opts.SetPassword(cfg.MQTT.Password)
	}

	// Create and connect client
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connecting to MQTT broker: %w", token.Error())
	}

	return &Publisher{
		client:      client,
		topicPrefix: cfg.GetTopicPrefix(),
	}, nil
}

// DayPayload is the wire format for one published day record
type DayPayload struct {
	Date         string             `json:"date"`
	StartTime    string             `json:"start_time,omitempty"`
	EndTime      string             `json:"end_time,omitempty"`
	TotalHours   float64            `json:"total_hours"`
	ProjectHours map[string]float64 `json:"project_hours"`
}

// Publish sends one day record as a retained JSON message under
// <topic_prefix>/<YYYY-MM-DD>
func (p *Publisher) Publish(day *models.DayRecord) error {
	payload := DayPayload{
		Date:         day.Date.Format("2006-01-02"),
		TotalHours:   day.TotalHours,
		ProjectHours: day.ProjectHours,
	}
	if !day.StartTime.IsZero() {
		payload.StartTime = day.StartTime.Format(time.RFC3339)
	}
	if !day.EndTime.IsZero() {
		payload.EndTime = day.EndTime.Format(time.RFC3339)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	topic := fmt.Sprintf("%s/%s", p.topicPrefix, payload.Date)
	if token := p.client.Publish(topic, 1, true, body); token.Wait() && token.Error() != nil {
		return fmt.Errorf("publishing to %s: %w", topic, token.Error())
	}

	return nil
}

// Close disconnects from the MQTT broker
func (p *Publisher) Close() {
	if p.client != nil && p.client.IsConnected() {
		p.client.Disconnect(250)
	}
}
