package stream

import (
	"github.com/eclipse/paho.mqtt.golang"
)

// Publisher sends payloads to a topic.
type Publisher interface {
	Publish(topic string, retained bool, payload []byte) error
}

type mqttPublisher struct {
	client mqtt.Client
	qos    byte
}

// NewMqttPublisher publishes through an MQTT client, waiting for each token.
func NewMqttPublisher(client mqtt.Client, qos byte) Publisher {
	p := new(mqttPublisher)
	p.client = client
	p.qos = qos
	return p
}

func (p *mqttPublisher) Publish(topic string, retained bool, payload []byte) error {
	token := p.client.Publish(topic, p.qos, retained, payload)
	token.Wait()
	return token.Error()
}
