// Package mqtt recibe las tomas que publica el dispensador inteligente y las registra.
package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"medtrack/internal/domain/adherence"
	"medtrack/internal/domain/records"
	"medtrack/internal/platform/config"
	"medtrack/internal/platform/logger"

	paho "github.com/eclipse/paho.mqtt.golang"
)

// DefaultStatus se usa cuando el dispensador no informa estado: dispensar implica toma.
const DefaultStatus = "taken"

const handleTimeout = 5 * time.Second

var ErrBadPayload = errors.New("bad dispenser payload")

// RecordWriter es lo único que el ingest necesita del servicio de records.
type RecordWriter interface {
	Create(ctx context.Context, in records.CreateInput) (records.Record, error)
}

// Payload es el mensaje publicado en <prefix>/<dispositivo>/dose.
type Payload struct {
	Name   string `json:"name"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Dose   string `json:"dose"`
	Status string `json:"status"`
}

type Subscriber struct {
	cfg    config.MQTTConfig
	client paho.Client
	sink   RecordWriter
	loc    *time.Location
	log    logger.Logger
	now    func() time.Time

	mu      sync.Mutex
	started bool
}

func NewSubscriber(cfg config.MQTTConfig, sink RecordWriter, loc *time.Location, log logger.Logger) (*Subscriber, error) {
	if strings.TrimSpace(cfg.Broker) == "" {
		return nil, errors.New("MQTT broker address is required")
	}
	if sink == nil {
		return nil, errors.New("record writer is required")
	}
	if cfg.TopicPrefix == "" {
		cfg.TopicPrefix = config.DefaultMQTTPrefix
	}
	if cfg.ClientID == "" {
		cfg.ClientID = config.DefaultMQTTClient
	}
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = logger.NewNop()
	}

	s := &Subscriber{
		cfg:  cfg,
		sink: sink,
		loc:  loc,
		log:  log.With(map[string]any{"component": "mqtt_ingest"}),
		now:  time.Now,
	}

	opts := paho.NewClientOptions()
	opts.AddBroker(brokerURL(cfg.Broker))
	opts.SetClientID(cfg.ClientID)
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectTimeout(10 * time.Second)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	// al reconectar se pierde la suscripción (clean session): se rehace aquí
	opts.SetOnConnectHandler(func(c paho.Client) {
		if err := s.subscribe(c); err != nil {
			s.log.Error("mqtt subscribe failed", map[string]any{"topic": s.Topic(), "error": err})
		}
	})
	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		s.log.Warn("mqtt connection lost", map[string]any{"error": err})
	})

	s.client = paho.NewClient(opts)
	return s, nil
}

// Topic es el filtro de suscripción: un nivel comodín por dispositivo.
func (s *Subscriber) Topic() string {
	return strings.TrimRight(s.cfg.TopicPrefix, "/") + "/+/dose"
}

// Start conecta y suscribe. Se desconecta cuando ctx termina.
func (s *Subscriber) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return nil
	}

	token := s.client.Connect()
	if !token.WaitTimeout(15*time.Second) || token.Error() != nil {
		err := token.Error()
		if err == nil {
			err = errors.New("timeout")
		}
		return fmt.Errorf("connecting to MQTT broker: %w", err)
	}
	s.started = true
	s.log.Info("mqtt ingest started", map[string]any{"broker": s.cfg.Broker, "topic": s.Topic()})

	go func() {
		<-ctx.Done()
		s.Stop()
	}()
	return nil
}

func (s *Subscriber) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.client.Unsubscribe(s.Topic()).WaitTimeout(2 * time.Second)
	s.client.Disconnect(250)
	s.started = false
	s.log.Info("mqtt ingest stopped", nil)
}

func (s *Subscriber) subscribe(c paho.Client) error {
	token := c.Subscribe(s.Topic(), 1, func(_ paho.Client, m paho.Message) {
		ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
		defer cancel()

		if _, err := s.handleMessage(ctx, m.Topic(), m.Payload()); err != nil {
			s.log.Warn("dispenser message dropped", map[string]any{"topic": m.Topic(), "error": err})
		}
	})
	token.Wait()
	return token.Error()
}

// handleMessage convierte un mensaje en Record. Fecha/hora faltantes se completan con
// la hora de recepción en la zona del paciente.
func (s *Subscriber) handleMessage(ctx context.Context, topic string, raw []byte) (records.Record, error) {
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return records.Record{}, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	if strings.TrimSpace(p.Name) == "" {
		return records.Record{}, fmt.Errorf("%w: name required", ErrBadPayload)
	}

	received := s.now().In(s.loc)
	if strings.TrimSpace(p.Date) == "" {
		p.Date = adherence.ISODate(received)
	}
	if strings.TrimSpace(p.Time) == "" {
		p.Time = received.Format("15:04")
	}
	if strings.TrimSpace(p.Status) == "" {
		p.Status = DefaultStatus
	}

	rec, err := s.sink.Create(ctx, records.CreateInput{
		Name:   p.Name,
		Date:   p.Date,
		Time:   p.Time,
		Dose:   p.Dose,
		Status: p.Status,
		Source: records.SourceDispenser,
	})
	if err != nil {
		if errors.Is(err, records.ErrInvalidInput) {
			return records.Record{}, fmt.Errorf("%w: %v", ErrBadPayload, err)
		}
		return records.Record{}, err
	}

	s.log.Debug("dispenser dose recorded", map[string]any{
		"device": deviceFromTopic(topic),
		"id":     rec.ID,
		"name":   rec.Name,
		"status": rec.Status,
	})
	return rec, nil
}

func brokerURL(broker string) string {
	if strings.Contains(broker, "://") {
		return broker
	}
	return "tcp://" + broker
}

// deviceFromTopic extrae <dispositivo> de <prefix>/<dispositivo>/dose.
func deviceFromTopic(topic string) string {
	parts := strings.Split(topic, "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-2]
}
