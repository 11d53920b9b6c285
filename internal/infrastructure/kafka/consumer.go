package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gamification-service/internal/config"
	"gamification-service/internal/domain/service"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const eventTypeHabitCompleted = "habit.completed"

// HabitEvent is the JSON envelope published by the API layer on the
// habit-events topic
type HabitEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	HabitID     uuid.UUID `json:"habit_id"`
	UserID      uuid.UUID `json:"user_id"`
	CompletedAt time.Time `json:"completed_at"`
}

// Consumer reads habit events and drives the gamification pipeline
type Consumer struct {
	reader              *kafka.Reader
	gamificationService service.GamificationService
}

// NewConsumer creates a new Kafka consumer
func NewConsumer(cfg *config.KafkaConfig, gamificationService service.GamificationService) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		GroupID:        cfg.GroupID,
		Topic:          cfg.Topic,
		MinBytes:       10e3, // 10KB
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
		StartOffset:    kafka.LastOffset,
	})

	return &Consumer{
		reader:              reader,
		gamificationService: gamificationService,
	}
}

// Start starts consuming messages from Kafka
func (c *Consumer) Start(ctx context.Context) error {
	log.Println("Starting Kafka consumer...")

	for {
		select {
		case <-ctx.Done():
			log.Println("Stopping Kafka consumer...")
			return c.reader.Close()
		default:
			message, err := c.reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return c.reader.Close()
				}
				log.Printf("Error reading message: %v", err)
				continue
			}

			if err := c.processMessage(ctx, message); err != nil {
				log.Printf("Error processing message: %v", err)
				// Continue processing other messages even if one fails
			}
		}
	}
}

// processMessage processes a single habit event
func (c *Consumer) processMessage(ctx context.Context, message kafka.Message) error {
	var event HabitEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	log.Printf("Received event: %s (ID: %s)", event.EventType, event.EventID)

	switch event.EventType {
	case eventTypeHabitCompleted:
		return c.handleHabitCompleted(ctx, &event)
	default:
		log.Printf("Unknown event type: %s", event.EventType)
		return nil
	}
}

// handleHabitCompleted runs the completion pipeline for the event
func (c *Consumer) handleHabitCompleted(ctx context.Context, event *HabitEvent) error {
	if event.HabitID == uuid.Nil || event.UserID == uuid.Nil {
		return fmt.Errorf("habit completed event missing ids")
	}

	if err := c.gamificationService.ProcessCompletion(ctx, event.HabitID, event.UserID); err != nil {
		return fmt.Errorf("failed to process completion for habit %s: %w", event.HabitID, err)
	}

	log.Printf("Processed completion for habit %s (user: %s)", event.HabitID, event.UserID)
	return nil
}

// Close closes the Kafka consumer
func (c *Consumer) Close() error {
	if c.reader != nil {
		return c.reader.Close()
	}
	return nil
}
