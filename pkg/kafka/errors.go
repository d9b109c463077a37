package kafka

import "errors"

var (
	ErrNoBrokers      = errors.New("at least one kafka broker is required")
	ErrNoTopic        = errors.New("kafka topic cannot be empty")
	ErrProducerClosed = errors.New("kafka producer is closed")
	ErrInvalidMessage = errors.New("invalid message")
	ErrEmptyKey       = errors.New("message key cannot be empty")
	ErrEmptyValue     = errors.New("message value cannot be empty")
)
