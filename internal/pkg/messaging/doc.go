// Package messaging publishes and consumes events over a pluggable broker
// (NATS, NSQ, Kafka or Google Pub/Sub). Handlers see a broker neutral
// Delivery; a nil return acks it, an error asks the broker to redeliver.
package messaging
