// Package amqp is the broker-backed chat transport: user messages are
// consumed from an inbound queue and the bot's typing signals and replies are
// published to a reply queue, both bound to one direct exchange.
package amqp

import (
	"context"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"grana/internal/chat"
	"grana/internal/log"
)

type Client struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	inboundQueue string
	replyQueue   string
	log          *log.Logger
}

func NewClient(url, exchangeName, inboundQueue, replyQueue string, logger *log.Logger) (*Client, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	client := &Client{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		inboundQueue: inboundQueue,
		replyQueue:   replyQueue,
		log:          logger.WithComponent(log.ComponentAMQP),
	}

	if err := client.setup(); err != nil {
		client.Close()
		return nil, fmt.Errorf("setup exchange and queues: %w", err)
	}

	return client, nil
}

func (c *Client) setup() error {
	err := c.channel.ExchangeDeclare(
		c.exchangeName, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	for _, queue := range []string{c.inboundQueue, c.replyQueue} {
		if _, err := c.channel.QueueDeclare(
			queue, // name
			true,  // durable
			false, // delete when unused
			false, // exclusive
			false, // no-wait
			nil,   // arguments
		); err != nil {
			return fmt.Errorf("declare queue %s: %w", queue, err)
		}
		if err := c.channel.QueueBind(queue, queue, c.exchangeName, false, nil); err != nil {
			return fmt.Errorf("bind queue %s: %w", queue, err)
		}
	}

	return nil
}

// Consume reads inbound chat messages and hands each one to the handler.
// Replies travel back through the reply queue. Deliveries are acked once the
// handler returns; payloads that do not parse are rejected without requeue.
func (c *Client) Consume(ctx context.Context, handler chat.Handler) error {
	deliveries, err := c.channel.Consume(
		c.inboundQueue, // queue
		"",             // consumer
		false,          // auto-ack (we want manual ack)
		false,          // exclusive
		false,          // no-local
		false,          // no-wait
		nil,            // args
	)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	c.log.InfoContext(ctx, "Consuming chat messages", log.FieldQueue, c.inboundQueue)

	for {
		select {
		case <-ctx.Done():
			c.log.InfoContext(ctx, "Stopping message consumption", log.FieldError, ctx.Err())
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("message channel closed")
			}

			inbound, err := inboundFromJSON(delivery.Body)
			if err != nil {
				c.log.ErrorContext(ctx, "Failed to unmarshal inbound message", log.FieldError, err)
				delivery.Nack(false, false) // reject and don't requeue
				continue
			}

			msg := chat.Message{
				ID:         inbound.ID,
				From:       inbound.From,
				Text:       inbound.Text,
				ReceivedAt: inbound.Timestamp,
			}
			handler.Handle(ctx, msg, &queueReplier{client: c, msg: msg})
			delivery.Ack(false)
		}
	}
}

// queueReplier publishes one message's outbound events to the reply queue.
type queueReplier struct {
	client *Client
	msg    chat.Message
}

func (r *queueReplier) SendTyping(ctx context.Context) error {
	return r.client.publish(ctx, newOutboundEvent(r.msg.ID, r.msg.From, EventTyping, ""))
}

func (r *queueReplier) Reply(ctx context.Context, text string) error {
	return r.client.publish(ctx, newOutboundEvent(r.msg.ID, r.msg.From, EventReply, text))
}

func (c *Client) publish(ctx context.Context, ev OutboundEvent) error {
	body, err := ev.toJSON()
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = c.channel.PublishWithContext(
		ctx,
		c.exchangeName, // exchange
		c.replyQueue,   // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	c.log.DebugContext(ctx, "Published chat event",
		log.FieldMessageID, ev.InReplyTo,
		log.FieldQueue, c.replyQueue,
		"type", ev.Type)
	return nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
