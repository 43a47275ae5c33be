// MIT License
//
// Copyright (c) 2025-2026 Gotell Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package eventstream

import "sync"

// Subscribers defines the map of subscribers keyed by their ID
type Subscribers map[string]Subscriber

// Stream defines an in-process topic broker. Publishing never blocks the
// publisher: messages are buffered per subscriber and drained via Iterator.
type Stream interface {
	// AddSubscriber adds a subscriber
	AddSubscriber() Subscriber
	// RemoveSubscriber removes a subscriber and unsubscribes it from all its topics
	RemoveSubscriber(sub Subscriber)
	// SubscribersCount returns the number of subscribers for a given topic
	SubscribersCount(topic string) int
	// Subscribe subscribes a subscriber to a topic
	Subscribe(sub Subscriber, topic string)
	// Unsubscribe removes a subscriber from a topic
	Unsubscribe(sub Subscriber, topic string)
	// Publish publishes a message to a topic
	Publish(topic string, msg any)
	// Broadcast notifies all subscribers of the given topics of a new message
	Broadcast(msg any, topics []string)
	// Close closes the stream and shuts down every subscriber
	Close()
}

// EventsStream defines the stream broker
type EventsStream struct {
	subs   Subscribers
	topics map[string]Subscribers
	mu     sync.Mutex
}

// enforce a compilation error
var _ Stream = (*EventsStream)(nil)

// New creates an instance of EventsStream
func New() Stream {
	return &EventsStream{
		subs:   Subscribers{},
		topics: map[string]Subscribers{},
	}
}

// AddSubscriber adds a subscriber
func (b *EventsStream) AddSubscriber() Subscriber {
	b.mu.Lock()
	defer b.mu.Unlock()
	sub := newSubscriber()
	b.subs[sub.ID()] = sub
	return sub
}

// RemoveSubscriber removes a subscriber and unsubscribes it from all its topics
func (b *EventsStream) RemoveSubscriber(sub Subscriber) {
	for _, topic := range sub.Topics() {
		b.Unsubscribe(sub, topic)
	}
	b.mu.Lock()
	delete(b.subs, sub.ID())
	b.mu.Unlock()
	sub.Shutdown()
}

// SubscribersCount returns the number of subscribers for a given topic
func (b *EventsStream) SubscribersCount(topic string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.topics[topic])
}

// Subscribe subscribes a subscriber to a topic
func (b *EventsStream) Subscribe(sub Subscriber, topic string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.subs[sub.ID()]; !exists {
		return
	}
	if _, exists := b.topics[topic]; !exists {
		b.topics[topic] = Subscribers{}
	}
	b.topics[topic][sub.ID()] = sub
	sub.subscribe(topic)
}

// Unsubscribe removes a subscriber from a topic
func (b *EventsStream) Unsubscribe(sub Subscriber, topic string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.topics[topic]; !exists {
		return
	}
	delete(b.topics[topic], sub.ID())
	sub.unsubscribe(topic)
}

// Publish publishes a message to a topic. Signalling a subscriber never
// blocks, so the lock is held for the whole fan-out.
func (b *EventsStream) Publish(topic string, msg any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subscribers, exists := b.topics[topic]
	if !exists {
		return
	}

	message := NewMessage(topic, msg)
	for _, sub := range subscribers {
		if sub.Active() {
			sub.signal(message)
		}
	}
}

// Broadcast notifies all subscribers of the given topics of a new message
func (b *EventsStream) Broadcast(msg any, topics []string) {
	for _, topic := range topics {
		b.Publish(topic, msg)
	}
}

// Close closes the stream and shuts down every subscriber
func (b *EventsStream) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, sub := range b.subs {
		sub.Shutdown()
	}
	b.subs = Subscribers{}
	b.topics = map[string]Subscribers{}
}
