// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"sync"
)

// Memory keeps every client's values in process memory.
// Values are lost on restart.
type Memory struct {
	mu      sync.RWMutex
	clients map[string]map[string]string
	queues  map[string]map[string][]string
}

func NewMemory() *Memory {
	return &Memory{
		clients: make(map[string]map[string]string),
		queues:  make(map[string]map[string][]string),
	}
}

func (m *Memory) Store(clientID string) Store {
	return &memoryStore{m: m, clientID: clientID}
}

type memoryStore struct {
	m        *Memory
	clientID string
}

func (s *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	v, ok := s.m.clients[s.clientID][key]
	return v, ok, nil
}

func (s *memoryStore) Set(_ context.Context, key, value string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	values, ok := s.m.clients[s.clientID]
	if !ok {
		values = make(map[string]string)
		s.m.clients[s.clientID] = values
	}
	values[key] = value
	return nil
}

func (s *memoryStore) Remove(_ context.Context, key string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	values, ok := s.m.clients[s.clientID]
	if !ok {
		return nil
	}
	delete(values, key)
	if len(values) == 0 {
		delete(s.m.clients, s.clientID)
	}
	return nil
}

func (m *Memory) Queue(clientID string) Queue {
	return &memoryQueue{m: m, clientID: clientID}
}

type memoryQueue struct {
	m        *Memory
	clientID string
}

func (q *memoryQueue) Push(_ context.Context, name, item string) error {
	q.m.mu.Lock()
	defer q.m.mu.Unlock()

	lists, ok := q.m.queues[q.clientID]
	if !ok {
		lists = make(map[string][]string)
		q.m.queues[q.clientID] = lists
	}
	lists[name] = append(lists[name], item)
	return nil
}

func (q *memoryQueue) PopAll(_ context.Context, name string) ([]string, error) {
	q.m.mu.Lock()
	defer q.m.mu.Unlock()

	lists, ok := q.m.queues[q.clientID]
	if !ok {
		return nil, nil
	}
	items := lists[name]
	delete(lists, name)
	if len(lists) == 0 {
		delete(q.m.queues, q.clientID)
	}
	return items, nil
}
