package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"tablebot/models"
	"tablebot/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// MemoryStore is the long-term returning-user memory: name and last
// preferences keyed by user id. It outlives conversation sessions.
type MemoryStore interface {
	Get(ctx context.Context, userID string) (*models.UserMemory, error)
	Save(ctx context.Context, userID, name string, guests int, menuPack string) error
}

const memoryKeyPrefix = "usermem:"

// RedisMemoryStore keeps user memory in Redis so it survives restarts.
type RedisMemoryStore struct {
	client *redis.Client
}

// NewRedisMemoryStore wraps the given Redis client.
func NewRedisMemoryStore(client *redis.Client) *RedisMemoryStore {
	return &RedisMemoryStore{client: client}
}

func (s *RedisMemoryStore) Get(ctx context.Context, userID string) (*models.UserMemory, error) {
	raw, err := s.client.Get(ctx, memoryKeyPrefix+userID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var mem models.UserMemory
	if err := json.Unmarshal([]byte(raw), &mem); err != nil {
		utils.GetLogger().Warn("corrupt user memory entry, discarding",
			zap.String("userId", userID), zap.Error(err))
		return nil, nil
	}
	return &mem, nil
}

func (s *RedisMemoryStore) Save(ctx context.Context, userID, name string, guests int, menuPack string) error {
	now := time.Now()

	mem, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	if mem == nil {
		mem = &models.UserMemory{UserID: userID, FirstVisit: now}
	}

	mem.Name = name
	mem.LastVisit = now
	mem.TotalBookings++
	if guests > 0 {
		mem.LastGuests = guests
	}
	if menuPack != "" {
		mem.LastMenuPack = menuPack
	}

	raw, err := json.Marshal(mem)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, memoryKeyPrefix+userID, raw, 0).Err()
}

// InMemoryMemoryStore is a map-backed MemoryStore for tests and for running
// without Redis.
type InMemoryMemoryStore struct {
	mu      sync.Mutex
	entries map[string]*models.UserMemory
}

func NewInMemoryMemoryStore() *InMemoryMemoryStore {
	return &InMemoryMemoryStore{entries: make(map[string]*models.UserMemory)}
}

func (s *InMemoryMemoryStore) Get(_ context.Context, userID string) (*models.UserMemory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mem, ok := s.entries[userID]
	if !ok {
		return nil, nil
	}
	clone := *mem
	return &clone, nil
}

func (s *InMemoryMemoryStore) Save(_ context.Context, userID, name string, guests int, menuPack string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	mem, ok := s.entries[userID]
	if !ok {
		mem = &models.UserMemory{UserID: userID, FirstVisit: now}
		s.entries[userID] = mem
	}
	mem.Name = name
	mem.LastVisit = now
	mem.TotalBookings++
	if guests > 0 {
		mem.LastGuests = guests
	}
	if menuPack != "" {
		mem.LastMenuPack = menuPack
	}
	return nil
}
