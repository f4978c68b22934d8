package websocket

import (
	"context"
	"encoding/json"
	"log"

	"github.com/go-redis/redis/v8"

	"github.com/weblynx/backoffice_backend/config"
)

// RelaySettingsEvents subscribes to the Redis settings channel and rebroadcasts
// every event to connected websocket clients. Runs until the context is
// cancelled; a nil Redis client disables the feed.
func RelaySettingsEvents(ctx context.Context, client *redis.Client, hub *Hub) {
	if client == nil {
		log.Println("Redis unavailable; live settings feed disabled")
		return
	}

	pubsub := client.Subscribe(ctx, config.SettingsChannel)
	defer pubsub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-pubsub.Channel():
			if !ok {
				return
			}
			var notification Notification
			if err := json.Unmarshal([]byte(msg.Payload), &notification); err != nil {
				log.Printf("Dropping malformed settings event: %v", err)
				continue
			}
			hub.Broadcast(notification)
		}
	}
}
