package websocket

import (
	"context"
	"log"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/thesrcielos/ScoreLeague/internal/match"
	"github.com/thesrcielos/ScoreLeague/pkg/db"
)

var ctx = context.Background()

type feedClient struct {
	conn   *websocket.Conn
	connMu sync.Mutex
}

var (
	clientsMu sync.Mutex
	clients   = make(map[*feedClient]bool)
)

func registerClient(conn *websocket.Conn) *feedClient {
	client := &feedClient{conn: conn}
	clientsMu.Lock()
	clients[client] = true
	clientsMu.Unlock()
	return client
}

func unregisterClient(client *feedClient) {
	clientsMu.Lock()
	delete(clients, client)
	clientsMu.Unlock()
}

// SubscribeFeed listens on the settlement channel and fans every event
// out to the connected clients. Works across instances, each one gets
// the message through Redis.
func SubscribeFeed() error {
	sub := db.Rdb.Subscribe(ctx, match.FeedChannel)
	if _, err := sub.Receive(ctx); err != nil {
		log.Println("error subscribing to match feed:", err)
		return err
	}

	ch := sub.Channel()
	log.Println("Subscribed to match feed channel")

	go func() {
		for msg := range ch {
			broadcast(msg.Payload)
		}
	}()

	return nil
}

func broadcast(payload string) {
	clientsMu.Lock()
	targets := make([]*feedClient, 0, len(clients))
	for client := range clients {
		targets = append(targets, client)
	}
	clientsMu.Unlock()

	for _, client := range targets {
		client.connMu.Lock()
		err := client.conn.WriteMessage(websocket.TextMessage, []byte(payload))
		client.connMu.Unlock()
		if err != nil {
			log.Println("Error sending feed message:", err)
			unregisterClient(client)
			client.conn.Close()
		}
	}
}
