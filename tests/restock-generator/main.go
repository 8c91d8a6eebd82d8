package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type RestockEvent struct {
	ProductID     string `json:"product_id"`
	StockQuantity int    `json:"stock_quantity"`
}

// productIDs must match rows in the products table; seed a few products over
// the HTTP API first and paste their ids here.
var productIDs = []string{
	"6f1c2a34-0b1b-4b6f-9a1e-111111111111",
	"6f1c2a34-0b1b-4b6f-9a1e-222222222222",
	"6f1c2a34-0b1b-4b6f-9a1e-333333333333",
}

func generateRestock() RestockEvent {
	return RestockEvent{
		ProductID:     productIDs[rand.Intn(len(productIDs))],
		StockQuantity: rand.Intn(200),
	}
}

func main() {
	addr := kafka.TCP("localhost:9092")

	writer := &kafka.Writer{
		Addr:  addr,
		Topic: "restocks",
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			event := generateRestock()
			data, _ := json.Marshal(event)
			if err := writer.WriteMessages(context.Background(), kafka.Message{Value: data}); err != nil {
				log.Println("write failed:", err)
				continue
			}
			log.Println("restock generated", fmt.Sprintf("%s -> %d", event.ProductID, event.StockQuantity))
		case <-ctx.Done():
			return
		}
	}
}
