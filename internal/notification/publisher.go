// Package notification publishes fire-and-forget marketplace events.
package notification

import "context"

//go:generate mockgen -destination=../mocks/mock_publisher.go -package=mocks github.com/agunich/AutoHub/internal/notification Publisher

type Publisher interface {
	Publish(ctx context.Context, message string) error
	Close() error
}
