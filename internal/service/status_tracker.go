package service

import "context"

type StatusTracker interface {
	Start(ctx context.Context) error
	Stop() error
}
