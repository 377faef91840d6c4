package repository

import (
	"context"

	"github.com/secmon-lab/rollcall/pkg/repository/firestore"
	"github.com/secmon-lab/rollcall/pkg/repository/memory"
)

type (
	Firestore = firestore.Firestore
	Memory    = memory.Memory
)

func NewFirestore(ctx context.Context, projectID, databaseID string) (*Firestore, error) {
	return firestore.New(ctx, projectID, databaseID)
}

func NewMemory() *Memory {
	return memory.New()
}
