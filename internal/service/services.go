package service

import (
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/domain"
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/llm"
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/repository"
)

// Services aggregates all service instances.
type Services struct {
	Lookup   *LookupService
	Semantic *SemanticService
	Snapshot *SnapshotService
	Dispatch *DispatchService
	Chat     *ChatService
}

// NewServices creates all services with their dependencies wired.
func NewServices(
	repos *repository.Repositories,
	resolver *NameResolver,
	snapshots []domain.Snapshot,
	llmClient *llm.Client,
	historyWindow int,
) *Services {
	lookup := NewLookupService(repos, resolver)
	semantic := NewSemanticService(repos.Facts, resolver)
	snapshot := NewSnapshotService(lookup, snapshots)
	dispatch := NewDispatchService(lookup, semantic, snapshot)
	chat := NewChatService(dispatch, llmClient, historyWindow)

	return &Services{
		Lookup:   lookup,
		Semantic: semantic,
		Snapshot: snapshot,
		Dispatch: dispatch,
		Chat:     chat,
	}
}
