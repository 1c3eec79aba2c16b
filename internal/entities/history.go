package entities

import "time"

// HistoryEntry - неизменяемая запись журнала назначений ресурсов, ведется бэкендом.
type HistoryEntry struct {
	ID           string
	Action       string
	ResourceName string
	ActorName    string
	OccurredAt   time.Time
	OldValue     *string
	NewValue     *string
}
